package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func (a *API) SpotifyTrackAnalysis(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)

	id := c.Param("id")
	if id == "" {
		fieldError(c, http.StatusBadRequest, "id", "track id can't be empty")
		return
	}

	analysis, err := a.Spotify.TrackAnalysis(c.Request.Context(), id)
	if err != nil {
		internalError(c)

		zap.L().Error("Spotify track analysis failed", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	c.JSON(http.StatusOK, analysis)
}
