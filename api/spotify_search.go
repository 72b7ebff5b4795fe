package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func (a *API) SpotifySearch(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)

	query := c.Query("query")
	if query == "" {
		fieldError(c, http.StatusBadRequest, "query", "query can't be empty")
		return
	}

	result, err := a.Spotify.Search(c.Request.Context(), query)
	if err != nil {
		internalError(c)

		zap.L().Error("Spotify search failed", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	c.JSON(http.StatusOK, result)
}
