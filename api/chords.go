package api

import (
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// Chords serves the static chord shape catalog. The file is free-form
// JSON maintained by hand, the server doesn't interpret it.
func (a *API) Chords(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)

	data, err := os.ReadFile(viper.GetString("chords.path"))
	if err != nil {
		internalError(c)

		zap.L().Error("Failed to read chords file", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	c.Data(http.StatusOK, "application/json", data)
}
