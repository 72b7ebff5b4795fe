package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

func (a *API) UserLogout(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)

	sid, err := c.Cookie(viper.GetString("session.cookie_name"))
	if err != nil {
		// Nothing to destroy, but make sure the client forgets too
		clearSessionCookie(c)
		c.JSON(http.StatusOK, gin.H{"ok": true})
		return
	}

	ok := true

	if err := a.Sessions.Destroy(c.Request.Context(), sid); err != nil {
		ok = false
		zap.L().Error("Failed to destroy session", zap.Error(err), zap.String("requestID", requestID))
	}

	// The cookie is cleared even when the store errored
	clearSessionCookie(c)

	c.JSON(http.StatusOK, gin.H{"ok": ok})
}
