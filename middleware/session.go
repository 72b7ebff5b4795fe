package middleware

import (
	"net/http"

	"remaster/api/store"

	"github.com/gin-gonic/gin"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// NewSessionMiddleware is the auth gate. It resolves the session cookie to
// a user id and puts it in the request context, or rejects the request
// before the handler runs. Binary authenticated/not, no roles.
func NewSessionMiddleware(sessions store.SessionStore) gin.HandlerFunc {
	cookieName := viper.GetString("session.cookie_name")

	return func(c *gin.Context) {
		requestID := c.MustGet("requestID").(string)

		sid, err := c.Cookie(cookieName)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"errors":    []gin.H{{"field": "session", "message": "not authenticated"}},
				"requestID": requestID,
			})
			return
		}

		userID, ok, err := sessions.UserID(c.Request.Context(), sid)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
				"error":     "Internal server error",
				"requestID": requestID,
			})

			zap.L().Error("Failed to resolve session", zap.Error(err), zap.String("requestID", requestID))
			return
		}

		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"errors":    []gin.H{{"field": "session", "message": "not authenticated"}},
				"requestID": requestID,
			})
			return
		}

		c.Set("userID", userID)
		c.Set("sessionID", sid)
		c.Next()
	}
}
