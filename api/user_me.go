package api

import (
	"errors"
	"net/http"

	"remaster/api/model"

	"github.com/gin-gonic/gin"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// UserMe returns the logged in user, or null when there is no session.
// There's no auth gate here, an anonymous caller is a valid answer.
func (a *API) UserMe(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)

	sid, err := c.Cookie(viper.GetString("session.cookie_name"))
	if err != nil {
		c.JSON(http.StatusOK, gin.H{"user": nil})
		return
	}

	userID, ok, err := a.Sessions.UserID(c.Request.Context(), sid)
	if err != nil {
		internalError(c)

		zap.L().Error("Failed to resolve session", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	if !ok {
		c.JSON(http.StatusOK, gin.H{"user": nil})
		return
	}

	var user model.User

	if err := a.DB.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusOK, gin.H{"user": nil})
			return
		}

		internalError(c)

		zap.L().Error("Failed to fetch user", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user})
}
