package api

import (
	"errors"
	"net/http"

	"remaster/api/model"
	"remaster/api/validators"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type changePasswordBody struct {
	OldPassword string `json:"oldPassword"`
	NewPassword string `json:"newPassword"`
}

func (a *API) UserChangePassword(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)
	userID := c.MustGet("userID").(uint)

	var data changePasswordBody
	if err := c.ShouldBind(&data); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     "Invalid request body",
			"requestID": requestID,
		})
		return
	}

	if err := validators.PasswordValidator(data.NewPassword); err != nil {
		fieldError(c, http.StatusBadRequest, "newPassword", err.Error())
		return
	}

	var user model.User

	if err := a.DB.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			fieldError(c, http.StatusBadRequest, "newPassword", "user no longer exists")
			return
		}

		internalError(c)

		zap.L().Error("Failed to fetch user", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	if !a.Argon.VerifyPasswd(data.OldPassword, user.PasswordHash) {
		fieldError(c, http.StatusUnauthorized, "oldPassword", "incorrect password")
		return
	}

	hash, err := a.Argon.GenerateFromPassword(data.NewPassword)
	if err != nil {
		internalError(c)

		zap.L().Error("Failed to hash password", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	err = a.DB.Model(&model.User{}).
		Where("id = ?", userID).
		Update("password_hash", hash).
		Error
	if err != nil {
		internalError(c)

		zap.L().Error("Failed to update password", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user})
}
