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

type changeUsernameBody struct {
	NewUsername string `json:"newUsername"`
}

func (a *API) UserChangeUsername(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)
	userID := c.MustGet("userID").(uint)

	var data changeUsernameBody
	if err := c.ShouldBind(&data); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     "Invalid request body",
			"requestID": requestID,
		})
		return
	}

	if err := validators.UsernameValidator(data.NewUsername); err != nil {
		fieldError(c, http.StatusBadRequest, "newUsername", err.Error())
		return
	}

	var duplicate model.User

	err := a.DB.Where("username = ?", data.NewUsername).First(&duplicate).Error
	if err == nil {
		fieldError(c, http.StatusConflict, "newUsername", "username taken")
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		internalError(c)

		zap.L().Error("Failed to check for duplicate username", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	err = a.DB.Model(&model.User{}).
		Where("id = ?", userID).
		Update("username", data.NewUsername).
		Error
	if err != nil {
		internalError(c)

		zap.L().Error("Failed to update username", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	var user model.User
	if err := a.DB.First(&user, userID).Error; err != nil {
		internalError(c)

		zap.L().Error("Failed to fetch updated user", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user})
}
