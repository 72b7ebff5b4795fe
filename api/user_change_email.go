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

type changeEmailBody struct {
	NewEmail string `json:"newEmail"`
}

func (a *API) UserChangeEmail(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)
	userID := c.MustGet("userID").(uint)

	var data changeEmailBody
	if err := c.ShouldBind(&data); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     "Invalid request body",
			"requestID": requestID,
		})
		return
	}

	if err := validators.EmailValidator(data.NewEmail); err != nil {
		fieldError(c, http.StatusBadRequest, "newEmail", err.Error())
		return
	}

	var duplicate model.User

	err := a.DB.Where("email = ?", data.NewEmail).First(&duplicate).Error
	if err == nil {
		fieldError(c, http.StatusConflict, "newEmail", "email in use")
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		internalError(c)

		zap.L().Error("Failed to check for duplicate email", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	err = a.DB.Model(&model.User{}).
		Where("id = ?", userID).
		Update("email", data.NewEmail).
		Error
	if err != nil {
		internalError(c)

		zap.L().Error("Failed to update email", zap.Error(err), zap.String("requestID", requestID))
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
