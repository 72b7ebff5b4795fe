package api

import (
	"errors"
	"net/http"
	"time"

	"remaster/api/model"
	"remaster/api/pkg/util"
	"remaster/api/service"
	"remaster/api/store"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const verifyTokenTTL = 24 * time.Hour

// UserSendVerifyEmail issues a fresh verification token for the logged in
// user and mails it out.
func (a *API) UserSendVerifyEmail(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)
	userID := c.MustGet("userID").(uint)

	var user model.User

	if err := a.DB.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusOK, gin.H{"ok": false})
			return
		}

		internalError(c)

		zap.L().Error("Failed to fetch user", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	token, err := util.GenerateToken(tokenSize)
	if err != nil {
		internalError(c)

		zap.L().Error("Failed to generate verification token", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	err = a.Tokens.Set(c.Request.Context(), store.PurposeVerifyEmail, token, user.Email, verifyTokenTTL)
	if err != nil {
		internalError(c)

		zap.L().Error("Failed to store verification token", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	a.Mailer.SendAsync(user.Email, "REMASTER - VERIFY EMAIL", service.VerifyEmailBody(token))

	c.JSON(http.StatusOK, gin.H{"ok": true})
}

type verifyEmailBody struct {
	Token string `json:"token"`
}

// UserVerifyEmail redeems a verification token. The token maps to the
// email it was issued for, the matching account gets its verified flag.
func (a *API) UserVerifyEmail(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)

	var data verifyEmailBody
	if err := c.ShouldBind(&data); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     "Invalid request body",
			"requestID": requestID,
		})
		return
	}

	email, ok, err := a.Tokens.Consume(c.Request.Context(), store.PurposeVerifyEmail, data.Token)
	if err != nil {
		internalError(c)

		zap.L().Error("Failed to consume verification token", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	if !ok {
		fieldError(c, http.StatusBadRequest, "token", "token expired")
		return
	}

	err = a.DB.Model(&model.User{}).
		Where("email = ?", email).
		Update("verified", true).
		Error
	if err != nil {
		internalError(c)

		zap.L().Error("Failed to mark user verified", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	var user model.User
	if err := a.DB.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			fieldError(c, http.StatusBadRequest, "token", "user no longer exists")
			return
		}

		internalError(c)

		zap.L().Error("Failed to fetch verified user", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user})
}
