package api

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"remaster/api/model"
	"remaster/api/pkg/util"
	"remaster/api/service"
	"remaster/api/store"
	"remaster/api/validators"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const resetTokenTTL = 24 * time.Hour

type forgotPasswordBody struct {
	Email string `json:"email"`
}

// UserForgotPassword always answers ok, whether or not the address has an
// account. Anything else would let a caller enumerate registered emails.
func (a *API) UserForgotPassword(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)

	var data forgotPasswordBody
	if err := c.ShouldBind(&data); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     "Invalid request body",
			"requestID": requestID,
		})
		return
	}

	var user model.User

	if err := a.DB.Where("email = ?", data.Email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusOK, gin.H{"ok": true})
			return
		}

		internalError(c)

		zap.L().Error("Failed to look up user", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	token, err := util.GenerateToken(tokenSize)
	if err != nil {
		internalError(c)

		zap.L().Error("Failed to generate reset token", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	err = a.Tokens.Set(c.Request.Context(), store.PurposeForgotPassword, token,
		strconv.FormatUint(uint64(user.ID), 10), resetTokenTTL)
	if err != nil {
		internalError(c)

		zap.L().Error("Failed to store reset token", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	a.Mailer.SendAsync(user.Email, "REMASTER - FORGOT PASSWORD", service.ResetPasswordBody(token))

	c.JSON(http.StatusOK, gin.H{"ok": true})
}

type changeForgotPasswordBody struct {
	Token       string `json:"token"`
	NewPassword string `json:"newPassword"`
}

// UserChangeForgotPassword redeems a reset token. A successful reset also
// starts a session, the user shouldn't have to log in with the password
// they just typed.
func (a *API) UserChangeForgotPassword(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)

	var data changeForgotPasswordBody
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

	val, ok, err := a.Tokens.Consume(c.Request.Context(), store.PurposeForgotPassword, data.Token)
	if err != nil {
		internalError(c)

		zap.L().Error("Failed to consume reset token", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	if !ok {
		fieldError(c, http.StatusBadRequest, "newPassword", "token expired")
		return
	}

	userID, err := strconv.ParseUint(val, 10, 64)
	if err != nil {
		internalError(c)

		zap.L().Error("Reset token held a malformed user id", zap.Error(err), zap.String("requestID", requestID))
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

	var user model.User
	if err := a.DB.First(&user, userID).Error; err != nil {
		internalError(c)

		zap.L().Error("Failed to fetch user", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	sid, err := a.Sessions.Create(c.Request.Context(), user.ID)
	if err != nil {
		internalError(c)

		zap.L().Error("Failed to create session", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	setSessionCookie(c, sid)

	c.JSON(http.StatusOK, gin.H{"user": user})
}
