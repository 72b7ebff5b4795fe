package api

import (
	"net/http"
	"strings"
	"time"

	"remaster/api/model"
	"remaster/api/pkg/util"
	"remaster/api/service"
	"remaster/api/store"
	"remaster/api/validators"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	tokenSize = 32
	// Tokens issued at registration get a week, the user may not check
	// their inbox right away
	registerVerifyTTL = 7 * 24 * time.Hour
)

type registerBody struct {
	Email    string `json:"email"`
	Username string `json:"username"`
	Password string `json:"password"`
}

func (a *API) UserRegister(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)

	var data registerBody
	if err := c.ShouldBind(&data); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     "Invalid request body",
			"requestID": requestID,
		})

		zap.L().Error("Can't bind request body", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	if err := validators.EmailValidator(data.Email); err != nil {
		fieldError(c, http.StatusBadRequest, "email", err.Error())
		return
	}

	if err := validators.UsernameValidator(data.Username); err != nil {
		fieldError(c, http.StatusBadRequest, "username", err.Error())
		return
	}

	if err := validators.PasswordValidator(data.Password); err != nil {
		fieldError(c, http.StatusBadRequest, "password", err.Error())
		return
	}

	hash, err := a.Argon.GenerateFromPassword(data.Password)
	if err != nil {
		internalError(c)

		zap.L().Error("Failed to hash password", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	user := model.User{
		Email:        data.Email,
		Username:     data.Username,
		PasswordHash: hash,
	}

	if err := a.DB.Create(&user).Error; err != nil {
		// Both unique constraints can fire here. The constraint name
		// tells the client which field to flag
		msg := strings.ToLower(err.Error())

		switch {
		case strings.Contains(msg, "username"):
			fieldError(c, http.StatusConflict, "username", "username taken")
		case strings.Contains(msg, "email"):
			fieldError(c, http.StatusConflict, "email", "email in use")
		default:
			internalError(c)
			zap.L().Error("Failed to create user", zap.Error(err), zap.String("requestID", requestID))
		}
		return
	}

	token, err := util.GenerateToken(tokenSize)
	if err != nil {
		internalError(c)

		zap.L().Error("Failed to generate verification token", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	err = a.Tokens.Set(c.Request.Context(), store.PurposeVerifyEmail, token, data.Email, registerVerifyTTL)
	if err != nil {
		internalError(c)

		zap.L().Error("Failed to store verification token", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	a.Mailer.SendAsync(data.Email, "REMASTER - VERIFY EMAIL", service.VerifyEmailBody(token))

	sid, err := a.Sessions.Create(c.Request.Context(), user.ID)
	if err != nil {
		internalError(c)

		zap.L().Error("Failed to create session", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	setSessionCookie(c, sid)

	c.JSON(http.StatusOK, gin.H{
		"user": user,
	})
}
