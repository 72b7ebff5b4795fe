package api

import (
	"errors"
	"net/http"

	"remaster/api/model"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// One message for both unknown email and wrong password, so the endpoint
// can't be used to probe which addresses have an account.
const invalidCredentials = "invalid email or password"

type loginBody struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (a *API) UserLogin(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)

	var data loginBody
	if err := c.ShouldBind(&data); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     "Invalid request body",
			"requestID": requestID,
		})

		zap.L().Error("Can't bind request body", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	if data.Email == "" {
		fieldError(c, http.StatusBadRequest, "email", "email field can't be empty")
		return
	}

	if data.Password == "" {
		fieldError(c, http.StatusBadRequest, "password", "password field can't be empty")
		return
	}

	var user model.User

	if err := a.DB.Where("email = ?", data.Email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			fieldError(c, http.StatusUnauthorized, "email", invalidCredentials)
			return
		}

		internalError(c)

		zap.L().Error("Failed to look up user", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	if !a.Argon.VerifyPasswd(data.Password, user.PasswordHash) {
		fieldError(c, http.StatusUnauthorized, "email", invalidCredentials)
		return
	}

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
