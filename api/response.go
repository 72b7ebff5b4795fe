package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/spf13/viper"
)

// FieldError names the input field an expected failure pertains to, so
// the frontend can render it next to the right form field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// fieldError renders an expected domain failure. These always carry an
// errors list in the payload, never a bare transport fault.
func fieldError(c *gin.Context, status int, field, message string) {
	c.JSON(status, gin.H{
		"errors": []FieldError{{Field: field, Message: message}},
	})
}

// internalError renders an unexpected failure the client can't act on.
func internalError(c *gin.Context) {
	c.JSON(http.StatusInternalServerError, gin.H{
		"error":     "Internal server error",
		"requestID": c.GetString("requestID"),
	})
}

func setSessionCookie(c *gin.Context, sid string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(
		viper.GetString("session.cookie_name"),
		sid,
		viper.GetInt("session.max_age"),
		"/",
		"",
		viper.GetBool("host.ssl_enabled"),
		true,
	)
}

func clearSessionCookie(c *gin.Context) {
	c.SetCookie(
		viper.GetString("session.cookie_name"),
		"",
		-1,
		"/",
		"",
		viper.GetBool("host.ssl_enabled"),
		true,
	)
}
