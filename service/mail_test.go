package service

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
)

func TestMailBodies(t *testing.T) {
	viper.Set("host.domain", "remaster.app")
	viper.Set("host.ssl_enabled", true)

	assert.Equal(t,
		`<a href="https://remaster.app/email-confirmation/abc123">Click Here To Verify Your Account</a>`,
		VerifyEmailBody("abc123"))

	assert.Equal(t,
		`<a href="https://remaster.app/forgot-password/abc123">Reset Password</a>`,
		ResetPasswordBody("abc123"))

	viper.Set("host.ssl_enabled", false)
	assert.Equal(t,
		`<a href="http://remaster.app/forgot-password/abc123">Reset Password</a>`,
		ResetPasswordBody("abc123"))
}
