package validators

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEmailValidator(t *testing.T) {
	assert.NoError(t, EmailValidator("a@x.com"))
	assert.ErrorIs(t, EmailValidator(""), ErrEmailEmpty)
	assert.ErrorIs(t, EmailValidator("not-an-email"), ErrEmailInvalid)
}

func TestPasswordValidator(t *testing.T) {
	assert.NoError(t, PasswordValidator("longenough"))
	assert.ErrorIs(t, PasswordValidator(""), ErrPasswordEmpty)
	assert.ErrorIs(t, PasswordValidator("short"), ErrPasswordTooShort)
	assert.ErrorIs(t, PasswordValidator(strings.Repeat("x", 256)), ErrPasswordTooLong)
}

func TestUsernameValidator(t *testing.T) {
	assert.NoError(t, UsernameValidator("some_user-1"))
	assert.ErrorIs(t, UsernameValidator(""), ErrUsernameEmpty)
	assert.ErrorIs(t, UsernameValidator("ab"), ErrUsernameTooShort)
	assert.ErrorIs(t, UsernameValidator(strings.Repeat("a", 33)), ErrUsernameTooLong)
	assert.ErrorIs(t, UsernameValidator("has space"), ErrUsernameInvalid)
}
