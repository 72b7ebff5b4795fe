package validators

import (
	"errors"
	"strings"
)

var (
	ErrUsernameEmpty    = errors.New("no username provided")
	ErrUsernameTooShort = errors.New("username must be at least 3 characters long")
	ErrUsernameTooLong  = errors.New("username is too long")
	ErrUsernameInvalid  = errors.New("username contains invalid characters")
)

const usernameCharset = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789_-"

func UsernameValidator(u string) error {
	if u == "" {
		return ErrUsernameEmpty
	}

	if len(u) < 3 {
		return ErrUsernameTooShort
	}

	if len(u) > 32 {
		return ErrUsernameTooLong
	}

	for _, r := range u {
		if !strings.ContainsRune(usernameCharset, r) {
			return ErrUsernameInvalid
		}
	}

	return nil
}
