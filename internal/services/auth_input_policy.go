package services

import (
	"errors"
	"strings"
)

var ErrAuthCredentialsInvalid = errors.New("auth credentials invalid")

const emailRule = "required,email,max=320"

// NormalizeAuthEmail lowercases and trims raw. It returns "" when the result
// is not an address the registration rules would accept.
func NormalizeAuthEmail(raw string) string {
	email := strings.ToLower(strings.TrimSpace(raw))
	if inputValidator.Var(email, emailRule) != nil {
		return ""
	}
	return email
}

// NormalizeCredentialsInput prepares a login attempt. Any unusable half
// yields the same ErrAuthCredentialsInvalid so callers cannot tell which.
func NormalizeCredentialsInput(emailRaw string, passwordRaw string) (string, string, error) {
	email := NormalizeAuthEmail(emailRaw)
	password := strings.TrimSpace(passwordRaw)
	if email == "" || password == "" {
		return "", "", ErrAuthCredentialsInvalid
	}
	return email, password, nil
}
