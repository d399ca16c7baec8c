package jwt

import "errors"

var (
	ErrSecretTooShort = errors.New("jwt: secret key must be at least 32 characters")
	ErrInvalidToken   = errors.New("jwt: invalid token")
)
