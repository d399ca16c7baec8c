package authentication

import "errors"

var (
	ErrInvalidCredentials = errors.New("authentication: invalid email or password")
	ErrAccountDisabled    = errors.New("authentication: account disabled")
	ErrUserNotFound       = errors.New("authentication: user not found")
)
