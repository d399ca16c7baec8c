package http

import (
	"errors"
	"net/http"

	"rentdesk-srv/internal/authentication"
	pkgErrors "rentdesk-srv/pkg/errors"
)

var (
	errInvalidCredentials = pkgErrors.NewHTTPError(http.StatusUnauthorized, "Invalid email or password")
	errAccountDisabled    = pkgErrors.NewHTTPError(http.StatusForbidden, "Account is disabled")
	errUserNotFound       = pkgErrors.NewHTTPError(http.StatusUnauthorized, "Unauthorized")
)

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, authentication.ErrInvalidCredentials):
		return errInvalidCredentials
	case errors.Is(err, authentication.ErrAccountDisabled):
		return errAccountDisabled
	case errors.Is(err, authentication.ErrUserNotFound):
		return errUserNotFound
	default:
		return err
	}
}
