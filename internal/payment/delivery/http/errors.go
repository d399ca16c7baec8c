package http

import (
	"errors"
	"net/http"

	"rentdesk-srv/internal/payment"
	pkgErrors "rentdesk-srv/pkg/errors"
)

var (
	errInvalidSort = pkgErrors.NewHTTPError(http.StatusBadRequest, "Invalid sort order")
	errForbidden   = pkgErrors.NewHTTPError(http.StatusForbidden, "Due rent is only visible to admins")
)

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, payment.ErrInvalidSort):
		return errInvalidSort
	case errors.Is(err, payment.ErrForbidden):
		return errForbidden
	default:
		return err
	}
}
