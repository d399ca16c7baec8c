package http

import (
	"errors"
	"net/http"

	"rentdesk-srv/internal/property"
	pkgErrors "rentdesk-srv/pkg/errors"
)

var (
	errNotFound = pkgErrors.NewHTTPError(http.StatusNotFound, "Property not found")
)

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, property.ErrNotFound):
		return errNotFound
	default:
		return err
	}
}
