package http

import (
	"errors"
	"net/http"

	"rentdesk-srv/internal/admin"
	pkgErrors "rentdesk-srv/pkg/errors"
)

var errForbidden = pkgErrors.NewHTTPError(http.StatusForbidden, "Forbidden")

func (h *handler) mapError(err error) error {
	if errors.Is(err, admin.ErrForbidden) {
		return errForbidden
	}
	return err
}
