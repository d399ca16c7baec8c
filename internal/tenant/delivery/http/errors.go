package http

import (
	"errors"
	"net/http"

	"rentdesk-srv/internal/tenant"
	pkgErrors "rentdesk-srv/pkg/errors"
)

var errForbidden = pkgErrors.NewHTTPError(http.StatusForbidden, "Forbidden")

func (h *handler) mapError(err error) error {
	if errors.Is(err, tenant.ErrForbidden) {
		return errForbidden
	}
	return err
}
