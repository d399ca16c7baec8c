package http

import (
	"errors"
	"net/http"

	"rentdesk-srv/internal/notification"
	pkgErrors "rentdesk-srv/pkg/errors"
)

var (
	errNotFound    = pkgErrors.NewHTTPError(http.StatusNotFound, "Notification not found")
	errForbidden   = pkgErrors.NewHTTPError(http.StatusForbidden, "Forbidden")
	errInvalidRole = pkgErrors.NewHTTPError(http.StatusBadRequest, "Invalid role")
	errInvalid     = pkgErrors.NewHTTPError(http.StatusBadRequest, "Title is required")
	errUnavailable = pkgErrors.NewHTTPError(http.StatusServiceUnavailable, "Notifications are temporarily unavailable")
)

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, notification.ErrNotFound):
		return errNotFound
	case errors.Is(err, notification.ErrForbidden):
		return errForbidden
	case errors.Is(err, notification.ErrInvalidRole):
		return errInvalidRole
	case errors.Is(err, notification.ErrInvalidNotification):
		return errInvalid
	case errors.Is(err, notification.ErrPublisherUnavailable):
		return errUnavailable
	default:
		return err
	}
}
