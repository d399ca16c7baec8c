package notification

import "errors"

var (
	ErrNotFound             = errors.New("notification: not found")
	ErrForbidden            = errors.New("notification: only super admins can broadcast")
	ErrInvalidRole          = errors.New("notification: invalid role")
	ErrInvalidNotification  = errors.New("notification: title is required")
	ErrPublisherUnavailable = errors.New("notification: publisher unavailable")
)
