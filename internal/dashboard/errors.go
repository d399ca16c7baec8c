package dashboard

import (
	"errors"

	"rentdesk-srv/pkg/rentapi"
)

var ErrUnknownTable = errors.New("dashboard: unknown table")

// Describe turns a fetch error into the message shown in a table's error state.
func Describe(err error) string {
	var apiErr *rentapi.APIError
	switch {
	case errors.As(err, &apiErr):
		if apiErr.Message != "" {
			return apiErr.Message
		}
		return MessageRequest
	case errors.Is(err, rentapi.ErrInvalidResponse):
		return MessageRequest
	default:
		return MessageTransport
	}
}
