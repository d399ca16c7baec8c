package rentapi

import (
	"errors"
	"fmt"
)

var (
	// ErrTransport means the request never produced an HTTP response.
	ErrTransport = errors.New("rentapi: transport failure")
	// ErrInvalidResponse means a 2xx response body could not be decoded.
	ErrInvalidResponse = errors.New("rentapi: invalid response")
)

// APIError is a failure reported by the server: a non-2xx status or a
// status other than "success" in the envelope.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("rentapi: request failed with status %d", e.StatusCode)
	}
	return fmt.Sprintf("rentapi: %d: %s", e.StatusCode, e.Message)
}
