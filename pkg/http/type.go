package http

import (
	"net/http"
	"time"
)

// ClientConfig holds configuration for the HTTP client.
// Retries applies to transport errors and 5xx responses only.
type ClientConfig struct {
	Timeout   time.Duration
	Retries   int
	RetryWait time.Duration
	UserAgent string // sent unless the caller passes its own User-Agent header
}

type clientImpl struct {
	client *http.Client
	config ClientConfig
}
