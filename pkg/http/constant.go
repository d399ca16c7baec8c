package http

import "time"

const (
	DefaultTimeout   = 15 * time.Second
	DefaultRetryWait = 500 * time.Millisecond
	DefaultUserAgent = "rentdesk/1"
)

// DefaultConfig returns a client that never retries: failures surface to the caller,
// which offers a manual retry.
func DefaultConfig() ClientConfig {
	return ClientConfig{
		Timeout:   DefaultTimeout,
		RetryWait: DefaultRetryWait,
		UserAgent: DefaultUserAgent,
	}
}
