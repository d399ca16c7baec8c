package table

import "time"

const (
	// DefaultDebounce is the quiet period before a search term is committed.
	DefaultDebounce = 500 * time.Millisecond
	// DefaultPageSize is the page size used when Config.PageSize is not set.
	DefaultPageSize = 10
	// DefaultCacheSize is the number of responses kept per controller.
	DefaultCacheSize = 32

	// MessageFailed is shown when no Describe function is configured.
	MessageFailed = "Something went wrong. Please try again."
)
