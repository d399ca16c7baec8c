package querysync

const (
	// All is the sentinel meaning "no filter". It never appears in a URL or a request.
	All = "all"

	// DefaultPageKey is the URL parameter holding the one-based page.
	DefaultPageKey = "page"
	// DefaultSearchKey is the URL parameter holding the search term.
	DefaultSearchKey = "search"

	firstPage = 1
)
