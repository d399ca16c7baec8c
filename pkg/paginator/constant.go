package paginator

const (
	// DefaultPage is the zero-based page used when none is provided.
	DefaultPage = 0
	// DefaultSize is the number of items per page used when size is invalid.
	DefaultSize = 10
	// MaxSize caps the number of items per page to prevent excessive queries.
	MaxSize = 100

	// ParamPage is the wire query parameter for the zero-based page.
	ParamPage = "page"
	// ParamSize is the wire query parameter for the page size.
	ParamSize = "size"
	// ParamSearch is the wire query parameter for the search term.
	ParamSearch = "search"
)
