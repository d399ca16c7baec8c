package paginator

// PageQuery contains server-side pagination parameters bound from a request.
type PageQuery struct {
	Page int `json:"page" form:"page"` // Page number (0-indexed)
	Size int `json:"size" form:"size"` // Number of items per page
}

// Page is a single page of results together with its pagination metadata.
type Page[T any] struct {
	Data        []T `json:"data"`
	TotalItems  int `json:"totalItems"`
	TotalPages  int `json:"totalPages"`
	CurrentPage int `json:"currentPage"` // 0-indexed, echoes the requested page
	PageSize    int `json:"pageSize"`
}

// PageRequest is what a client sends to a paginated list endpoint.
type PageRequest struct {
	Page     int               // 0-indexed
	PageSize int
	Search   string            // omitted when empty
	Filters  map[string]string // only active filters
}
