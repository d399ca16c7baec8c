package table

import (
	"context"
	"time"

	"rentdesk-srv/pkg/log"
	"rentdesk-srv/pkg/paginator"
	"rentdesk-srv/pkg/querysync"
)

// FetchFunc loads one page from a remote list endpoint.
type FetchFunc[T any] func(ctx context.Context, req paginator.PageRequest) (paginator.Page[T], error)

// ProjectFunc turns an item into a display row. serial is the one-based position
// of the item across all pages.
type ProjectFunc[T, R any] func(item T, serial int) R

// Config configures a Controller.
type Config[T, R any] struct {
	Name      string
	Path      string
	Fetch     FetchFunc[T]
	Project   ProjectFunc[T, R]
	Filters   []querysync.Filter
	PageSize  int
	Debounce  time.Duration // 0 means DefaultDebounce, negative disables debouncing
	Navigator querysync.Navigator
	Logger    log.Logger
	CacheSize int
	Describe  func(error) string
	OnChange  func(Snapshot[R])
}

// State is the user-controlled part of a table.
type State struct {
	CurrentPage         int // one-based
	PageSize            int
	SearchTerm          string
	DebouncedSearchTerm string
	Filters             map[string]string
}

// Pagination is the display form of a page's metadata.
type Pagination struct {
	CurrentPage int // one-based
	TotalPages  int
	PageSize    int
	TotalItems  int
}

// Snapshot is what a table renders.
type Snapshot[R any] struct {
	Rows         []R
	Pagination   Pagination
	Request      paginator.PageRequest // latest issued request
	IsLoading    bool
	IsError      bool
	Err          error
	ErrorMessage string
	HasData      bool   // at least one successful response has been applied
	Version      uint64 // increases with every change
}

// Empty reports whether the latest successful response carried no rows.
func (s Snapshot[R]) Empty() bool {
	return s.HasData && !s.IsError && len(s.Rows) == 0
}

// ShowPagination reports whether pagination controls should be rendered.
func (s Snapshot[R]) ShowPagination() bool {
	return s.HasData && s.Pagination.TotalItems > 0
}
