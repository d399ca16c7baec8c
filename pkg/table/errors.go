package table

import "errors"

var (
	ErrNotMounted         = errors.New("table: controller not mounted")
	ErrClosed             = errors.New("table: controller closed")
	ErrUnknownFilter      = errors.New("table: unknown filter")
	ErrInvalidFilterValue = errors.New("table: filter value not allowed")
	ErrInvalidPage        = errors.New("table: page must be >= 1")
	ErrInvalidPageSize    = errors.New("table: page size must be > 0")
	ErrMissingFetch       = errors.New("table: fetch function is required")
	ErrMissingProject     = errors.New("table: project function is required")
)
