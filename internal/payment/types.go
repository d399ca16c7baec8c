package payment

import "rentdesk-srv/pkg/paginator"

// Sort orders accepted by List. SortNewest is the default.
const (
	SortNewest     = "newest"
	SortOldest     = "oldest"
	SortAmountAsc  = "amount_asc"
	SortAmountDesc = "amount_desc"
)

// DueWindowDays is how far ahead of its due date an unpaid payment is listed as due.
const DueWindowDays = 7

type ListInput struct {
	Query  paginator.PageQuery
	Search string
	Status string
	Sort   string
}

type DueInput struct {
	Query      paginator.PageQuery
	Search     string
	LocationID string
}
