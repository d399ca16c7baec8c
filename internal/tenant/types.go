package tenant

import "rentdesk-srv/pkg/paginator"

type ListInput struct {
	Query      paginator.PageQuery
	Search     string
	Status     string
	LocationID string
}
