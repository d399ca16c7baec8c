package property

import (
	"rentdesk-srv/internal/model"
	"rentdesk-srv/pkg/paginator"
)

// ListInput selects a page of properties. Empty Status or LocationID means no filter.
type ListInput struct {
	Query      paginator.PageQuery
	Search     string
	Status     string
	LocationID string
}

type DetailInput struct {
	ID string
}

// Output is a property with a short-lived image URL, empty when it has no image.
type Output struct {
	Property model.Property
	ImageURL string
}
