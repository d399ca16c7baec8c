package location

import (
	"context"

	"rentdesk-srv/internal/model"
	"rentdesk-srv/pkg/paginator"
)

// UseCase lists locations. Every role sees the same list, so pages are cached across users.
//
//go:generate mockery --name UseCase
type UseCase interface {
	List(ctx context.Context, sc model.Scope, input ListInput) (paginator.Page[model.Location], error)
}
