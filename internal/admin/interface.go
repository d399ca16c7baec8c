package admin

import (
	"context"

	"rentdesk-srv/internal/model"
	"rentdesk-srv/pkg/paginator"
)

//go:generate mockery --name UseCase
type UseCase interface {
	List(ctx context.Context, sc model.Scope, input ListInput) (paginator.Page[model.Admin], error)
}
