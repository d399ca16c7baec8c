package repository

import (
	"context"

	"rentdesk-srv/internal/model"
)

//go:generate mockery --name PostgresRepository
type PostgresRepository interface {
	List(ctx context.Context, opt ListOptions) ([]model.Tenant, error)
	Count(ctx context.Context, opt ListOptions) (int, error)
}
