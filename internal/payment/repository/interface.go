package repository

import (
	"context"

	"rentdesk-srv/internal/model"
)

//go:generate mockery --name PostgresRepository
type PostgresRepository interface {
	List(ctx context.Context, opt ListOptions) ([]model.Payment, error)
	Count(ctx context.Context, opt ListOptions) (int, error)
	ListDue(ctx context.Context, opt DueOptions) ([]model.DueRent, error)
	CountDue(ctx context.Context, opt DueOptions) (int, error)
}
