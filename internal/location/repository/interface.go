package repository

import (
	"context"
	"time"

	"rentdesk-srv/internal/model"
	"rentdesk-srv/pkg/paginator"
)

//go:generate mockery --name PostgresRepository
type PostgresRepository interface {
	List(ctx context.Context, opt ListOptions) ([]model.Location, error)
	Count(ctx context.Context, opt ListOptions) (int, error)
}

type RedisRepository interface {
	GetList(ctx context.Context, key string) (paginator.Page[model.Location], bool, error)
	SetList(ctx context.Context, key string, page paginator.Page[model.Location], ttl time.Duration) error
}
