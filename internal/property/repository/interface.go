package repository

import (
	"context"
	"time"

	"rentdesk-srv/internal/model"
	"rentdesk-srv/pkg/paginator"
)

//go:generate mockery --name PostgresRepository
type PostgresRepository interface {
	List(ctx context.Context, opt ListOptions) ([]model.Property, error)
	Count(ctx context.Context, opt ListOptions) (int, error)
	Detail(ctx context.Context, opt DetailOptions) (model.Property, error)
}

// RedisRepository caches whole list pages.
type RedisRepository interface {
	GetList(ctx context.Context, key string) (paginator.Page[model.Property], bool, error)
	SetList(ctx context.Context, key string, page paginator.Page[model.Property], ttl time.Duration) error
}
