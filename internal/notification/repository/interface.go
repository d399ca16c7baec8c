package repository

import (
	"context"

	"rentdesk-srv/internal/model"
)

//go:generate mockery --name PostgresRepository
type PostgresRepository interface {
	List(ctx context.Context, opt ListOptions) ([]model.Notification, error)
	Count(ctx context.Context, opt ListOptions) (int, error)
	// MarkRead returns ErrNotFound when the notification is not visible to the caller.
	MarkRead(ctx context.Context, opt MarkReadOptions) error
	Insert(ctx context.Context, n model.Notification) error
}
