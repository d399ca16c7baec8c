package notification

import (
	"context"

	"rentdesk-srv/internal/model"
	"rentdesk-srv/pkg/paginator"
)

//go:generate mockery --name UseCase
type UseCase interface {
	List(ctx context.Context, sc model.Scope, input ListInput) (paginator.Page[model.Notification], error)
	MarkRead(ctx context.Context, sc model.Scope, input MarkReadInput) error
	// Broadcast publishes a notification event. It is stored when the consumer receives it.
	Broadcast(ctx context.Context, sc model.Scope, input BroadcastInput) (model.Notification, error)
	// Store persists a received notification. Storing the same ID twice is a no-op.
	Store(ctx context.Context, n model.Notification) error
}

// Publisher sends notification events to the broadcast stream.
type Publisher interface {
	PublishNotification(ctx context.Context, n model.Notification) error
}
