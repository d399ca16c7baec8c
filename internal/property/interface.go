package property

import (
	"context"

	"rentdesk-srv/internal/model"
	"rentdesk-srv/pkg/paginator"
)

//go:generate mockery --name UseCase
type UseCase interface {
	List(ctx context.Context, sc model.Scope, input ListInput) (paginator.Page[Output], error)
	Detail(ctx context.Context, sc model.Scope, input DetailInput) (Output, error)
}

// ImageSigner signs read URLs for stored property images.
type ImageSigner interface {
	PresignedGet(ctx context.Context, objectName string) (string, error)
}
