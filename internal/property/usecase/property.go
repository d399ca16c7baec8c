package usecase

import (
	"context"
	"errors"

	"rentdesk-srv/internal/model"
	"rentdesk-srv/internal/property"
	"rentdesk-srv/internal/property/repository"
	"rentdesk-srv/pkg/paginator"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

func (uc *implUseCase) List(ctx context.Context, sc model.Scope, input property.ListInput) (paginator.Page[property.Output], error) {
	input.Query.Adjust()
	key := listCacheKey(sc, input)

	if page, ok := uc.cached(ctx, key); ok {
		return uc.withImages(ctx, page), nil
	}

	opt := repository.ListOptions{
		Scope:      sc,
		Search:     input.Search,
		Status:     input.Status,
		LocationID: input.LocationID,
		Limit:      input.Query.Size,
		Offset:     input.Query.Offset(),
	}

	var (
		items []model.Property
		total int
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		items, err = uc.repo.List(gctx, opt)
		return err
	})
	g.Go(func() error {
		var err error
		total, err = uc.repo.Count(gctx, opt)
		return err
	})
	if err := g.Wait(); err != nil {
		uc.l.Errorf(ctx, "property.usecase.List: %v", err)
		return paginator.Page[property.Output]{}, err
	}

	page := paginator.NewPage(items, total, input.Query)
	uc.store(ctx, key, page)
	return uc.withImages(ctx, page), nil
}

func (uc *implUseCase) Detail(ctx context.Context, sc model.Scope, input property.DetailInput) (property.Output, error) {
	if _, err := uuid.Parse(input.ID); err != nil {
		return property.Output{}, property.ErrNotFound
	}

	p, err := uc.repo.Detail(ctx, repository.DetailOptions{Scope: sc, ID: input.ID})
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return property.Output{}, property.ErrNotFound
		}
		uc.l.Errorf(ctx, "property.usecase.Detail: %v", err)
		return property.Output{}, err
	}
	return uc.toOutput(ctx, p), nil
}

func (uc *implUseCase) withImages(ctx context.Context, page paginator.Page[model.Property]) paginator.Page[property.Output] {
	return paginator.Map(page, func(p model.Property) property.Output {
		return uc.toOutput(ctx, p)
	})
}

// toOutput signs the image URL. Signing failures leave the URL empty.
func (uc *implUseCase) toOutput(ctx context.Context, p model.Property) property.Output {
	out := property.Output{Property: p}
	if uc.signer == nil || p.ImageKey == "" {
		return out
	}
	url, err := uc.signer.PresignedGet(ctx, p.ImageKey)
	if err != nil {
		uc.l.Warnf(ctx, "property.usecase.toOutput: PresignedGet %s failed: %v", p.ImageKey, err)
		return out
	}
	out.ImageURL = url
	return out
}
