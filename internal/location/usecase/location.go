package usecase

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"rentdesk-srv/internal/location"
	"rentdesk-srv/internal/location/repository"
	"rentdesk-srv/internal/model"
	"rentdesk-srv/pkg/paginator"

	"golang.org/x/sync/errgroup"
)

const cachePrefix = "location:list"

func listCacheKey(input location.ListInput) string {
	sum := sha256.Sum256([]byte(fmt.Sprintf("%d|%d|%s", input.Query.Page, input.Query.Size, input.Search)))
	return cachePrefix + ":" + hex.EncodeToString(sum[:])
}

func (uc *implUseCase) List(ctx context.Context, _ model.Scope, input location.ListInput) (paginator.Page[model.Location], error) {
	input.Query.Adjust()

	key := listCacheKey(input)
	if uc.cache != nil {
		page, ok, err := uc.cache.GetList(ctx, key)
		if err != nil {
			uc.l.Warnf(ctx, "location.usecase.List: GetList failed: %v", err)
		} else if ok {
			return page, nil
		}
	}

	opt := repository.ListOptions{
		Search: input.Search,
		Limit:  input.Query.Size,
		Offset: input.Query.Offset(),
	}

	var (
		items []model.Location
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
		uc.l.Errorf(ctx, "location.usecase.List: %v", err)
		return paginator.Page[model.Location]{}, err
	}

	page := paginator.NewPage(items, total, input.Query)
	if uc.cache != nil && uc.cacheTTL > 0 {
		if err := uc.cache.SetList(ctx, key, page, uc.cacheTTL); err != nil {
			uc.l.Warnf(ctx, "location.usecase.List: SetList failed: %v", err)
		}
	}
	return page, nil
}
