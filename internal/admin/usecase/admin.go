package usecase

import (
	"context"

	"rentdesk-srv/internal/admin"
	"rentdesk-srv/internal/admin/repository"
	"rentdesk-srv/internal/model"
	"rentdesk-srv/pkg/paginator"

	"golang.org/x/sync/errgroup"
)

func (uc *implUseCase) List(ctx context.Context, sc model.Scope, input admin.ListInput) (paginator.Page[model.Admin], error) {
	if !sc.IsSuperAdmin() {
		return paginator.Page[model.Admin]{}, admin.ErrForbidden
	}
	input.Query.Adjust()

	opt := repository.ListOptions{
		Search: input.Search,
		Status: input.Status,
		Limit:  input.Query.Size,
		Offset: input.Query.Offset(),
	}

	var (
		items []model.Admin
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
		uc.l.Errorf(ctx, "admin.usecase.List: %v", err)
		return paginator.Page[model.Admin]{}, err
	}

	return paginator.NewPage(items, total, input.Query), nil
}
