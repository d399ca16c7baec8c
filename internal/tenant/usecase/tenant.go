package usecase

import (
	"context"

	"rentdesk-srv/internal/model"
	"rentdesk-srv/internal/tenant"
	"rentdesk-srv/internal/tenant/repository"
	"rentdesk-srv/pkg/paginator"

	"golang.org/x/sync/errgroup"
)

// List returns tenants. Admins only see tenants leasing one of their properties.
func (uc *implUseCase) List(ctx context.Context, sc model.Scope, input tenant.ListInput) (paginator.Page[model.Tenant], error) {
	if sc.IsTenant() {
		return paginator.Page[model.Tenant]{}, tenant.ErrForbidden
	}
	input.Query.Adjust()

	opt := repository.ListOptions{
		Scope:      sc,
		Search:     input.Search,
		Status:     input.Status,
		LocationID: input.LocationID,
		Limit:      input.Query.Size,
		Offset:     input.Query.Offset(),
	}

	var (
		items []model.Tenant
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
		uc.l.Errorf(ctx, "tenant.usecase.List: %v", err)
		return paginator.Page[model.Tenant]{}, err
	}

	return paginator.NewPage(items, total, input.Query), nil
}
