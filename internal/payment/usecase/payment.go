package usecase

import (
	"context"

	"rentdesk-srv/internal/model"
	"rentdesk-srv/internal/payment"
	"rentdesk-srv/internal/payment/repository"
	"rentdesk-srv/pkg/paginator"

	"golang.org/x/sync/errgroup"
)

func (uc *implUseCase) List(ctx context.Context, sc model.Scope, input payment.ListInput) (paginator.Page[model.Payment], error) {
	input.Query.Adjust()
	if input.Sort == "" {
		input.Sort = payment.SortNewest
	}
	switch input.Sort {
	case payment.SortNewest, payment.SortOldest, payment.SortAmountAsc, payment.SortAmountDesc:
	default:
		return paginator.Page[model.Payment]{}, payment.ErrInvalidSort
	}

	opt := repository.ListOptions{
		Scope:  sc,
		Search: input.Search,
		Status: input.Status,
		Sort:   input.Sort,
		Limit:  input.Query.Size,
		Offset: input.Query.Offset(),
	}

	var (
		items []model.Payment
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
		uc.l.Errorf(ctx, "payment.usecase.List: %v", err)
		return paginator.Page[model.Payment]{}, err
	}

	return paginator.NewPage(items, total, input.Query), nil
}

// Due lists rent that is unpaid and due within payment.DueWindowDays. Tenants are refused.
func (uc *implUseCase) Due(ctx context.Context, sc model.Scope, input payment.DueInput) (paginator.Page[model.DueRent], error) {
	if !sc.IsAdmin() && !sc.IsSuperAdmin() {
		return paginator.Page[model.DueRent]{}, payment.ErrForbidden
	}
	input.Query.Adjust()

	opt := repository.DueOptions{
		Scope:      sc,
		Search:     input.Search,
		LocationID: input.LocationID,
		WindowDays: payment.DueWindowDays,
		Limit:      input.Query.Size,
		Offset:     input.Query.Offset(),
	}

	var (
		items []model.DueRent
		total int
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		items, err = uc.repo.ListDue(gctx, opt)
		return err
	})
	g.Go(func() error {
		var err error
		total, err = uc.repo.CountDue(gctx, opt)
		return err
	})
	if err := g.Wait(); err != nil {
		uc.l.Errorf(ctx, "payment.usecase.Due: %v", err)
		return paginator.Page[model.DueRent]{}, err
	}

	return paginator.NewPage(items, total, input.Query), nil
}
