package usecase

import (
	"context"
	"errors"
	"strings"

	"rentdesk-srv/internal/model"
	"rentdesk-srv/internal/notification"
	"rentdesk-srv/internal/notification/repository"
	"rentdesk-srv/pkg/paginator"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

func (uc *implUseCase) List(ctx context.Context, sc model.Scope, input notification.ListInput) (paginator.Page[model.Notification], error) {
	input.Query.Adjust()

	opt := repository.ListOptions{
		Scope:  sc,
		Search: input.Search,
		Status: input.Status,
		Limit:  input.Query.Size,
		Offset: input.Query.Offset(),
	}

	var (
		items []model.Notification
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
		uc.l.Errorf(ctx, "notification.usecase.List: %v", err)
		return paginator.Page[model.Notification]{}, err
	}

	return paginator.NewPage(items, total, input.Query), nil
}

func (uc *implUseCase) MarkRead(ctx context.Context, sc model.Scope, input notification.MarkReadInput) error {
	if _, err := uuid.Parse(input.ID); err != nil {
		return notification.ErrNotFound
	}

	if err := uc.repo.MarkRead(ctx, repository.MarkReadOptions{Scope: sc, ID: input.ID}); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return notification.ErrNotFound
		}
		uc.l.Errorf(ctx, "notification.usecase.MarkRead: %v", err)
		return err
	}
	return nil
}

func (uc *implUseCase) Broadcast(ctx context.Context, sc model.Scope, input notification.BroadcastInput) (model.Notification, error) {
	if !sc.IsSuperAdmin() {
		return model.Notification{}, notification.ErrForbidden
	}
	if input.Role != "" && !model.ValidRole(input.Role) {
		return model.Notification{}, notification.ErrInvalidRole
	}
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return model.Notification{}, notification.ErrInvalidNotification
	}
	if uc.publisher == nil {
		return model.Notification{}, notification.ErrPublisherUnavailable
	}

	n := model.Notification{
		ID:        uuid.NewString(),
		Role:      input.Role,
		Title:     title,
		Body:      strings.TrimSpace(input.Body),
		CreatedAt: uc.now().UTC(),
	}
	if err := uc.publisher.PublishNotification(ctx, n); err != nil {
		uc.l.Errorf(ctx, "notification.usecase.Broadcast: PublishNotification failed: %v", err)
		return model.Notification{}, err
	}

	uc.l.Infof(ctx, "notification.usecase.Broadcast: published %s to role=%q", n.ID, n.Role)
	return n, nil
}

func (uc *implUseCase) Store(ctx context.Context, n model.Notification) error {
	if _, err := uuid.Parse(n.ID); err != nil {
		return notification.ErrInvalidNotification
	}
	if n.Title == "" {
		return notification.ErrInvalidNotification
	}
	if n.Role != "" && !model.ValidRole(n.Role) {
		return notification.ErrInvalidRole
	}
	if n.CreatedAt.IsZero() {
		n.CreatedAt = uc.now().UTC()
	}

	if err := uc.repo.Insert(ctx, n); err != nil {
		uc.l.Errorf(ctx, "notification.usecase.Store: %v", err)
		return err
	}
	return nil
}
