package usecase

import (
	"context"
	"testing"
	"time"

	"rentdesk-srv/internal/model"
	"rentdesk-srv/internal/notification"
	"rentdesk-srv/internal/notification/repository"
	"rentdesk-srv/pkg/log"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRepo struct {
	listOpt  repository.ListOptions
	inserted []model.Notification
	markErr  error
}

func (f *fakeRepo) List(_ context.Context, opt repository.ListOptions) ([]model.Notification, error) {
	f.listOpt = opt
	return []model.Notification{{ID: "n1", Title: "Rent due"}}, nil
}

func (f *fakeRepo) Count(context.Context, repository.ListOptions) (int, error) { return 1, nil }

func (f *fakeRepo) MarkRead(context.Context, repository.MarkReadOptions) error { return f.markErr }

func (f *fakeRepo) Insert(_ context.Context, n model.Notification) error {
	f.inserted = append(f.inserted, n)
	return nil
}

type fakePublisher struct{ sent []model.Notification }

func (f *fakePublisher) PublishNotification(_ context.Context, n model.Notification) error {
	f.sent = append(f.sent, n)
	return nil
}

var superAdmin = model.Scope{UserID: "s1", Role: model.RoleSuperAdmin}

func newUseCase(repo *fakeRepo, pub notification.Publisher) *implUseCase {
	uc := New(repo, pub, log.NewNop()).(*implUseCase)
	uc.now = func() time.Time { return time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC) }
	return uc
}

func TestList(t *testing.T) {
	repo := &fakeRepo{}
	uc := newUseCase(repo, nil)

	page, err := uc.List(context.Background(), model.Scope{UserID: "t1", Role: model.RoleTenant},
		notification.ListInput{Status: notification.StatusUnread})
	require.NoError(t, err)
	assert.Equal(t, 1, page.TotalPages)
	assert.Equal(t, notification.StatusUnread, repo.listOpt.Status)
	assert.Equal(t, "t1", repo.listOpt.Scope.UserID)
}

func TestMarkRead(t *testing.T) {
	uc := newUseCase(&fakeRepo{markErr: repository.ErrNotFound}, nil)
	sc := model.Scope{UserID: "t1", Role: model.RoleTenant}

	assert.ErrorIs(t, uc.MarkRead(context.Background(), sc, notification.MarkReadInput{ID: "nope"}), notification.ErrNotFound)
	assert.ErrorIs(t, uc.MarkRead(context.Background(), sc, notification.MarkReadInput{ID: uuid.NewString()}), notification.ErrNotFound)
}

func TestBroadcast(t *testing.T) {
	pub := &fakePublisher{}
	uc := newUseCase(&fakeRepo{}, pub)

	n, err := uc.Broadcast(context.Background(), superAdmin, notification.BroadcastInput{Title: " Audit ", Body: "Friday", Role: model.RoleAdmin})
	require.NoError(t, err)
	require.Len(t, pub.sent, 1)
	assert.Equal(t, n, pub.sent[0])
	assert.Equal(t, "Audit", n.Title)
	assert.Empty(t, n.RecipientID)
	assert.Equal(t, 2026, n.CreatedAt.Year())
	_, err = uuid.Parse(n.ID)
	assert.NoError(t, err)
}

func TestBroadcastRejected(t *testing.T) {
	tests := []struct {
		name string
		sc   model.Scope
		in   notification.BroadcastInput
		pub  notification.Publisher
		want error
	}{
		{"admin", model.Scope{UserID: "a1", Role: model.RoleAdmin}, notification.BroadcastInput{Title: "x"}, &fakePublisher{}, notification.ErrForbidden},
		{"bad role", superAdmin, notification.BroadcastInput{Title: "x", Role: "landlord"}, &fakePublisher{}, notification.ErrInvalidRole},
		{"blank title", superAdmin, notification.BroadcastInput{Title: "  "}, &fakePublisher{}, notification.ErrInvalidNotification},
		{"no publisher", superAdmin, notification.BroadcastInput{Title: "x"}, nil, notification.ErrPublisherUnavailable},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := newUseCase(&fakeRepo{}, tt.pub)
			_, err := uc.Broadcast(context.Background(), tt.sc, tt.in)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestStore(t *testing.T) {
	repo := &fakeRepo{}
	uc := newUseCase(repo, nil)

	id := uuid.NewString()
	require.NoError(t, uc.Store(context.Background(), model.Notification{ID: id, Title: "Audit"}))
	require.Len(t, repo.inserted, 1)
	assert.False(t, repo.inserted[0].CreatedAt.IsZero())

	assert.ErrorIs(t, uc.Store(context.Background(), model.Notification{ID: "x", Title: "Audit"}), notification.ErrInvalidNotification)
	assert.ErrorIs(t, uc.Store(context.Background(), model.Notification{ID: id, Title: "Audit", Role: "landlord"}), notification.ErrInvalidRole)
}
