package usecase

import (
	"context"
	"testing"

	"rentdesk-srv/internal/admin"
	"rentdesk-srv/internal/admin/repository"
	"rentdesk-srv/internal/model"
	"rentdesk-srv/pkg/log"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRepo struct{ opt repository.ListOptions }

func (f *fakeRepo) List(_ context.Context, opt repository.ListOptions) ([]model.Admin, error) {
	f.opt = opt
	return nil, nil
}

func (f *fakeRepo) Count(context.Context, repository.ListOptions) (int, error) { return 0, nil }

func TestList(t *testing.T) {
	repo := &fakeRepo{}
	uc := New(repo, log.NewNop())

	_, err := uc.List(context.Background(), model.Scope{UserID: "a1", Role: model.RoleAdmin}, admin.ListInput{})
	assert.ErrorIs(t, err, admin.ErrForbidden)

	page, err := uc.List(context.Background(), model.Scope{UserID: "s1", Role: model.RoleSuperAdmin}, admin.ListInput{Status: "active"})
	require.NoError(t, err)
	assert.True(t, page.Empty())
	assert.Equal(t, 0, page.TotalPages)
	assert.Equal(t, 10, repo.opt.Limit)
	assert.Equal(t, "active", repo.opt.Status)
}
