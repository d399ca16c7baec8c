package redis

import (
	"context"
	"testing"
	"time"

	"rentdesk-srv/internal/model"
	"rentdesk-srv/pkg/log"
	"rentdesk-srv/pkg/paginator"
	pkgRedis "rentdesk-srv/pkg/redis"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListCache(t *testing.T) {
	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	repo := New(pkgRedis.NewFromClient(client), log.NewNop())
	ctx := context.Background()

	_, ok, err := repo.GetList(ctx, "property:list:k")
	require.NoError(t, err)
	assert.False(t, ok)

	page := paginator.NewPage([]model.Property{{
		ID:       "p1",
		Name:     "Palm Court",
		Location: &model.Ref{ID: "loc1", Name: "Lekki"},
		Status:   model.PropertyStatusAvailable,
	}}, 11, paginator.PageQuery{Page: 1, Size: 10})
	require.NoError(t, repo.SetList(ctx, "property:list:k", page, time.Minute))

	got, ok, err := repo.GetList(ctx, "property:list:k")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, page, got)

	mr.FastForward(2 * time.Minute)
	_, ok, err = repo.GetList(ctx, "property:list:k")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestGetListCorrupt(t *testing.T) {
	mr := miniredis.RunT(t)
	require.NoError(t, mr.Set("property:list:bad", "{"))
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	repo := New(pkgRedis.NewFromClient(client), log.NewNop())

	_, ok, err := repo.GetList(context.Background(), "property:list:bad")
	assert.Error(t, err)
	assert.False(t, ok)
}
