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

	page := paginator.NewPage([]model.Location{{ID: "loc1", Name: "Lekki", State: "Lagos", PropertiesCount: 9}},
		1, paginator.PageQuery{Size: 10})
	require.NoError(t, repo.SetList(ctx, "location:list:k", page, time.Minute))
	assert.Equal(t, time.Minute, mr.TTL("location:list:k"))

	got, ok, err := repo.GetList(ctx, "location:list:k")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, page, got)

	_, ok, err = repo.GetList(ctx, "location:list:other")
	require.NoError(t, err)
	assert.False(t, ok)
}
