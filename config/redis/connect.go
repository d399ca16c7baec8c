package redis

import (
	"context"
	"fmt"
	"sync"

	"rentdesk-srv/config"
	"rentdesk-srv/pkg/redis"
)

var (
	mu     sync.Mutex
	client redis.IRedis
)

// Connect dials the list-page cache once per process. A failed attempt is
// not remembered, so callers may retry.
func Connect(ctx context.Context, cfg config.RedisConfig) (redis.IRedis, error) {
	mu.Lock()
	defer mu.Unlock()

	if client != nil {
		return client, nil
	}

	c, err := redis.NewRedis(ctx, redis.Config{
		Host:     cfg.Host,
		Port:     cfg.Port,
		Password: cfg.Password,
		DB:       cfg.DB,
		PoolSize: cfg.PoolSize,
	})
	if err != nil {
		return nil, fmt.Errorf("connect cache: %w", err)
	}
	client = c
	return client, nil
}

// Disconnect closes the shared client. Calling it twice is a no-op.
func Disconnect() error {
	mu.Lock()
	defer mu.Unlock()

	if client == nil {
		return nil
	}
	err := client.Close()
	client = nil
	return err
}
