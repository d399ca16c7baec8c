package minio

import (
	"context"
	"fmt"
	"sync"

	"rentdesk-srv/config"
	"rentdesk-srv/pkg/minio"
)

var (
	mu     sync.Mutex
	client minio.MinIO
)

// Connect opens the property image store and makes sure its bucket exists.
// The client is shared for the life of the process.
func Connect(ctx context.Context, cfg *config.MinIOConfig) (minio.MinIO, error) {
	mu.Lock()
	defer mu.Unlock()

	if client != nil {
		return client, nil
	}

	c, err := minio.NewMinIO(cfg)
	if err != nil {
		return nil, fmt.Errorf("image store client: %w", err)
	}
	if err := c.Connect(ctx); err != nil {
		return nil, fmt.Errorf("image store %s: %w", cfg.Endpoint, err)
	}
	if err := c.EnsureBucket(ctx); err != nil {
		_ = c.Close()
		return nil, fmt.Errorf("image bucket %s: %w", cfg.Bucket, err)
	}
	client = c
	return client, nil
}

// Disconnect releases the shared client.
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
