package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"rentdesk-srv/internal/model"
	"rentdesk-srv/pkg/paginator"
	pkgRedis "rentdesk-srv/pkg/redis"
)

func (r *implRepository) GetList(ctx context.Context, key string) (paginator.Page[model.Location], bool, error) {
	raw, err := r.client.Get(ctx, key)
	if err != nil {
		if errors.Is(err, pkgRedis.ErrNotFound) {
			return paginator.Page[model.Location]{}, false, nil
		}
		return paginator.Page[model.Location]{}, false, fmt.Errorf("GetList: %w", err)
	}

	var page paginator.Page[model.Location]
	if err := json.Unmarshal([]byte(raw), &page); err != nil {
		return paginator.Page[model.Location]{}, false, fmt.Errorf("GetList unmarshal: %w", err)
	}
	return page, true, nil
}

func (r *implRepository) SetList(ctx context.Context, key string, page paginator.Page[model.Location], ttl time.Duration) error {
	data, err := json.Marshal(page)
	if err != nil {
		return fmt.Errorf("SetList marshal: %w", err)
	}
	if err := r.client.Set(ctx, key, data, ttl); err != nil {
		return fmt.Errorf("SetList: %w", err)
	}
	return nil
}
