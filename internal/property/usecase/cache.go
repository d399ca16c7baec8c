package usecase

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"rentdesk-srv/internal/model"
	"rentdesk-srv/internal/property"
	"rentdesk-srv/pkg/paginator"
)

const cachePrefix = "property:list"

// listCacheKey is property:list:<role>.<user>:<sha256 of the list parameters>.
func listCacheKey(sc model.Scope, input property.ListInput) string {
	sum := sha256.Sum256([]byte(fmt.Sprintf("%d|%d|%s|%s|%s",
		input.Query.Page, input.Query.Size, input.Search, input.Status, input.LocationID)))
	return fmt.Sprintf("%s:%s.%s:%s", cachePrefix, sc.Role, sc.UserID, hex.EncodeToString(sum[:]))
}

// cached reads a page from the cache. Cache errors are logged and treated as a miss.
func (uc *implUseCase) cached(ctx context.Context, key string) (paginator.Page[model.Property], bool) {
	if uc.cache == nil {
		return paginator.Page[model.Property]{}, false
	}
	page, ok, err := uc.cache.GetList(ctx, key)
	if err != nil {
		uc.l.Warnf(ctx, "property.usecase.cached: GetList failed: %v", err)
		return paginator.Page[model.Property]{}, false
	}
	return page, ok
}

func (uc *implUseCase) store(ctx context.Context, key string, page paginator.Page[model.Property]) {
	if uc.cache == nil || uc.cacheTTL <= 0 {
		return
	}
	if err := uc.cache.SetList(ctx, key, page, uc.cacheTTL); err != nil {
		uc.l.Warnf(ctx, "property.usecase.store: SetList failed: %v", err)
	}
}
