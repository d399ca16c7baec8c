package usecase

import (
	"time"

	"rentdesk-srv/internal/location"
	"rentdesk-srv/internal/location/repository"
	"rentdesk-srv/pkg/log"
)

type implUseCase struct {
	repo     repository.PostgresRepository
	cache    repository.RedisRepository // optional
	cacheTTL time.Duration
	l        log.Logger
}

// New - Factory function. cache may be nil.
func New(repo repository.PostgresRepository, cache repository.RedisRepository, cacheTTL time.Duration, l log.Logger) location.UseCase {
	return &implUseCase{
		repo:     repo,
		cache:    cache,
		cacheTTL: cacheTTL,
		l:        l,
	}
}
