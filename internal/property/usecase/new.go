package usecase

import (
	"time"

	"rentdesk-srv/internal/property"
	"rentdesk-srv/internal/property/repository"
	"rentdesk-srv/pkg/log"
)

type implUseCase struct {
	repo     repository.PostgresRepository
	cache    repository.RedisRepository // optional
	signer   property.ImageSigner       // optional
	cacheTTL time.Duration
	l        log.Logger
}

// New - Factory function. cache and signer may be nil.
func New(
	repo repository.PostgresRepository,
	cache repository.RedisRepository,
	signer property.ImageSigner,
	cacheTTL time.Duration,
	l log.Logger,
) property.UseCase {
	return &implUseCase{
		repo:     repo,
		cache:    cache,
		signer:   signer,
		cacheTTL: cacheTTL,
		l:        l,
	}
}
