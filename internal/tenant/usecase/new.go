package usecase

import (
	"rentdesk-srv/internal/tenant"
	"rentdesk-srv/internal/tenant/repository"
	"rentdesk-srv/pkg/log"
)

type implUseCase struct {
	repo repository.PostgresRepository
	l    log.Logger
}

// New - Factory function
func New(repo repository.PostgresRepository, l log.Logger) tenant.UseCase {
	return &implUseCase{
		repo: repo,
		l:    l,
	}
}
