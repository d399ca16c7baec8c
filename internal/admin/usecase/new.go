package usecase

import (
	"rentdesk-srv/internal/admin"
	"rentdesk-srv/internal/admin/repository"
	"rentdesk-srv/pkg/log"
)

type implUseCase struct {
	repo repository.PostgresRepository
	l    log.Logger
}

// New - Factory function
func New(repo repository.PostgresRepository, l log.Logger) admin.UseCase {
	return &implUseCase{
		repo: repo,
		l:    l,
	}
}
