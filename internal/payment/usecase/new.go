package usecase

import (
	"rentdesk-srv/internal/payment"
	"rentdesk-srv/internal/payment/repository"
	"rentdesk-srv/pkg/log"
)

type implUseCase struct {
	repo repository.PostgresRepository
	l    log.Logger
}

// New - Factory function
func New(repo repository.PostgresRepository, l log.Logger) payment.UseCase {
	return &implUseCase{
		repo: repo,
		l:    l,
	}
}
