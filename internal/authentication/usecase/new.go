package usecase

import (
	"rentdesk-srv/internal/authentication"
	"rentdesk-srv/internal/authentication/repository"
	"rentdesk-srv/pkg/encrypter"
	"rentdesk-srv/pkg/jwt"
	"rentdesk-srv/pkg/log"
)

type implUseCase struct {
	repo      repository.PostgresRepository
	encrypter encrypter.Encrypter
	tokens    jwt.IManager
	l         log.Logger
}

// New - Factory function
func New(repo repository.PostgresRepository, enc encrypter.Encrypter, tokens jwt.IManager, l log.Logger) authentication.UseCase {
	return &implUseCase{
		repo:      repo,
		encrypter: enc,
		tokens:    tokens,
		l:         l,
	}
}
