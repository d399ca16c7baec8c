package usecase

import (
	"time"

	"rentdesk-srv/internal/notification"
	"rentdesk-srv/internal/notification/repository"
	"rentdesk-srv/pkg/log"
)

type implUseCase struct {
	repo      repository.PostgresRepository
	publisher notification.Publisher // nil in the consumer
	l         log.Logger
	now       func() time.Time
}

// New - Factory function. publisher may be nil where Broadcast is not served.
func New(repo repository.PostgresRepository, publisher notification.Publisher, l log.Logger) notification.UseCase {
	return &implUseCase{
		repo:      repo,
		publisher: publisher,
		l:         l,
		now:       time.Now,
	}
}
