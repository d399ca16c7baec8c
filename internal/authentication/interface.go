package authentication

import (
	"context"

	"rentdesk-srv/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	Login(ctx context.Context, input LoginInput) (LoginOutput, error)
	// Me returns the account behind the session scope.
	Me(ctx context.Context, sc model.Scope) (model.User, error)
}
