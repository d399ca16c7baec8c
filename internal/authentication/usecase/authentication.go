package usecase

import (
	"context"
	"errors"
	"strings"

	"rentdesk-srv/internal/authentication"
	"rentdesk-srv/internal/authentication/repository"
	"rentdesk-srv/internal/model"
)

// disabledStatuses cannot sign in. Inactive tenants (no current lease) still can.
var disabledStatuses = map[string]bool{
	model.UserStatusSuspended: true,
	model.UserStatusEvicted:   true,
}

func (uc *implUseCase) Login(ctx context.Context, input authentication.LoginInput) (authentication.LoginOutput, error) {
	email := strings.TrimSpace(input.Email)
	if email == "" || input.Password == "" {
		return authentication.LoginOutput{}, authentication.ErrInvalidCredentials
	}

	u, err := uc.repo.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return authentication.LoginOutput{}, authentication.ErrInvalidCredentials
		}
		uc.l.Errorf(ctx, "authentication.usecase.Login: GetUserByEmail failed: %v", err)
		return authentication.LoginOutput{}, err
	}
	if !uc.encrypter.CheckPasswordHash(input.Password, u.PasswordHash) {
		return authentication.LoginOutput{}, authentication.ErrInvalidCredentials
	}
	if disabledStatuses[u.Status] {
		return authentication.LoginOutput{}, authentication.ErrAccountDisabled
	}

	token, err := uc.tokens.Generate(model.Scope{UserID: u.ID, Email: u.Email, Role: u.Role})
	if err != nil {
		uc.l.Errorf(ctx, "authentication.usecase.Login: Generate failed: %v", err)
		return authentication.LoginOutput{}, err
	}

	uc.l.Infof(ctx, "authentication.usecase.Login: %s signed in as %s", u.ID, u.Role)
	u.PasswordHash = ""
	return authentication.LoginOutput{Token: token.Value, ExpiresAt: token.ExpiresAt, User: u}, nil
}

func (uc *implUseCase) Me(ctx context.Context, sc model.Scope) (model.User, error) {
	u, err := uc.repo.GetUserByID(ctx, sc.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return model.User{}, authentication.ErrUserNotFound
		}
		uc.l.Errorf(ctx, "authentication.usecase.Me: GetUserByID failed: %v", err)
		return model.User{}, err
	}
	if disabledStatuses[u.Status] {
		return model.User{}, authentication.ErrAccountDisabled
	}
	u.PasswordHash = ""
	return u, nil
}
