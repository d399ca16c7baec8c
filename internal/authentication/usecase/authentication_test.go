package usecase

import (
	"context"
	"testing"
	"time"

	"rentdesk-srv/internal/authentication"
	"rentdesk-srv/internal/authentication/repository"
	"rentdesk-srv/internal/model"
	"rentdesk-srv/pkg/encrypter"
	"rentdesk-srv/pkg/jwt"
	"rentdesk-srv/pkg/log"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRepo struct{ users map[string]model.User }

func (f fakeRepo) GetUserByEmail(_ context.Context, email string) (model.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return model.User{}, repository.ErrNotFound
}

func (f fakeRepo) GetUserByID(_ context.Context, id string) (model.User, error) {
	u, ok := f.users[id]
	if !ok {
		return model.User{}, repository.ErrNotFound
	}
	return u, nil
}

func newUseCase(t *testing.T) (authentication.UseCase, jwt.IManager) {
	t.Helper()
	enc := encrypter.New(4)
	hash, err := enc.HashPassword("s3cret-pass")
	require.NoError(t, err)

	tokens, err := jwt.New(jwt.Config{SecretKey: "0123456789abcdef0123456789abcdef", Issuer: "rentdesk", TTL: time.Hour})
	require.NoError(t, err)

	repo := fakeRepo{users: map[string]model.User{
		"u1": {ID: "u1", Email: "ada@x.io", PasswordHash: hash, Role: model.RoleTenant, Status: model.UserStatusActive},
		"u2": {ID: "u2", Email: "kemi@x.io", PasswordHash: hash, Role: model.RoleAdmin, Status: model.UserStatusSuspended},
	}}
	return New(repo, enc, tokens, log.NewNop()), tokens
}

func TestLogin(t *testing.T) {
	uc, tokens := newUseCase(t)

	out, err := uc.Login(context.Background(), authentication.LoginInput{Email: "ada@x.io", Password: "s3cret-pass"})
	require.NoError(t, err)
	assert.Empty(t, out.User.PasswordHash)
	assert.True(t, out.ExpiresAt.After(time.Now()))

	payload, err := tokens.Verify(out.Token)
	require.NoError(t, err)
	assert.Equal(t, "u1", payload.Subject)
	assert.Equal(t, model.RoleTenant, payload.Role)
}

func TestLoginRejected(t *testing.T) {
	uc, _ := newUseCase(t)

	tests := []struct {
		name string
		in   authentication.LoginInput
		want error
	}{
		{"unknown email", authentication.LoginInput{Email: "bo@x.io", Password: "s3cret-pass"}, authentication.ErrInvalidCredentials},
		{"wrong password", authentication.LoginInput{Email: "ada@x.io", Password: "nope"}, authentication.ErrInvalidCredentials},
		{"empty", authentication.LoginInput{}, authentication.ErrInvalidCredentials},
		{"suspended", authentication.LoginInput{Email: "kemi@x.io", Password: "s3cret-pass"}, authentication.ErrAccountDisabled},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Login(context.Background(), tt.in)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestMe(t *testing.T) {
	uc, _ := newUseCase(t)

	u, err := uc.Me(context.Background(), model.Scope{UserID: "u1", Role: model.RoleTenant})
	require.NoError(t, err)
	assert.Equal(t, "ada@x.io", u.Email)
	assert.Empty(t, u.PasswordHash)

	_, err = uc.Me(context.Background(), model.Scope{UserID: "u9"})
	assert.ErrorIs(t, err, authentication.ErrUserNotFound)
	_, err = uc.Me(context.Background(), model.Scope{UserID: "u2"})
	assert.ErrorIs(t, err, authentication.ErrAccountDisabled)
}
