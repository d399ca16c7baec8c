package postgre

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"rentdesk-srv/internal/authentication/repository"
	"rentdesk-srv/internal/model"
)

const userColumns = `id, email, password_hash, role, first_name, last_name, phone, status, created_at`

func (r *implRepository) GetUserByEmail(ctx context.Context, email string) (model.User, error) {
	return r.getUser(ctx, "SELECT "+userColumns+" FROM users WHERE lower(email) = $1",
		strings.ToLower(strings.TrimSpace(email)))
}

func (r *implRepository) GetUserByID(ctx context.Context, id string) (model.User, error) {
	return r.getUser(ctx, "SELECT "+userColumns+" FROM users WHERE id = $1", id)
}

func (r *implRepository) getUser(ctx context.Context, query string, arg string) (model.User, error) {
	var u model.User
	err := r.db.QueryRowContext(ctx, query, arg).Scan(
		&u.ID, &u.Email, &u.PasswordHash, &u.Role, &u.FirstName, &u.LastName, &u.Phone, &u.Status, &u.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return model.User{}, repository.ErrNotFound
	}
	if err != nil {
		r.l.Errorf(ctx, "authentication.repository.postgre.getUser: query failed: %v", err)
		return model.User{}, fmt.Errorf("%w: %w", repository.ErrFailedToGet, err)
	}
	return u, nil
}
