package postgre

import (
	"context"
	"regexp"
	"testing"
	"time"

	"rentdesk-srv/internal/admin/repository"
	"rentdesk-srv/pkg/log"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestList(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	repo := New(db, log.NewNop())

	mock.ExpectQuery(regexp.QuoteMeta("FROM users u WHERE u.role = $1 AND u.status = $2 ORDER BY u.created_at DESC, u.id LIMIT $3 OFFSET $4")).
		WithArgs("admin", "suspended", 10, 0).
		WillReturnRows(sqlmock.NewRows([]string{"id", "email", "first_name", "last_name", "phone", "status", "created_at", "properties_count"}).
			AddRow("a1", "kemi@x.io", "Kemi", "Ade", "", "suspended", time.Now(), 4))

	got, err := repo.List(context.Background(), repository.ListOptions{Status: "suspended", Limit: 10})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, 4, got[0].PropertiesCount)
	assert.Equal(t, "admin", got[0].Role)
}

func TestCountFailure(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	repo := New(db, log.NewNop())

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM users u WHERE u.role = $1 AND (u.first_name ILIKE $2 OR u.last_name ILIKE $2 OR u.email ILIKE $2)")).
		WithArgs("admin", "%kemi%").
		WillReturnError(assert.AnError)

	_, err = repo.Count(context.Background(), repository.ListOptions{Search: " kemi "})
	assert.ErrorIs(t, err, repository.ErrFailedToList)
	assert.ErrorIs(t, err, assert.AnError)
}
