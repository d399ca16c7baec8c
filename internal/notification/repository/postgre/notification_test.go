package postgre

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	"rentdesk-srv/internal/model"
	"rentdesk-srv/internal/notification"
	"rentdesk-srv/internal/notification/repository"
	"rentdesk-srv/pkg/log"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var tenant = model.Scope{UserID: "t1", Role: model.RoleTenant}

func newRepo(t *testing.T) (repository.PostgresRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return New(db, log.NewNop()), mock
}

func TestListUnread(t *testing.T) {
	repo, mock := newRepo(t)
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta("nr.user_id = $1 WHERE (n.recipient_id = $1 OR (n.recipient_id IS NULL AND (n.role IS NULL OR n.role = $2))) AND nr.user_id IS NULL AND (n.title ILIKE $3 OR n.body ILIKE $3) ORDER BY n.created_at DESC, n.id LIMIT $4 OFFSET $5")).
		WithArgs("t1", "tenant", "%rent%", 10, 0).
		WillReturnRows(sqlmock.NewRows([]string{"id", "recipient_id", "role", "title", "body", "created_at", "read"}).
			AddRow("n1", "t1", nil, "Rent due", "Pay by Friday", now, false).
			AddRow("n2", nil, "tenant", "Water outage", "", now, false))

	got, err := repo.List(context.Background(), repository.ListOptions{
		Scope:  tenant,
		Search: "rent",
		Status: notification.StatusUnread,
		Limit:  10,
	})
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "t1", got[0].RecipientID)
	assert.Empty(t, got[0].Role)
	assert.Empty(t, got[1].RecipientID)
	assert.Equal(t, "tenant", got[1].Role)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMarkRead(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT n.id FROM notifications n WHERE (n.recipient_id = $1 OR (n.recipient_id IS NULL AND (n.role IS NULL OR n.role = $2))) AND n.id = $3")).
		WithArgs("t1", "tenant", "n1").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("n1"))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO notification_reads")).
		WithArgs("n1", "t1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.MarkRead(context.Background(), repository.MarkReadOptions{Scope: tenant, ID: "n1"}))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMarkReadNotVisible(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT n.id FROM notifications n")).
		WithArgs("t1", "tenant", "n9").
		WillReturnError(sql.ErrNoRows)

	err := repo.MarkRead(context.Background(), repository.MarkReadOptions{Scope: tenant, ID: "n9"})
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestInsertBroadcast(t *testing.T) {
	repo, mock := newRepo(t)
	now := time.Now()

	mock.ExpectExec(regexp.QuoteMeta("ON CONFLICT (id) DO NOTHING")).
		WithArgs("n1", nil, "admin", "Audit", "Friday", now).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Insert(context.Background(), model.Notification{ID: "n1", Role: "admin", Title: "Audit", Body: "Friday", CreatedAt: now})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
