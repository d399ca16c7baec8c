package postgre

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"rentdesk-srv/internal/model"
	"rentdesk-srv/internal/notification/repository"
	"rentdesk-srv/pkg/sqlbuilder"
)

func (r *implRepository) List(ctx context.Context, opt repository.ListOptions) ([]model.Notification, error) {
	w := buildListWhere(opt)
	page, args := w.Page(opt.Limit, opt.Offset)
	query := "SELECT " + notificationColumns + notificationFrom + w.SQL() + " ORDER BY n.created_at DESC, n.id" + page

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "notification.repository.postgre.List: query failed: %v", err)
		return nil, fmt.Errorf("%w: %w", repository.ErrFailedToList, err)
	}
	defer rows.Close()

	var items []model.Notification
	for rows.Next() {
		var (
			n                 model.Notification
			recipientID, role sql.NullString
		)
		if err := rows.Scan(&n.ID, &recipientID, &role, &n.Title, &n.Body, &n.CreatedAt, &n.Read); err != nil {
			return nil, fmt.Errorf("List scan: %w", err)
		}
		n.RecipientID = recipientID.String
		n.Role = role.String
		items = append(items, n)
	}
	return items, rows.Err()
}

func (r *implRepository) Count(ctx context.Context, opt repository.ListOptions) (int, error) {
	w := buildListWhere(opt)

	var total int
	if err := r.db.QueryRowContext(ctx, "SELECT COUNT(*)"+notificationFrom+w.SQL(), w.Args()...).Scan(&total); err != nil {
		r.l.Errorf(ctx, "notification.repository.postgre.Count: query failed: %v", err)
		return 0, fmt.Errorf("%w: %w", repository.ErrFailedToList, err)
	}
	return total, nil
}

func (r *implRepository) MarkRead(ctx context.Context, opt repository.MarkReadOptions) error {
	w := &sqlbuilder.Where{}
	buildScope(w, opt.Scope)
	w.Add("n.id = ?", opt.ID)

	var id string
	err := r.db.QueryRowContext(ctx, "SELECT n.id FROM notifications n"+w.SQL(), w.Args()...).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return repository.ErrNotFound
	}
	if err != nil {
		r.l.Errorf(ctx, "notification.repository.postgre.MarkRead: lookup failed: %v", err)
		return fmt.Errorf("%w: %w", repository.ErrFailedToUpdate, err)
	}

	_, err = r.db.ExecContext(ctx,
		`INSERT INTO notification_reads (notification_id, user_id) VALUES ($1, $2) ON CONFLICT DO NOTHING`,
		id, opt.Scope.UserID)
	if err != nil {
		r.l.Errorf(ctx, "notification.repository.postgre.MarkRead: insert failed: %v", err)
		return fmt.Errorf("%w: %w", repository.ErrFailedToUpdate, err)
	}
	return nil
}

// Insert ignores an ID that already exists so redelivered events are stored once.
func (r *implRepository) Insert(ctx context.Context, n model.Notification) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO notifications (id, recipient_id, role, title, body, created_at)
		VALUES ($1, $2, $3, $4, $5, $6) ON CONFLICT (id) DO NOTHING`,
		n.ID, nullString(n.RecipientID), nullString(n.Role), n.Title, n.Body, n.CreatedAt)
	if err != nil {
		r.l.Errorf(ctx, "notification.repository.postgre.Insert: exec failed: %v", err)
		return fmt.Errorf("%w: %w", repository.ErrFailedToInsert, err)
	}
	return nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
