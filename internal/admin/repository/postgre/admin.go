package postgre

import (
	"context"
	"fmt"

	"rentdesk-srv/internal/admin/repository"
	"rentdesk-srv/internal/model"
)

func (r *implRepository) List(ctx context.Context, opt repository.ListOptions) ([]model.Admin, error) {
	w := buildListWhere(opt)
	page, args := w.Page(opt.Limit, opt.Offset)
	query := "SELECT " + adminColumns + " FROM users u" + w.SQL() + " ORDER BY u.created_at DESC, u.id" + page

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "admin.repository.postgre.List: query failed: %v", err)
		return nil, fmt.Errorf("%w: %w", repository.ErrFailedToList, err)
	}
	defer rows.Close()

	var admins []model.Admin
	for rows.Next() {
		a := model.Admin{User: model.User{Role: model.RoleAdmin}}
		if err := rows.Scan(&a.ID, &a.Email, &a.FirstName, &a.LastName, &a.Phone, &a.Status, &a.CreatedAt,
			&a.PropertiesCount); err != nil {
			return nil, fmt.Errorf("List scan: %w", err)
		}
		admins = append(admins, a)
	}
	return admins, rows.Err()
}

func (r *implRepository) Count(ctx context.Context, opt repository.ListOptions) (int, error) {
	w := buildListWhere(opt)

	var total int
	if err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM users u"+w.SQL(), w.Args()...).Scan(&total); err != nil {
		r.l.Errorf(ctx, "admin.repository.postgre.Count: query failed: %v", err)
		return 0, fmt.Errorf("%w: %w", repository.ErrFailedToList, err)
	}
	return total, nil
}
