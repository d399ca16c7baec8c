package postgre

import (
	"context"
	"database/sql"
	"fmt"

	"rentdesk-srv/internal/model"
	"rentdesk-srv/internal/tenant/repository"
)

func (r *implRepository) List(ctx context.Context, opt repository.ListOptions) ([]model.Tenant, error) {
	w := buildListWhere(opt)
	page, args := w.Page(opt.Limit, opt.Offset)
	query := "SELECT " + tenantColumns + tenantFrom + w.SQL() + " ORDER BY u.created_at DESC, u.id" + page

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "tenant.repository.postgre.List: query failed: %v", err)
		return nil, fmt.Errorf("%w: %w", repository.ErrFailedToList, err)
	}
	defer rows.Close()

	var tenants []model.Tenant
	for rows.Next() {
		var (
			t             model.Tenant
			propID, locID sql.NullString
			prName, loc   string
		)
		if err := rows.Scan(&t.ID, &t.Email, &t.FirstName, &t.LastName, &t.Phone, &t.Status, &t.CreatedAt,
			&propID, &prName, &locID, &loc); err != nil {
			return nil, fmt.Errorf("List scan: %w", err)
		}
		t.Role = model.RoleTenant
		if propID.Valid {
			t.Property = &model.Ref{ID: propID.String, Name: prName}
		}
		if locID.Valid {
			t.Location = &model.Ref{ID: locID.String, Name: loc}
		}
		tenants = append(tenants, t)
	}
	return tenants, rows.Err()
}

func (r *implRepository) Count(ctx context.Context, opt repository.ListOptions) (int, error) {
	w := buildListWhere(opt)

	var total int
	if err := r.db.QueryRowContext(ctx, "SELECT COUNT(*)"+tenantFrom+w.SQL(), w.Args()...).Scan(&total); err != nil {
		r.l.Errorf(ctx, "tenant.repository.postgre.Count: query failed: %v", err)
		return 0, fmt.Errorf("%w: %w", repository.ErrFailedToList, err)
	}
	return total, nil
}
