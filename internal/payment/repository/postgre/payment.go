package postgre

import (
	"context"
	"database/sql"
	"fmt"

	"rentdesk-srv/internal/model"
	"rentdesk-srv/internal/payment/repository"
)

func personRef(id sql.NullString, first, last string) *model.PersonRef {
	if !id.Valid {
		return nil
	}
	return &model.PersonRef{ID: id.String, FirstName: first, LastName: last}
}

func ref(id sql.NullString, name string) *model.Ref {
	if !id.Valid {
		return nil
	}
	return &model.Ref{ID: id.String, Name: name}
}

func (r *implRepository) List(ctx context.Context, opt repository.ListOptions) ([]model.Payment, error) {
	w := buildListWhere(opt)
	page, args := w.Page(opt.Limit, opt.Offset)
	query := "SELECT " + paymentColumns + paymentFrom + w.SQL() + " ORDER BY " + orderBy(opt.Sort) + page

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "payment.repository.postgre.List: query failed: %v", err)
		return nil, fmt.Errorf("%w: %w", repository.ErrFailedToList, err)
	}
	defer rows.Close()

	var payments []model.Payment
	for rows.Next() {
		var (
			p                   model.Payment
			paidAt              sql.NullTime
			tenantID, propID    sql.NullString
			first, last, prName string
		)
		if err := rows.Scan(&p.ID, &p.Reference, &p.Amount, &p.Status, &p.DueDate, &paidAt, &p.CreatedAt,
			&tenantID, &first, &last, &propID, &prName); err != nil {
			return nil, fmt.Errorf("List scan: %w", err)
		}
		if paidAt.Valid {
			p.PaidAt = &paidAt.Time
		}
		p.Tenant = personRef(tenantID, first, last)
		p.Property = ref(propID, prName)
		payments = append(payments, p)
	}
	return payments, rows.Err()
}

func (r *implRepository) Count(ctx context.Context, opt repository.ListOptions) (int, error) {
	w := buildListWhere(opt)
	return r.count(ctx, "SELECT COUNT(*)"+paymentFrom+w.SQL(), w.Args())
}

// ListDue - Unpaid payments due within the window, earliest due date first
func (r *implRepository) ListDue(ctx context.Context, opt repository.DueOptions) ([]model.DueRent, error) {
	w := buildDueWhere(opt)
	page, args := w.Page(opt.Limit, opt.Offset)
	query := "SELECT " + dueColumns + dueFrom + w.SQL() + " ORDER BY py.due_date ASC, py.id" + page

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "payment.repository.postgre.ListDue: query failed: %v", err)
		return nil, fmt.Errorf("%w: %w", repository.ErrFailedToList, err)
	}
	defer rows.Close()

	var due []model.DueRent
	for rows.Next() {
		var (
			d                        model.DueRent
			tenantID, propID, locID  sql.NullString
			first, last, prName, loc string
		)
		if err := rows.Scan(&d.PaymentID, &d.Reference, &d.Amount, &d.DueDate, &d.DaysOverdue,
			&tenantID, &first, &last, &propID, &prName, &locID, &loc); err != nil {
			return nil, fmt.Errorf("ListDue scan: %w", err)
		}
		d.Tenant = personRef(tenantID, first, last)
		d.Property = ref(propID, prName)
		d.Location = ref(locID, loc)
		due = append(due, d)
	}
	return due, rows.Err()
}

func (r *implRepository) CountDue(ctx context.Context, opt repository.DueOptions) (int, error) {
	w := buildDueWhere(opt)
	return r.count(ctx, "SELECT COUNT(*)"+dueFrom+w.SQL(), w.Args())
}

func (r *implRepository) count(ctx context.Context, query string, args []any) (int, error) {
	var total int
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&total); err != nil {
		r.l.Errorf(ctx, "payment.repository.postgre.count: query failed: %v", err)
		return 0, fmt.Errorf("%w: %w", repository.ErrFailedToList, err)
	}
	return total, nil
}
