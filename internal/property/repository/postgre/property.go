package postgre

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"rentdesk-srv/internal/model"
	"rentdesk-srv/internal/property/repository"
	"rentdesk-srv/pkg/sqlbuilder"
)

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProperty(s rowScanner) (model.Property, error) {
	var (
		p            model.Property
		locationID   sql.NullString
		locationName string
		adminID      sql.NullString
	)
	if err := s.Scan(&p.ID, &p.Name, &p.Address, &locationID, &locationName, &adminID,
		&p.Bedrooms, &p.RentAmount, &p.Status, &p.ImageKey, &p.CreatedAt); err != nil {
		return model.Property{}, err
	}
	if locationID.Valid {
		p.Location = &model.Ref{ID: locationID.String, Name: locationName}
	}
	p.AdminID = adminID.String
	return p, nil
}

// List - Page of properties visible to the scope, newest first
func (r *implRepository) List(ctx context.Context, opt repository.ListOptions) ([]model.Property, error) {
	w := buildListWhere(opt)
	page, args := w.Page(opt.Limit, opt.Offset)
	query := "SELECT " + propertyColumns + propertyFrom + w.SQL() + " ORDER BY p.created_at DESC, p.id" + page

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "property.repository.postgre.List: query failed: %v", err)
		return nil, fmt.Errorf("%w: %w", repository.ErrFailedToList, err)
	}
	defer rows.Close()

	var properties []model.Property
	for rows.Next() {
		p, err := scanProperty(rows)
		if err != nil {
			return nil, fmt.Errorf("List scan: %w", err)
		}
		properties = append(properties, p)
	}
	return properties, rows.Err()
}

// Count - Number of properties matching the same filters as List
func (r *implRepository) Count(ctx context.Context, opt repository.ListOptions) (int, error) {
	w := buildListWhere(opt)
	query := "SELECT COUNT(*) FROM properties p" + w.SQL()

	var total int
	if err := r.db.QueryRowContext(ctx, query, w.Args()...).Scan(&total); err != nil {
		r.l.Errorf(ctx, "property.repository.postgre.Count: query failed: %v", err)
		return 0, fmt.Errorf("%w: %w", repository.ErrFailedToList, err)
	}
	return total, nil
}

func (r *implRepository) Detail(ctx context.Context, opt repository.DetailOptions) (model.Property, error) {
	w := &sqlbuilder.Where{}
	w.Add("p.id = ?", opt.ID)
	buildScope(w, opt.Scope)
	query := "SELECT " + propertyColumns + propertyFrom + w.SQL()

	p, err := scanProperty(r.db.QueryRowContext(ctx, query, w.Args()...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Property{}, repository.ErrNotFound
		}
		r.l.Errorf(ctx, "property.repository.postgre.Detail: query failed: %v", err)
		return model.Property{}, fmt.Errorf("%w: %w", repository.ErrFailedToGet, err)
	}
	return p, nil
}
