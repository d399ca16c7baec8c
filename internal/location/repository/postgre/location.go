package postgre

import (
	"context"
	"fmt"

	"rentdesk-srv/internal/location/repository"
	"rentdesk-srv/internal/model"
	"rentdesk-srv/pkg/sqlbuilder"
)

const locationColumns = `loc.id, loc.name, loc.state, loc.created_at,
	(SELECT COUNT(*) FROM properties p WHERE p.location_id = loc.id)`

func buildListWhere(opt repository.ListOptions) *sqlbuilder.Where {
	w := &sqlbuilder.Where{}
	w.Search(opt.Search, "loc.name", "loc.state")
	return w
}

func (r *implRepository) List(ctx context.Context, opt repository.ListOptions) ([]model.Location, error) {
	w := buildListWhere(opt)
	page, args := w.Page(opt.Limit, opt.Offset)
	query := "SELECT " + locationColumns + " FROM locations loc" + w.SQL() + " ORDER BY loc.name, loc.id" + page

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "location.repository.postgre.List: query failed: %v", err)
		return nil, fmt.Errorf("%w: %w", repository.ErrFailedToList, err)
	}
	defer rows.Close()

	var locations []model.Location
	for rows.Next() {
		var loc model.Location
		if err := rows.Scan(&loc.ID, &loc.Name, &loc.State, &loc.CreatedAt, &loc.PropertiesCount); err != nil {
			return nil, fmt.Errorf("List scan: %w", err)
		}
		locations = append(locations, loc)
	}
	return locations, rows.Err()
}

func (r *implRepository) Count(ctx context.Context, opt repository.ListOptions) (int, error) {
	w := buildListWhere(opt)

	var total int
	if err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM locations loc"+w.SQL(), w.Args()...).Scan(&total); err != nil {
		r.l.Errorf(ctx, "location.repository.postgre.Count: query failed: %v", err)
		return 0, fmt.Errorf("%w: %w", repository.ErrFailedToList, err)
	}
	return total, nil
}
