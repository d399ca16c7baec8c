package postgre

import (
	"rentdesk-srv/internal/admin/repository"
	"rentdesk-srv/internal/model"
	"rentdesk-srv/pkg/sqlbuilder"
)

const adminColumns = `u.id, u.email, u.first_name, u.last_name, u.phone, u.status, u.created_at,
	(SELECT COUNT(*) FROM properties p WHERE p.admin_id = u.id)`

func buildListWhere(opt repository.ListOptions) *sqlbuilder.Where {
	w := &sqlbuilder.Where{}
	w.Add("u.role = ?", model.RoleAdmin)
	w.AddIf(opt.Status, "u.status = ?")
	w.Search(opt.Search, "u.first_name", "u.last_name", "u.email")
	return w
}
