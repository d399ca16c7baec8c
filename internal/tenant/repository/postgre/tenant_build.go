package postgre

import (
	"rentdesk-srv/internal/model"
	"rentdesk-srv/internal/tenant/repository"
	"rentdesk-srv/pkg/sqlbuilder"
)

// A tenant has at most one active lease, so the joins keep one row per tenant.
const tenantFrom = ` FROM users u
	LEFT JOIN leases l ON l.tenant_id = u.id AND l.active
	LEFT JOIN properties pr ON pr.id = l.property_id
	LEFT JOIN locations loc ON loc.id = pr.location_id`

const tenantColumns = `u.id, u.email, u.first_name, u.last_name, u.phone, u.status, u.created_at,
	pr.id, COALESCE(pr.name, ''), loc.id, COALESCE(loc.name, '')`

func buildListWhere(opt repository.ListOptions) *sqlbuilder.Where {
	w := &sqlbuilder.Where{}
	w.Add("u.role = ?", model.RoleTenant)
	if opt.Scope.IsAdmin() {
		w.Add("pr.admin_id = ?", opt.Scope.UserID)
	}
	w.AddIf(opt.Status, "u.status = ?")
	w.AddIf(opt.LocationID, "pr.location_id = ?")
	w.Search(opt.Search, "u.first_name", "u.last_name", "u.email")
	return w
}
