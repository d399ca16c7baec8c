package postgre

import (
	"rentdesk-srv/internal/model"
	"rentdesk-srv/internal/property/repository"
	"rentdesk-srv/pkg/sqlbuilder"
)

const propertyColumns = `p.id, p.name, p.address, p.location_id, COALESCE(loc.name, ''), p.admin_id,
	p.bedrooms, p.rent_amount, p.status, p.image_key, p.created_at`

const propertyFrom = ` FROM properties p LEFT JOIN locations loc ON loc.id = p.location_id`

// buildScope restricts rows to what the caller may see: admins their managed
// properties, tenants the property of their active lease.
func buildScope(w *sqlbuilder.Where, sc model.Scope) {
	switch sc.Role {
	case model.RoleSuperAdmin:
	case model.RoleAdmin:
		w.Add("p.admin_id = ?", sc.UserID)
	default:
		w.Add("EXISTS (SELECT 1 FROM leases l WHERE l.property_id = p.id AND l.tenant_id = ? AND l.active)", sc.UserID)
	}
}

func buildListWhere(opt repository.ListOptions) *sqlbuilder.Where {
	w := &sqlbuilder.Where{}
	buildScope(w, opt.Scope)
	w.AddIf(opt.Status, "p.status = ?")
	w.AddIf(opt.LocationID, "p.location_id = ?")
	w.Search(opt.Search, "p.name", "p.address")
	return w
}
