package postgre

import (
	"rentdesk-srv/internal/model"
	"rentdesk-srv/internal/payment"
	"rentdesk-srv/internal/payment/repository"
	"rentdesk-srv/pkg/sqlbuilder"
)

const paymentFrom = ` FROM payments py
	LEFT JOIN users u ON u.id = py.tenant_id
	LEFT JOIN properties pr ON pr.id = py.property_id`

const paymentColumns = `py.id, py.reference, py.amount, py.status, py.due_date, py.paid_at, py.created_at,
	py.tenant_id, COALESCE(u.first_name, ''), COALESCE(u.last_name, ''),
	py.property_id, COALESCE(pr.name, '')`

const dueFrom = paymentFrom + `
	LEFT JOIN locations loc ON loc.id = pr.location_id`

const dueColumns = `py.id, py.reference, py.amount, py.due_date,
	GREATEST(CURRENT_DATE - py.due_date, 0),
	py.tenant_id, COALESCE(u.first_name, ''), COALESCE(u.last_name, ''),
	py.property_id, COALESCE(pr.name, ''),
	pr.location_id, COALESCE(loc.name, '')`

var sortOrders = map[string]string{
	payment.SortNewest:     "py.created_at DESC, py.id",
	payment.SortOldest:     "py.created_at ASC, py.id",
	payment.SortAmountAsc:  "py.amount ASC, py.id",
	payment.SortAmountDesc: "py.amount DESC, py.id",
}

func orderBy(sort string) string {
	if o, ok := sortOrders[sort]; ok {
		return o
	}
	return sortOrders[payment.SortNewest]
}

func buildScope(w *sqlbuilder.Where, sc model.Scope) {
	switch sc.Role {
	case model.RoleSuperAdmin:
	case model.RoleAdmin:
		w.Add("pr.admin_id = ?", sc.UserID)
	default:
		w.Add("py.tenant_id = ?", sc.UserID)
	}
}

func buildListWhere(opt repository.ListOptions) *sqlbuilder.Where {
	w := &sqlbuilder.Where{}
	buildScope(w, opt.Scope)
	w.AddIf(opt.Status, "py.status = ?")
	w.Search(opt.Search, "py.reference", "u.first_name", "u.last_name", "pr.name")
	return w
}

func buildDueWhere(opt repository.DueOptions) *sqlbuilder.Where {
	w := &sqlbuilder.Where{}
	buildScope(w, opt.Scope)
	w.Add("py.status IN ('pending', 'overdue')")
	w.Add("py.due_date <= CURRENT_DATE + ?::int", opt.WindowDays)
	w.AddIf(opt.LocationID, "pr.location_id = ?")
	w.Search(opt.Search, "u.first_name", "u.last_name", "pr.name")
	return w
}
