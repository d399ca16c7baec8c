package http

import (
	"strings"
	"time"

	"rentdesk-srv/internal/model"
	"rentdesk-srv/internal/tenant"
	"rentdesk-srv/pkg/paginator"
	"rentdesk-srv/pkg/querysync"
)

type listReq struct {
	paginator.PageQuery
	Search   string `form:"search" binding:"max=100"`
	Status   string `form:"status" binding:"omitempty,oneofci=all active inactive evicted"`
	Location string `form:"location" binding:"omitempty,uuidorall"`
}

func (r listReq) toInput() tenant.ListInput {
	in := tenant.ListInput{
		Query:      r.PageQuery,
		Search:     strings.TrimSpace(r.Search),
		Status:     strings.ToLower(r.Status),
		LocationID: strings.TrimSpace(r.Location),
	}
	if in.Status == querysync.All {
		in.Status = ""
	}
	if in.LocationID == querysync.All {
		in.LocationID = ""
	}
	return in
}

type refResp struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type tenantResp struct {
	ID        string    `json:"id"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Status    string    `json:"status"`
	Property  *refResp  `json:"property"`
	Location  *refResp  `json:"location"`
	CreatedAt time.Time `json:"createdAt"`
}

func newRefResp(r *model.Ref) *refResp {
	if r == nil {
		return nil
	}
	return &refResp{ID: r.ID, Name: r.Name}
}

func (h *handler) newListResp(page paginator.Page[model.Tenant]) paginator.Page[tenantResp] {
	return paginator.Map(page, func(t model.Tenant) tenantResp {
		return tenantResp{
			ID:        t.ID,
			FirstName: t.FirstName,
			LastName:  t.LastName,
			Email:     t.Email,
			Phone:     t.Phone,
			Status:    t.Status,
			Property:  newRefResp(t.Property),
			Location:  newRefResp(t.Location),
			CreatedAt: t.CreatedAt,
		}
	})
}
