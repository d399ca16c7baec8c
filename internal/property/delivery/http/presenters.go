package http

import (
	"strings"
	"time"

	"rentdesk-srv/internal/property"
	"rentdesk-srv/pkg/paginator"
	"rentdesk-srv/pkg/querysync"
)

type listReq struct {
	paginator.PageQuery
	Search   string `form:"search" binding:"max=100"`
	Status   string `form:"status" binding:"omitempty,oneofci=all available occupied maintenance"`
	Location string `form:"location" binding:"omitempty,uuidorall"`
}

func (r listReq) toInput() property.ListInput {
	return property.ListInput{
		Query:      r.PageQuery,
		Search:     strings.TrimSpace(r.Search),
		Status:     activeFilter(r.Status),
		LocationID: activeFilter(r.Location),
	}
}

// activeFilter treats the "all" sentinel as no filter.
func activeFilter(v string) string {
	v = strings.ToLower(strings.TrimSpace(v))
	if v == querysync.All {
		return ""
	}
	return v
}

type detailReq struct {
	ID string `uri:"id" binding:"required,uuid"`
}

func (r detailReq) toInput() property.DetailInput {
	return property.DetailInput{ID: r.ID}
}

type refResp struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type propertyResp struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Address    string    `json:"address"`
	Location   *refResp  `json:"location"`
	Bedrooms   int       `json:"bedrooms"`
	RentAmount int64     `json:"rentAmount"`
	Status     string    `json:"status"`
	ImageURL   string    `json:"imageUrl,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
}

func (h *handler) newPropertyResp(o property.Output) propertyResp {
	p := o.Property
	resp := propertyResp{
		ID:         p.ID,
		Name:       p.Name,
		Address:    p.Address,
		Bedrooms:   p.Bedrooms,
		RentAmount: p.RentAmount,
		Status:     p.Status,
		ImageURL:   o.ImageURL,
		CreatedAt:  p.CreatedAt,
	}
	if p.Location != nil {
		resp.Location = &refResp{ID: p.Location.ID, Name: p.Location.Name}
	}
	return resp
}

func (h *handler) newListResp(page paginator.Page[property.Output]) paginator.Page[propertyResp] {
	return paginator.Map(page, h.newPropertyResp)
}
