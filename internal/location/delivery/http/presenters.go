package http

import (
	"strings"
	"time"

	"rentdesk-srv/internal/location"
	"rentdesk-srv/internal/model"
	"rentdesk-srv/pkg/paginator"
)

type listReq struct {
	paginator.PageQuery
	Search string `form:"search" binding:"max=100"`
}

func (r listReq) toInput() location.ListInput {
	return location.ListInput{Query: r.PageQuery, Search: strings.TrimSpace(r.Search)}
}

type locationResp struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	State           string    `json:"state"`
	PropertiesCount int       `json:"propertiesCount"`
	CreatedAt       time.Time `json:"createdAt"`
}

func (h *handler) newListResp(page paginator.Page[model.Location]) paginator.Page[locationResp] {
	return paginator.Map(page, func(l model.Location) locationResp {
		return locationResp{
			ID:              l.ID,
			Name:            l.Name,
			State:           l.State,
			PropertiesCount: l.PropertiesCount,
			CreatedAt:       l.CreatedAt,
		}
	})
}
