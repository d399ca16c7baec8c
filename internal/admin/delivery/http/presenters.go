package http

import (
	"strings"
	"time"

	"rentdesk-srv/internal/admin"
	"rentdesk-srv/internal/model"
	"rentdesk-srv/pkg/paginator"
	"rentdesk-srv/pkg/querysync"
)

type listReq struct {
	paginator.PageQuery
	Search string `form:"search" binding:"max=100"`
	Status string `form:"status" binding:"omitempty,oneofci=all active suspended"`
}

func (r listReq) toInput() admin.ListInput {
	status := strings.ToLower(r.Status)
	if status == querysync.All {
		status = ""
	}
	return admin.ListInput{
		Query:  r.PageQuery,
		Search: strings.TrimSpace(r.Search),
		Status: status,
	}
}

type adminResp struct {
	ID              string    `json:"id"`
	FirstName       string    `json:"firstName"`
	LastName        string    `json:"lastName"`
	Email           string    `json:"email"`
	Phone           string    `json:"phone"`
	Status          string    `json:"status"`
	PropertiesCount int       `json:"propertiesCount"`
	CreatedAt       time.Time `json:"createdAt"`
}

func (h *handler) newListResp(page paginator.Page[model.Admin]) paginator.Page[adminResp] {
	return paginator.Map(page, func(a model.Admin) adminResp {
		return adminResp{
			ID:              a.ID,
			FirstName:       a.FirstName,
			LastName:        a.LastName,
			Email:           a.Email,
			Phone:           a.Phone,
			Status:          a.Status,
			PropertiesCount: a.PropertiesCount,
			CreatedAt:       a.CreatedAt,
		}
	})
}
