package http

import (
	"strings"
	"time"

	"rentdesk-srv/internal/model"
	"rentdesk-srv/internal/notification"
	"rentdesk-srv/pkg/paginator"
	"rentdesk-srv/pkg/querysync"
)

type listReq struct {
	paginator.PageQuery
	Search string `form:"search" binding:"max=100"`
	Status string `form:"status" binding:"omitempty,oneofci=all read unread"`
}

func (r listReq) toInput() notification.ListInput {
	status := strings.ToLower(r.Status)
	if status == querysync.All {
		status = ""
	}
	return notification.ListInput{
		Query:  r.PageQuery,
		Search: strings.TrimSpace(r.Search),
		Status: status,
	}
}

type markReadReq struct {
	ID string `uri:"id" binding:"required,uuid"`
}

func (r markReadReq) toInput() notification.MarkReadInput {
	return notification.MarkReadInput{ID: r.ID}
}

type broadcastReq struct {
	Title string `json:"title" binding:"required,max=120"`
	Body  string `json:"body" binding:"max=2000"`
	Role  string `json:"role" binding:"omitempty,oneof=tenant admin super_admin"`
}

func (r broadcastReq) toInput() notification.BroadcastInput {
	return notification.BroadcastInput{Title: r.Title, Body: r.Body, Role: r.Role}
}

type notificationResp struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"createdAt"`
}

func newNotificationResp(n model.Notification) notificationResp {
	return notificationResp{
		ID:        n.ID,
		Title:     n.Title,
		Body:      n.Body,
		Read:      n.Read,
		CreatedAt: n.CreatedAt,
	}
}

func (h *handler) newListResp(page paginator.Page[model.Notification]) paginator.Page[notificationResp] {
	return paginator.Map(page, newNotificationResp)
}
