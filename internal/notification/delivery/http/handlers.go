package http

import (
	"rentdesk-srv/pkg/response"

	"github.com/gin-gonic/gin"
)

// @Summary List notifications
// @Description Notifications addressed to the caller and broadcasts to their role.
// @Tags Notifications
// @Produce json
// @Param page query int false "Zero-based page (default 0)"
// @Param size query int false "Page size (default 10, max 100)"
// @Param search query string false "Matches title or body"
// @Param status query string false "read | unread"
// @Success 200 {object} response.Resp{data=paginator.Page[notificationResp]}
// @Failure 400 {object} response.Resp
// @Failure 401 {object} response.Resp
// @Router /api/v1/notifications [get]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processListRequest(c)
	if err != nil {
		h.l.Warnf(ctx, "notification.delivery.http.List: processListRequest failed: %v", err)
		response.Error(c, err)
		return
	}

	o, err := h.uc.List(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "notification.delivery.http.List: usecase List failed: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newListResp(o))
}

// @Summary Mark notification read
// @Tags Notifications
// @Produce json
// @Param id path string true "Notification ID"
// @Success 200 {object} response.Resp
// @Failure 404 {object} response.Resp
// @Router /api/v1/notifications/{id}/read [post]
func (h *handler) MarkRead(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processMarkReadRequest(c)
	if err != nil {
		h.l.Warnf(ctx, "notification.delivery.http.MarkRead: processMarkReadRequest failed: %v", err)
		response.Error(c, err)
		return
	}

	if err := h.uc.MarkRead(ctx, sc, req.toInput()); err != nil {
		h.l.Warnf(ctx, "notification.delivery.http.MarkRead: usecase MarkRead failed: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, nil)
}

// @Summary Broadcast notification
// @Description Queues a notification for every user of a role, or everyone when role is empty.
// @Tags Notifications
// @Accept json
// @Produce json
// @Param body body broadcastReq true "Notification"
// @Success 202 {object} response.Resp{data=notificationResp}
// @Failure 400 {object} response.Resp
// @Failure 403 {object} response.Resp
// @Failure 503 {object} response.Resp
// @Router /api/v1/notifications/broadcast [post]
func (h *handler) Broadcast(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processBroadcastRequest(c)
	if err != nil {
		h.l.Warnf(ctx, "notification.delivery.http.Broadcast: processBroadcastRequest failed: %v", err)
		response.Error(c, err)
		return
	}

	n, err := h.uc.Broadcast(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "notification.delivery.http.Broadcast: usecase Broadcast failed: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.Accepted(c, newNotificationResp(n))
}
