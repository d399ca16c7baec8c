package http

import (
	"rentdesk-srv/pkg/response"

	"github.com/gin-gonic/gin"
)

// @Summary List payments
// @Description Tenants see their own payments, admins the payments on their properties.
// @Tags Payments
// @Produce json
// @Param page query int false "Zero-based page (default 0)"
// @Param size query int false "Page size (default 10, max 100)"
// @Param search query string false "Matches reference, tenant name or property"
// @Param status query string false "paid | pending | overdue | failed"
// @Param sort query string false "newest | oldest | amount_asc | amount_desc"
// @Success 200 {object} response.Resp{data=paginator.Page[paymentResp]}
// @Failure 400 {object} response.Resp
// @Failure 401 {object} response.Resp
// @Failure 500 {object} response.Resp
// @Router /api/v1/payments [get]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processListRequest(c)
	if err != nil {
		h.l.Warnf(ctx, "payment.delivery.http.List: processListRequest failed: %v", err)
		response.Error(c, err)
		return
	}

	o, err := h.uc.List(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "payment.delivery.http.List: usecase List failed: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newListResp(o))
}

// @Summary List due rent
// @Description Pending or overdue rent due within the next 7 days, earliest first.
// @Tags Payments
// @Produce json
// @Param page query int false "Zero-based page (default 0)"
// @Param size query int false "Page size (default 10, max 100)"
// @Param search query string false "Matches tenant name or property"
// @Param location query string false "Location ID"
// @Success 200 {object} response.Resp{data=paginator.Page[dueRentResp]}
// @Failure 400 {object} response.Resp
// @Failure 403 {object} response.Resp
// @Router /api/v1/payments/due [get]
func (h *handler) Due(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processDueRequest(c)
	if err != nil {
		h.l.Warnf(ctx, "payment.delivery.http.Due: processDueRequest failed: %v", err)
		response.Error(c, err)
		return
	}

	o, err := h.uc.Due(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "payment.delivery.http.Due: usecase Due failed: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newDueResp(o))
}
