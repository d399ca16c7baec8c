package http

import (
	"rentdesk-srv/pkg/response"

	"github.com/gin-gonic/gin"
)

// @Summary List properties
// @Description Paginated properties visible to the caller. Tenants see the property of their active lease, admins the properties they manage.
// @Tags Properties
// @Produce json
// @Param page query int false "Zero-based page (default 0)"
// @Param size query int false "Page size (default 10, max 100)"
// @Param search query string false "Matches name or address"
// @Param status query string false "available | occupied | maintenance"
// @Param location query string false "Location ID"
// @Success 200 {object} response.Resp{data=paginator.Page[propertyResp]}
// @Failure 400 {object} response.Resp
// @Failure 401 {object} response.Resp
// @Failure 500 {object} response.Resp
// @Router /api/v1/properties [get]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processListRequest(c)
	if err != nil {
		h.l.Warnf(ctx, "property.delivery.http.List: processListRequest failed: %v", err)
		response.Error(c, err)
		return
	}

	o, err := h.uc.List(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "property.delivery.http.List: usecase List failed: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newListResp(o))
}

// @Summary Get property
// @Tags Properties
// @Produce json
// @Param id path string true "Property ID"
// @Success 200 {object} response.Resp{data=propertyResp}
// @Failure 401 {object} response.Resp
// @Failure 404 {object} response.Resp
// @Router /api/v1/properties/{id} [get]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processDetailRequest(c)
	if err != nil {
		h.l.Warnf(ctx, "property.delivery.http.Detail: processDetailRequest failed: %v", err)
		response.Error(c, err)
		return
	}

	o, err := h.uc.Detail(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "property.delivery.http.Detail: usecase Detail failed: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newPropertyResp(o))
}
