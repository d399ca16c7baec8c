package http

import (
	"rentdesk-srv/pkg/response"

	"github.com/gin-gonic/gin"
)

// @Summary List locations
// @Tags Locations
// @Produce json
// @Param page query int false "Zero-based page (default 0)"
// @Param size query int false "Page size (default 10, max 100)"
// @Param search query string false "Matches name or state"
// @Success 200 {object} response.Resp{data=paginator.Page[locationResp]}
// @Failure 400 {object} response.Resp
// @Failure 401 {object} response.Resp
// @Router /api/v1/locations [get]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processListRequest(c)
	if err != nil {
		h.l.Warnf(ctx, "location.delivery.http.List: processListRequest failed: %v", err)
		response.Error(c, err)
		return
	}

	o, err := h.uc.List(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "location.delivery.http.List: usecase List failed: %v", err)
		response.Error(c, err)
		return
	}

	response.OK(c, h.newListResp(o))
}
