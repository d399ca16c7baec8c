package http

import (
	"time"

	"rentdesk-srv/pkg/response"
	"rentdesk-srv/pkg/scope"

	"github.com/gin-gonic/gin"
)

// @Summary Login
// @Description Returns a bearer token and sets it as an HttpOnly cookie.
// @Tags Authentication
// @Accept json
// @Produce json
// @Param body body loginReq true "Credentials"
// @Success 200 {object} response.Resp{data=sessionResp}
// @Failure 400 {object} response.Resp
// @Failure 401 {object} response.Resp
// @Failure 403 {object} response.Resp
// @Router /authentication/login [post]
func (h *handler) Login(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processLoginRequest(c)
	if err != nil {
		h.l.Warnf(ctx, "authentication.delivery.http.Login: processLoginRequest failed: %v", err)
		response.Error(c, err)
		return
	}

	o, err := h.uc.Login(ctx, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "authentication.delivery.http.Login: usecase Login failed: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	maxAge := h.cookie.MaxAge
	if maxAge <= 0 {
		maxAge = int(time.Until(o.ExpiresAt).Seconds())
	}
	h.setSessionCookie(c, o.Token, maxAge)
	response.OK(c, h.newSessionResp(o))
}

// @Summary Logout
// @Tags Authentication
// @Produce json
// @Success 200 {object} response.Resp
// @Router /authentication/logout [post]
func (h *handler) Logout(c *gin.Context) {
	h.setSessionCookie(c, "", -1)
	response.OK(c, nil)
}

// @Summary Current user
// @Tags Authentication
// @Produce json
// @Success 200 {object} response.Resp{data=userResp}
// @Failure 401 {object} response.Resp
// @Router /authentication/me [get]
func (h *handler) Me(c *gin.Context) {
	ctx := c.Request.Context()

	u, err := h.uc.Me(ctx, scope.GetScopeFromContext(ctx))
	if err != nil {
		h.l.Warnf(ctx, "authentication.delivery.http.Me: usecase Me failed: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newUserResp(u))
}
