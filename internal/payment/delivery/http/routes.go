package http

import (
	"rentdesk-srv/internal/middleware"
	"rentdesk-srv/internal/model"

	"github.com/gin-gonic/gin"
)

func (h *handler) RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware) {
	api := r.Group("/api/v1")
	api.Use(mw.Auth())
	{
		api.GET("/payments", h.List)
		api.GET("/payments/due", mw.RequireRoles(model.RoleAdmin, model.RoleSuperAdmin), h.Due)
	}
}
