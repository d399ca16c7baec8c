package http

import (
	"rentdesk-srv/internal/middleware"
	"rentdesk-srv/internal/model"

	"github.com/gin-gonic/gin"
)

func (h *handler) RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware) {
	api := r.Group("/api/v1")
	api.Use(mw.Auth(), mw.RequireRoles(model.RoleSuperAdmin))
	{
		api.GET("/admins", h.List)
	}
}
