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
		api.GET("/notifications", h.List)
		api.POST("/notifications/:id/read", h.MarkRead)
		api.POST("/notifications/broadcast", mw.RequireRoles(model.RoleSuperAdmin), h.Broadcast)
	}
}
