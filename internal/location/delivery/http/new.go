package http

import (
	"rentdesk-srv/internal/location"
	"rentdesk-srv/internal/middleware"
	"rentdesk-srv/pkg/log"

	"github.com/gin-gonic/gin"
)

type Handler interface {
	RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware)
}

type handler struct {
	l  log.Logger
	uc location.UseCase
}

// New - Factory
func New(l log.Logger, uc location.UseCase) Handler {
	return &handler{l: l, uc: uc}
}
