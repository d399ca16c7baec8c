package http

import (
	"rentdesk-srv/internal/middleware"
	"rentdesk-srv/internal/property"
	"rentdesk-srv/pkg/log"

	"github.com/gin-gonic/gin"
)

// Handler registers the property routes.
type Handler interface {
	RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware)
}

type handler struct {
	l  log.Logger
	uc property.UseCase
}

// New - Factory
func New(l log.Logger, uc property.UseCase) Handler {
	return &handler{l: l, uc: uc}
}
