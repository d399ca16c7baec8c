package http

import (
	"rentdesk-srv/config"
	"rentdesk-srv/internal/authentication"
	"rentdesk-srv/internal/middleware"
	"rentdesk-srv/pkg/log"

	"github.com/gin-gonic/gin"
)

type Handler interface {
	RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware)
}

type handler struct {
	l      log.Logger
	uc     authentication.UseCase
	cookie config.CookieConfig
}

// New - Factory
func New(l log.Logger, uc authentication.UseCase, cookie config.CookieConfig) Handler {
	return &handler{l: l, uc: uc, cookie: cookie}
}
