package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	adminHTTP "rentdesk-srv/internal/admin/delivery/http"
	adminPostgre "rentdesk-srv/internal/admin/repository/postgre"
	adminUsecase "rentdesk-srv/internal/admin/usecase"
	"rentdesk-srv/internal/middleware"
	tenantHTTP "rentdesk-srv/internal/tenant/delivery/http"
	tenantPostgre "rentdesk-srv/internal/tenant/repository/postgre"
	tenantUsecase "rentdesk-srv/internal/tenant/usecase"
)

func (srv *HTTPServer) setupTenantDomain(ctx context.Context, r *gin.RouterGroup, mw middleware.Middleware) {
	uc := tenantUsecase.New(tenantPostgre.New(srv.postgresDB, srv.l), srv.l)
	tenantHTTP.New(srv.l, uc).RegisterRoutes(r, mw)

	srv.l.Infof(ctx, "Tenant domain registered")
}

func (srv *HTTPServer) setupAdminDomain(ctx context.Context, r *gin.RouterGroup, mw middleware.Middleware) {
	uc := adminUsecase.New(adminPostgre.New(srv.postgresDB, srv.l), srv.l)
	adminHTTP.New(srv.l, uc).RegisterRoutes(r, mw)

	srv.l.Infof(ctx, "Admin domain registered")
}
