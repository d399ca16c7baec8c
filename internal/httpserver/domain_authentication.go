package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	authHTTP "rentdesk-srv/internal/authentication/delivery/http"
	authPostgre "rentdesk-srv/internal/authentication/repository/postgre"
	authUsecase "rentdesk-srv/internal/authentication/usecase"
	"rentdesk-srv/internal/middleware"
)

func (srv *HTTPServer) setupAuthenticationDomain(ctx context.Context, r *gin.RouterGroup, mw middleware.Middleware) {
	repo := authPostgre.New(srv.postgresDB, srv.l)
	uc := authUsecase.New(repo, srv.encrypter, srv.jwtManager, srv.l)

	authHTTP.New(srv.l, uc, srv.cookieConfig).RegisterRoutes(r, mw)

	srv.l.Infof(ctx, "Authentication domain registered")
}
