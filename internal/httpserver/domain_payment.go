package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	"rentdesk-srv/internal/middleware"
	paymentHTTP "rentdesk-srv/internal/payment/delivery/http"
	paymentPostgre "rentdesk-srv/internal/payment/repository/postgre"
	paymentUsecase "rentdesk-srv/internal/payment/usecase"
)

func (srv *HTTPServer) setupPaymentDomain(ctx context.Context, r *gin.RouterGroup, mw middleware.Middleware) {
	uc := paymentUsecase.New(paymentPostgre.New(srv.postgresDB, srv.l), srv.l)
	paymentHTTP.New(srv.l, uc).RegisterRoutes(r, mw)

	srv.l.Infof(ctx, "Payment domain registered")
}
