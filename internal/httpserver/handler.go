package httpserver

import (
	"context"
	"fmt"

	"rentdesk-srv/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (srv *HTTPServer) mapHandlers() error {
	if err := middleware.RegisterValidators(); err != nil {
		return fmt.Errorf("failed to register validators: %w", err)
	}

	mw := middleware.New(srv.l, srv.jwtManager, srv.cookieConfig)

	srv.registerMiddlewares()
	srv.registerSystemRoutes()

	ctx := context.Background()
	r := srv.gin.Group("")

	srv.setupAuthenticationDomain(ctx, r, mw)
	srv.setupPropertyDomain(ctx, r, mw)
	srv.setupLocationDomain(ctx, r, mw)
	srv.setupPaymentDomain(ctx, r, mw)
	srv.setupTenantDomain(ctx, r, mw)
	srv.setupAdminDomain(ctx, r, mw)
	srv.setupNotificationDomain(ctx, r, mw)

	return nil
}

func (srv *HTTPServer) registerMiddlewares() {
	srv.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	metrics := middleware.NewMetrics(srv.registry)

	srv.gin.Use(middleware.Recovery(srv.l))
	srv.gin.Use(metrics.Handler())
}

func (srv *HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	srv.gin.GET("/metrics", gin.WrapH(promhttp.HandlerFor(srv.registry, promhttp.HandlerOpts{})))

	// Swagger UI and docs
	if srv.environment != "production" {
		srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
			swaggerFiles.Handler,
			ginSwagger.URL("doc.json"),
			ginSwagger.DefaultModelsExpandDepth(-1),
		))
	}
}
