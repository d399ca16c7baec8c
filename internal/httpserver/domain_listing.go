package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	locationHTTP "rentdesk-srv/internal/location/delivery/http"
	locationRepo "rentdesk-srv/internal/location/repository"
	locationPostgre "rentdesk-srv/internal/location/repository/postgre"
	locationRedis "rentdesk-srv/internal/location/repository/redis"
	locationUsecase "rentdesk-srv/internal/location/usecase"
	"rentdesk-srv/internal/middleware"
	"rentdesk-srv/internal/property"
	propertyHTTP "rentdesk-srv/internal/property/delivery/http"
	propertyRepo "rentdesk-srv/internal/property/repository"
	propertyPostgre "rentdesk-srv/internal/property/repository/postgre"
	propertyRedis "rentdesk-srv/internal/property/repository/redis"
	propertyUsecase "rentdesk-srv/internal/property/usecase"
)

// setupPropertyDomain wires properties. Without Redis pages are not cached; without
// MinIO image URLs are left empty.
func (srv *HTTPServer) setupPropertyDomain(ctx context.Context, r *gin.RouterGroup, mw middleware.Middleware) {
	var cache propertyRepo.RedisRepository
	if srv.redisClient != nil {
		cache = propertyRedis.New(srv.redisClient, srv.l)
	}
	var signer property.ImageSigner
	if srv.minioClient != nil {
		signer = srv.minioClient
	}

	uc := propertyUsecase.New(propertyPostgre.New(srv.postgresDB, srv.l), cache, signer, srv.cacheConfig.PropertyTTL, srv.l)
	propertyHTTP.New(srv.l, uc).RegisterRoutes(r, mw)

	srv.l.Infof(ctx, "Property domain registered (cache=%t, images=%t)", cache != nil, signer != nil)
}

func (srv *HTTPServer) setupLocationDomain(ctx context.Context, r *gin.RouterGroup, mw middleware.Middleware) {
	var cache locationRepo.RedisRepository
	if srv.redisClient != nil {
		cache = locationRedis.New(srv.redisClient, srv.l)
	}

	uc := locationUsecase.New(locationPostgre.New(srv.postgresDB, srv.l), cache, srv.cacheConfig.LocationTTL, srv.l)
	locationHTTP.New(srv.l, uc).RegisterRoutes(r, mw)

	srv.l.Infof(ctx, "Location domain registered (cache=%t)", cache != nil)
}
