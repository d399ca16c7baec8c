package httpserver

import (
	"net/http"

	"rentdesk-srv/pkg/response"

	"github.com/gin-gonic/gin"
)

// Health response constants (single source for version and service identity).
const (
	HealthVersion = "1.0.0"
	ServiceName   = "rentdesk-srv"
)

// healthCheck handles health check requests
// @Summary Health Check
// @Tags Health
// @Produce json
// @Success 200 {object} response.Resp "API is healthy"
// @Router /health [get]
func (srv *HTTPServer) healthCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "healthy",
		"version": HealthVersion,
		"service": ServiceName,
	})
}

// readyCheck reports whether every configured dependency answers.
// @Summary Readiness Check
// @Tags Health
// @Produce json
// @Success 200 {object} response.Resp "API is ready"
// @Failure 503 {object} map[string]interface{} "A dependency is down"
// @Router /ready [get]
func (srv *HTTPServer) readyCheck(c *gin.Context) {
	ctx := c.Request.Context()
	deps := gin.H{}

	fail := func(name string, err error) {
		srv.l.Warnf(ctx, "httpserver.readyCheck: %s not ready: %v", name, err)
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":  "not ready",
			"message": name + " connection failed",
			"error":   err.Error(),
		})
	}

	if err := srv.postgresDB.PingContext(ctx); err != nil {
		fail("database", err)
		return
	}
	deps["database"] = "connected"

	if srv.redisClient != nil {
		if err := srv.redisClient.Ping(ctx); err != nil {
			fail("redis", err)
			return
		}
		deps["redis"] = "connected"
	}
	if srv.minioClient != nil {
		if err := srv.minioClient.HealthCheck(ctx); err != nil {
			fail("minio", err)
			return
		}
		deps["minio"] = "connected"
	}
	if srv.kafkaProducer != nil {
		if err := srv.kafkaProducer.HealthCheck(); err != nil {
			fail("kafka", err)
			return
		}
		deps["kafka"] = "connected"
	}

	response.OK(c, gin.H{
		"status":       "ready",
		"version":      HealthVersion,
		"service":      ServiceName,
		"dependencies": deps,
	})
}

// liveCheck handles liveness check requests
// @Summary Liveness Check
// @Tags Health
// @Produce json
// @Success 200 {object} response.Resp "API is alive"
// @Router /live [get]
func (srv *HTTPServer) liveCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "alive",
		"version": HealthVersion,
		"service": ServiceName,
	})
}
