package httpserver

import (
	"database/sql"
	"errors"

	"rentdesk-srv/config"
	"rentdesk-srv/pkg/encrypter"
	pkgJWT "rentdesk-srv/pkg/jwt"
	pkgKafka "rentdesk-srv/pkg/kafka"
	"rentdesk-srv/pkg/log"
	"rentdesk-srv/pkg/minio"
	pkgRedis "rentdesk-srv/pkg/redis"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
)

type HTTPServer struct {
	// Server Configuration
	gin         *gin.Engine
	l           log.Logger
	host        string
	port        int
	mode        string
	environment string

	// Database Configuration
	postgresDB *sql.DB

	// Cache, storage and messaging (optional)
	redisClient   pkgRedis.IRedis
	cacheConfig   config.CacheConfig
	minioClient   minio.MinIO
	kafkaProducer pkgKafka.IProducer

	// Authentication & Security Configuration
	jwtManager   pkgJWT.IManager
	encrypter    encrypter.Encrypter
	cookieConfig config.CookieConfig

	// Monitoring
	registry *prometheus.Registry
}

type Config struct {
	// Server Configuration
	Logger      log.Logger
	Host        string
	Port        int
	Mode        string
	Environment string

	// Database Configuration
	PostgresDB *sql.DB

	// Cache, storage and messaging. A nil client disables the feature it serves:
	// list caching, property image URLs, notification broadcasts.
	RedisClient   pkgRedis.IRedis
	CacheConfig   config.CacheConfig
	MinIOClient   minio.MinIO
	KafkaProducer pkgKafka.IProducer

	// Authentication & Security Configuration
	JWTManager   pkgJWT.IManager
	Encrypter    encrypter.Encrypter
	CookieConfig config.CookieConfig
}

// New creates a new HTTPServer instance with the provided configuration.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		// Server Configuration
		l:           logger,
		gin:         gin.New(),
		host:        cfg.Host,
		port:        cfg.Port,
		mode:        cfg.Mode,
		environment: cfg.Environment,

		// Database Configuration
		postgresDB: cfg.PostgresDB,

		// Cache, storage and messaging
		redisClient:   cfg.RedisClient,
		cacheConfig:   cfg.CacheConfig,
		minioClient:   cfg.MinIOClient,
		kafkaProducer: cfg.KafkaProducer,

		// Authentication & Security Configuration
		jwtManager:   cfg.JWTManager,
		encrypter:    cfg.Encrypter,
		cookieConfig: cfg.CookieConfig,

		registry: prometheus.NewRegistry(),
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

// validate validates that all required dependencies are provided.
func (srv *HTTPServer) validate() error {
	// Server Configuration
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	// host can be empty (listen on all interfaces)
	if srv.port == 0 {
		return errors.New("port is required")
	}

	// Database Configuration
	if srv.postgresDB == nil {
		return errors.New("postgresDB is required")
	}

	// Authentication & Security Configuration
	if srv.jwtManager == nil {
		return errors.New("jwtManager is required")
	}
	if srv.encrypter == nil {
		return errors.New("encrypter is required")
	}
	if srv.cookieConfig.Name == "" {
		return errors.New("cookie name is required")
	}

	return nil
}
