package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"rentdesk-srv/config"
	configKafka "rentdesk-srv/config/kafka"
	configMinio "rentdesk-srv/config/minio"
	configPostgre "rentdesk-srv/config/postgre"
	configRedis "rentdesk-srv/config/redis"
	_ "rentdesk-srv/docs" // Import swagger docs
	"rentdesk-srv/internal/httpserver"
	"rentdesk-srv/pkg/encrypter"
	pkgJWT "rentdesk-srv/pkg/jwt"
	pkgKafka "rentdesk-srv/pkg/kafka"
	"rentdesk-srv/pkg/log"
	"rentdesk-srv/pkg/minio"

	"golang.org/x/crypto/bcrypt"
)

// @title       Rentdesk API
// @description Property and rent management dashboard API.
// @version     1
// @BasePath    /
//
// @securityDefinitions.apikey CookieAuth
// @in cookie
// @name rentdesk_token
// @description Session token stored in HttpOnly cookie. Set automatically by /authentication/login.
//
// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Bearer token authentication for non-browser clients. Format: "Bearer {token}"
func main() {
	// 1. Load configuration
	// Reads config from YAML file and environment variables
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Initialize logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 3. Initialize PostgreSQL
	postgresDB, err := configPostgre.Connect(ctx, cfg.Postgres)
	if err != nil {
		logger.Error(ctx, "Failed to connect to PostgreSQL: ", err)
		return
	}
	defer configPostgre.Disconnect(ctx, postgresDB)
	logger.Infof(ctx, "PostgreSQL connected successfully to %s:%d/%s", cfg.Postgres.Host, cfg.Postgres.Port, cfg.Postgres.DBName)

	if cfg.Postgres.Migrate {
		if err := configPostgre.Migrate(ctx, postgresDB, cfg.Postgres, logger); err != nil {
			logger.Error(ctx, "Failed to run migrations: ", err)
			return
		}
	}

	// 4. Initialize Redis
	redisClient, err := configRedis.Connect(ctx, cfg.Redis)
	if err != nil {
		logger.Error(ctx, "Failed to connect to Redis: ", err)
		return
	}
	defer configRedis.Disconnect()
	logger.Infof(ctx, "Redis connected successfully to %s:%d (DB %d)", cfg.Redis.Host, cfg.Redis.Port, cfg.Redis.DB)

	// 5. Initialize MinIO (optional)
	minioClient := initializeMinIO(ctx, logger, cfg)
	if minioClient != nil {
		defer configMinio.Disconnect()
	}

	// 6. Initialize Kafka producer (optional)
	kafkaProducer := initializeKafkaProducer(ctx, logger, cfg)
	if kafkaProducer != nil {
		defer configKafka.DisconnectProducer()
	}

	// 7. Initialize JWT Manager
	jwtManager, err := pkgJWT.New(pkgJWT.Config{
		SecretKey: cfg.JWT.SecretKey,
		Issuer:    cfg.JWT.Issuer,
		Audience:  cfg.JWT.Audience,
		TTL:       time.Duration(cfg.JWT.TTL) * time.Second,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize JWT manager: ", err)
		return
	}
	logger.Infof(ctx, "JWT Manager initialized with algorithm: %s", cfg.JWT.Algorithm)

	// 8. Initialize HTTP server
	// Main application server that handles all HTTP requests and routes
	httpServer, err := httpserver.New(logger, httpserver.Config{
		// Server Configuration
		Logger:      logger,
		Host:        cfg.HTTPServer.Host,
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,

		// Database Configuration
		PostgresDB: postgresDB,

		// Cache, storage and messaging
		RedisClient:   redisClient,
		CacheConfig:   cfg.Cache,
		MinIOClient:   minioClient,
		KafkaProducer: kafkaProducer,

		// Authentication & Security Configuration
		JWTManager:   jwtManager,
		Encrypter:    encrypter.New(bcrypt.DefaultCost),
		CookieConfig: cfg.Cookie,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}
}

// initializeMinIO connects to the image bucket. Property images are left unsigned without it.
func initializeMinIO(ctx context.Context, logger log.Logger, cfg *config.Config) minio.MinIO {
	if cfg.MinIO.Endpoint == "" {
		logger.Warnf(ctx, "MinIO not configured (optional): property image URLs disabled")
		return nil
	}
	client, err := configMinio.Connect(ctx, &cfg.MinIO)
	if err != nil {
		logger.Warnf(ctx, "MinIO unavailable (optional): %v", err)
		return nil
	}
	logger.Infof(ctx, "MinIO connected successfully to %s (bucket %s)", cfg.MinIO.Endpoint, cfg.MinIO.Bucket)
	return client
}

// initializeKafkaProducer connects the notification producer. Broadcasts answer 503 without it.
func initializeKafkaProducer(ctx context.Context, logger log.Logger, cfg *config.Config) pkgKafka.IProducer {
	if len(cfg.Kafka.Brokers) == 0 {
		logger.Warnf(ctx, "Kafka not configured (optional): notification broadcasts disabled")
		return nil
	}
	producer, err := configKafka.ConnectProducer(cfg.Kafka)
	if err != nil {
		logger.Warnf(ctx, "Kafka producer unavailable (optional): %v", err)
		return nil
	}
	logger.Infof(ctx, "Kafka producer connected to %v (topic %s)", cfg.Kafka.Brokers, cfg.Kafka.Topic)
	return producer
}
