package minio

import (
	"context"
	"net/http"

	"rentdesk-srv/config"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// MinIO is the composite interface embedding all sub-interfaces.
// All objects live in the configured bucket.
type MinIO interface {
	Connection
	ObjectStore
}

// Connection defines interface for MinIO connection operations.
type Connection interface {
	Connect(ctx context.Context) error
	HealthCheck(ctx context.Context) error
	Close() error
}

// ObjectStore stores property images and signs read URLs for them.
type ObjectStore interface {
	EnsureBucket(ctx context.Context) error
	UploadFile(ctx context.Context, req *UploadRequest) (*FileInfo, error)
	GetFileInfo(ctx context.Context, objectName string) (*FileInfo, error)
	PresignedGet(ctx context.Context, objectName string) (string, error)
}

// NewMinIO creates a new MinIO client. Returns the MinIO interface.
func NewMinIO(cfg *config.MinIOConfig) (MinIO, error) {
	if err := validateConfig(cfg); err != nil {
		return nil, err
	}

	transport := &http.Transport{
		MaxIdleConns:        maxIdleConns,
		MaxIdleConnsPerHost: maxIdleConnsPerHost,
		IdleConnTimeout:     idleConnTimeout,
		DisableCompression:  disableCompression,
		DisableKeepAlives:   disableKeepAlives,
	}

	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:     credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure:    cfg.UseSSL,
		Region:    cfg.Region,
		Transport: transport,
	})
	if err != nil {
		return nil, err
	}

	expiry := cfg.PresignTTL
	if expiry <= 0 {
		expiry = DefaultPresignExpiry
	}

	return &implMinIO{
		minioClient: client,
		config:      cfg,
		expiry:      expiry,
	}, nil
}
