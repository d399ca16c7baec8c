package minio

import (
	"io"
	"sync"
	"time"

	"rentdesk-srv/config"

	"github.com/minio/minio-go/v7"
)

// implMinIO implements MinIO.
type implMinIO struct {
	minioClient *minio.Client
	config      *config.MinIOConfig
	expiry      time.Duration
	mu          sync.RWMutex
	connected   bool
}

// FileInfo describes a stored object.
type FileInfo struct {
	ObjectName   string
	Size         int64
	ContentType  string
	ETag         string
	LastModified time.Time
}

// UploadRequest is used to store a property image.
type UploadRequest struct {
	ObjectName  string
	Reader      io.Reader
	Size        int64
	ContentType string
}
