package minio

import (
	"context"
	"errors"
	"fmt"
	"net/url"

	"github.com/minio/minio-go/v7"
)

// --- implMinIO: connection ---

func (m *implMinIO) Connect(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, err := m.minioClient.BucketExists(ctx, m.config.Bucket); err != nil {
		m.connected = false
		return handleMinIOError(err, "connect")
	}
	m.connected = true
	return nil
}

func (m *implMinIO) HealthCheck(ctx context.Context) error {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if !m.connected {
		return NewConnectionError(fmt.Errorf("not connected"))
	}
	if _, err := m.minioClient.BucketExists(ctx, m.config.Bucket); err != nil {
		return handleMinIOError(err, "health_check")
	}
	return nil
}

func (m *implMinIO) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.connected = false
	return nil
}

// --- implMinIO: objects ---

// EnsureBucket creates the configured bucket when it does not exist yet.
func (m *implMinIO) EnsureBucket(ctx context.Context) error {
	exists, err := m.minioClient.BucketExists(ctx, m.config.Bucket)
	if err != nil {
		return handleMinIOError(err, "check_bucket_exists")
	}
	if exists {
		return nil
	}
	err = m.minioClient.MakeBucket(ctx, m.config.Bucket, minio.MakeBucketOptions{Region: m.config.Region})
	return handleMinIOError(err, "create_bucket")
}

func (m *implMinIO) UploadFile(ctx context.Context, req *UploadRequest) (*FileInfo, error) {
	if err := validateUploadRequest(req); err != nil {
		return nil, err
	}
	info, err := m.minioClient.PutObject(ctx, m.config.Bucket, req.ObjectName, req.Reader, req.Size,
		minio.PutObjectOptions{ContentType: req.ContentType})
	if err != nil {
		return nil, handleMinIOError(err, "upload_file")
	}
	return &FileInfo{
		ObjectName:   req.ObjectName,
		Size:         info.Size,
		ContentType:  req.ContentType,
		ETag:         info.ETag,
		LastModified: info.LastModified,
	}, nil
}

func (m *implMinIO) GetFileInfo(ctx context.Context, objectName string) (*FileInfo, error) {
	if err := validateObjectName(objectName); err != nil {
		return nil, err
	}
	info, err := m.minioClient.StatObject(ctx, m.config.Bucket, objectName, minio.StatObjectOptions{})
	if err != nil {
		return nil, handleMinIOError(err, "get_file_info")
	}
	return &FileInfo{
		ObjectName:   objectName,
		Size:         info.Size,
		ContentType:  info.ContentType,
		ETag:         info.ETag,
		LastModified: info.LastModified,
	}, nil
}

// PresignedGet signs a GET URL for objectName valid for the configured TTL.
// Signing happens locally; the object is not checked for existence.
func (m *implMinIO) PresignedGet(ctx context.Context, objectName string) (string, error) {
	if err := validateObjectName(objectName); err != nil {
		return "", err
	}
	if m.expiry > MaxPresignedExpiry {
		return "", NewInvalidInputError("expiry cannot exceed 7 days")
	}
	u, err := m.minioClient.PresignedGetObject(ctx, m.config.Bucket, objectName, m.expiry, url.Values{})
	if err != nil {
		return "", handleMinIOError(err, "presigned_get")
	}
	return u.String(), nil
}

func handleMinIOError(err error, operation string) error {
	if err == nil {
		return nil
	}
	var minioErr minio.ErrorResponse
	if errors.As(err, &minioErr) {
		switch minioErr.Code {
		case "NoSuchBucket":
			return NewBucketNotFoundError(minioErr.BucketName)
		case "NoSuchKey":
			return NewObjectNotFoundError(minioErr.Key)
		case "AccessDenied":
			return &StorageError{Code: ErrCodePermission, Message: "Access denied", Operation: operation, Cause: err}
		default:
			return &StorageError{Code: ErrCodeConnection, Message: fmt.Sprintf("MinIO operation failed: %s", minioErr.Code), Operation: operation, Cause: err}
		}
	}
	return NewConnectionError(err)
}
