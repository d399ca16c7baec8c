package minio

import (
	"context"
	"errors"
	"net/url"
	"strings"
	"testing"

	"rentdesk-srv/config"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.MinIOConfig {
	return &config.MinIOConfig{
		Endpoint:  "localhost",
		AccessKey: "minioadmin",
		SecretKey: "minioadmin",
		Region:    "us-east-1",
		Bucket:    "rentdesk-properties",
	}
}

func TestValidateConfig(t *testing.T) {
	cfg := testConfig()
	require.NoError(t, validateConfig(cfg))
	assert.Equal(t, "localhost:9000", cfg.Endpoint)

	bad := testConfig()
	bad.Bucket = "Bad_Bucket"
	var se *StorageError
	require.ErrorAs(t, validateConfig(bad), &se)
	assert.Equal(t, ErrCodeInvalidInput, se.Code)
}

func TestValidateUploadRequest(t *testing.T) {
	tcs := map[string]struct {
		req     UploadRequest
		wantErr bool
	}{
		"ok":        {req: UploadRequest{ObjectName: "p/1.jpg", Reader: strings.NewReader("x"), Size: 1, ContentType: "image/jpeg"}},
		"no reader": {req: UploadRequest{ObjectName: "p/1.jpg", Size: 1, ContentType: "image/jpeg"}, wantErr: true},
		"not image": {req: UploadRequest{ObjectName: "p/1.pdf", Reader: strings.NewReader("x"), Size: 1, ContentType: "application/pdf"}, wantErr: true},
		"too large": {req: UploadRequest{ObjectName: "p/1.jpg", Reader: strings.NewReader("x"), Size: MaxFileSizeBytes + 1, ContentType: "image/png"}, wantErr: true},
		"bad name":  {req: UploadRequest{ObjectName: "/p/1.jpg", Reader: strings.NewReader("x"), Size: 1, ContentType: "image/png"}, wantErr: true},
	}
	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			err := validateUploadRequest(&tc.req)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestPresignedGet(t *testing.T) {
	m, err := NewMinIO(testConfig())
	require.NoError(t, err)

	raw, err := m.PresignedGet(context.Background(), "properties/abc.jpg")
	require.NoError(t, err)

	u, err := url.Parse(raw)
	require.NoError(t, err)
	assert.Equal(t, "/rentdesk-properties/properties/abc.jpg", u.Path)
	assert.Equal(t, "900", u.Query().Get("X-Amz-Expires"))
	assert.NotEmpty(t, u.Query().Get("X-Amz-Signature"))

	_, err = m.PresignedGet(context.Background(), "")
	assert.Error(t, err)
}

func TestHealthCheckBeforeConnect(t *testing.T) {
	m, err := NewMinIO(testConfig())
	require.NoError(t, err)
	var se *StorageError
	require.ErrorAs(t, m.HealthCheck(context.Background()), &se)
	assert.Equal(t, ErrCodeConnection, se.Code)
}

func TestHandleMinIOError(t *testing.T) {
	assert.NoError(t, handleMinIOError(nil, "op"))

	err := handleMinIOError(minio.ErrorResponse{Code: "NoSuchKey", Key: "k"}, "get")
	assert.ErrorIs(t, err, ErrObjectNotFound)

	var se *StorageError
	require.ErrorAs(t, handleMinIOError(minio.ErrorResponse{Code: "AccessDenied"}, "get"), &se)
	assert.Equal(t, ErrCodePermission, se.Code)

	require.ErrorAs(t, handleMinIOError(errors.New("dial tcp"), "get"), &se)
	assert.Equal(t, ErrCodeConnection, se.Code)
}
