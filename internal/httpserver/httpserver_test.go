package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"rentdesk-srv/config"
	"rentdesk-srv/pkg/encrypter"
	pkgJWT "rentdesk-srv/pkg/jwt"
	"rentdesk-srv/pkg/log"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) (*HTTPServer, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	jwtManager, err := pkgJWT.New(pkgJWT.Config{
		SecretKey: "test-secret-key-with-enough-length",
		Issuer:    "rentdesk-srv",
		Audience:  []string{"rentdesk"},
		TTL:       time.Hour,
	})
	require.NoError(t, err)

	srv, err := New(log.NewNop(), Config{
		Logger:       log.NewNop(),
		Port:         8080,
		Mode:         gin.TestMode,
		Environment:  "test",
		PostgresDB:   db,
		JWTManager:   jwtManager,
		Encrypter:    encrypter.New(4),
		CookieConfig: config.CookieConfig{Name: "rentdesk_token"},
	})
	require.NoError(t, err)
	require.NoError(t, srv.mapHandlers())

	return srv, mock
}

func serve(srv *HTTPServer, method, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, nil)
	srv.gin.ServeHTTP(w, req)
	return w
}

func TestNew_Validation(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
	}{
		{name: "missing mode", cfg: Config{Port: 8080}},
		{name: "missing port", cfg: Config{Mode: gin.TestMode}},
		{name: "missing database", cfg: Config{Mode: gin.TestMode, Port: 8080}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			srv, err := New(log.NewNop(), tc.cfg)
			assert.Error(t, err)
			assert.Nil(t, srv)
		})
	}
}

func TestSystemRoutes(t *testing.T) {
	srv, _ := newTestServer(t)

	for _, path := range []string{"/health", "/live"} {
		w := serve(srv, http.MethodGet, path)
		assert.Equal(t, http.StatusOK, w.Code, path)
	}

	w := serve(srv, http.MethodGet, "/metrics")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "go_goroutines")
}

func TestReadyCheck(t *testing.T) {
	t.Run("database up", func(t *testing.T) {
		srv, mock := newTestServer(t)
		mock.ExpectPing()

		w := serve(srv, http.MethodGet, "/ready")

		require.Equal(t, http.StatusOK, w.Code)
		var body struct {
			Data struct {
				Status       string            `json:"status"`
				Dependencies map[string]string `json:"dependencies"`
			} `json:"data"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, "ready", body.Data.Status)
		assert.Equal(t, map[string]string{"database": "connected"}, body.Data.Dependencies)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("database down", func(t *testing.T) {
		srv, mock := newTestServer(t)
		mock.ExpectPing().WillReturnError(errors.New("connection refused"))

		w := serve(srv, http.MethodGet, "/ready")

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
		assert.Contains(t, w.Body.String(), "database connection failed")
	})
}

func TestDomainRoutesRequireSession(t *testing.T) {
	srv, _ := newTestServer(t)

	for _, path := range []string{
		"/api/v1/properties",
		"/api/v1/locations",
		"/api/v1/payments",
		"/api/v1/tenants",
		"/api/v1/admins",
		"/api/v1/notifications",
		"/authentication/me",
	} {
		w := serve(srv, http.MethodGet, path)
		assert.Equal(t, http.StatusUnauthorized, w.Code, path)
	}
}
