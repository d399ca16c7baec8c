package response

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	pkgErrors "rentdesk-srv/pkg/errors"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func record(t *testing.T, fn func(c *gin.Context)) (int, Body[json.RawMessage]) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	fn(c)

	var body Body[json.RawMessage]
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return w.Code, body
}

func TestOK(t *testing.T) {
	code, body := record(t, func(c *gin.Context) { OK(c, gin.H{"id": "p-1"}) })

	assert.Equal(t, http.StatusOK, code)
	assert.True(t, body.Succeeded())
	assert.Equal(t, http.StatusOK, body.StatusCode)
	assert.JSONEq(t, `{"id":"p-1"}`, string(body.Data))
}

func TestError(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		code    int
		message string
	}{
		{"http error", pkgErrors.NewHTTPError(http.StatusNotFound, "Property not found"), http.StatusNotFound, "Property not found"},
		{"validation error", pkgErrors.NewValidationError("page", "must be >= 0"), http.StatusBadRequest, "page: must be >= 0"},
		{"unknown error", errors.New("boom"), http.StatusInternalServerError, MessageInternalError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, body := record(t, func(c *gin.Context) { Error(c, tt.err) })

			assert.Equal(t, tt.code, code)
			assert.False(t, body.Succeeded())
			assert.Equal(t, StatusError, body.Status)
			assert.Equal(t, tt.message, body.Message)
		})
	}
}

func TestErrorWithMap(t *testing.T) {
	errMissing := errors.New("missing")
	mapping := ErrorMapping{errMissing: pkgErrors.NewHTTPError(http.StatusNotFound, "Not found")}

	code, body := record(t, func(c *gin.Context) {
		ErrorWithMap(c, errors.Join(errors.New("lookup"), errMissing), mapping)
	})

	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, "Not found", body.Message)
}
