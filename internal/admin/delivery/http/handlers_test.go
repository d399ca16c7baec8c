package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"rentdesk-srv/internal/admin"
	"rentdesk-srv/internal/middleware"
	"rentdesk-srv/internal/model"
	"rentdesk-srv/pkg/log"
	"rentdesk-srv/pkg/paginator"
	"rentdesk-srv/pkg/response"
	"rentdesk-srv/pkg/scope"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeUseCase struct{}

func (fakeUseCase) List(_ context.Context, sc model.Scope, in admin.ListInput) (paginator.Page[model.Admin], error) {
	if !sc.IsSuperAdmin() {
		return paginator.Page[model.Admin]{}, admin.ErrForbidden
	}
	in.Query.Adjust()
	return paginator.NewPage([]model.Admin{{User: model.User{ID: "a1"}, PropertiesCount: 2}}, 1, in.Query), nil
}

func serve(t *testing.T, sc model.Scope, target string) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)
	require.NoError(t, middleware.RegisterValidators())
	h := &handler{l: log.NewNop(), uc: fakeUseCase{}}
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Request = c.Request.WithContext(scope.SetScopeToContext(c.Request.Context(), sc))
	})
	r.GET("/api/v1/admins", h.List)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, target, nil))
	return w
}

func TestList(t *testing.T) {
	w := serve(t, model.Scope{UserID: "s1", Role: model.RoleSuperAdmin}, "/api/v1/admins?status=ALL")
	require.Equal(t, http.StatusOK, w.Code)

	var body response.Body[paginator.Page[adminResp]]
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, 2, body.Data.Data[0].PropertiesCount)
	assert.Equal(t, 10, body.Data.PageSize)
}

func TestListForbidden(t *testing.T) {
	w := serve(t, model.Scope{UserID: "a1", Role: model.RoleAdmin}, "/api/v1/admins")
	assert.Equal(t, http.StatusForbidden, w.Code)
}
