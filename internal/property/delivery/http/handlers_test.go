package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"rentdesk-srv/internal/middleware"
	"rentdesk-srv/internal/model"
	"rentdesk-srv/internal/property"
	"rentdesk-srv/pkg/log"
	"rentdesk-srv/pkg/paginator"
	"rentdesk-srv/pkg/response"
	"rentdesk-srv/pkg/scope"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeUseCase struct {
	lastInput property.ListInput
	lastScope model.Scope
	err       error
}

func (f *fakeUseCase) List(_ context.Context, sc model.Scope, in property.ListInput) (paginator.Page[property.Output], error) {
	f.lastInput, f.lastScope = in, sc
	if f.err != nil {
		return paginator.Page[property.Output]{}, f.err
	}
	in.Query.Adjust()
	return paginator.NewPage([]property.Output{{
		Property: model.Property{ID: "p1", Name: "Palm Court", Location: &model.Ref{ID: "l1", Name: "Lekki"}, Status: "occupied"},
		ImageURL: "https://img.local/p1.jpg",
	}}, 11, in.Query), nil
}

func (f *fakeUseCase) Detail(_ context.Context, _ model.Scope, in property.DetailInput) (property.Output, error) {
	if in.ID != palmCourtID {
		return property.Output{}, property.ErrNotFound
	}
	return property.Output{Property: model.Property{ID: "p1"}}, nil
}

const (
	palmCourtID = "9f1c2d3e-4b5a-4c6d-8e7f-0a1b2c3d4e5f"
	lekkiID     = "2b7e1c4a-8d3f-4e6a-9b1c-5d2e7f8a9b0c"
)

var tenant = model.Scope{UserID: "t1", Role: model.RoleTenant}

func newServer(t *testing.T, uc property.UseCase) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	require.NoError(t, middleware.RegisterValidators())

	h := &handler{l: log.NewNop(), uc: uc}
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Request = c.Request.WithContext(scope.SetScopeToContext(c.Request.Context(), tenant))
	})
	r.GET("/api/v1/properties", h.List)
	r.GET("/api/v1/properties/:id", h.Detail)
	return r
}

func get(r *gin.Engine, target string) (*httptest.ResponseRecorder, response.Body[json.RawMessage]) {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, target, nil))
	var body response.Body[json.RawMessage]
	_ = json.Unmarshal(w.Body.Bytes(), &body)
	return w, body
}

func TestList(t *testing.T) {
	uc := &fakeUseCase{}
	r := newServer(t, uc)

	w, body := get(r, "/api/v1/properties?page=1&size=10&search=%20palm%20&status=OCCUPIED&location=all")
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, body.Succeeded())

	assert.Equal(t, property.ListInput{
		Query:  paginator.PageQuery{Page: 1, Size: 10},
		Search: "palm",
		Status: "occupied",
	}, uc.lastInput)
	assert.Equal(t, tenant, uc.lastScope)

	var page paginator.Page[propertyResp]
	require.NoError(t, json.Unmarshal(body.Data, &page))
	assert.Equal(t, 11, page.TotalItems)
	assert.Equal(t, 2, page.TotalPages)
	assert.Equal(t, 1, page.CurrentPage)
	assert.Equal(t, "Lekki", page.Data[0].Location.Name)
	assert.Equal(t, "https://img.local/p1.jpg", page.Data[0].ImageURL)
}

func TestListBadRequest(t *testing.T) {
	r := newServer(t, &fakeUseCase{})

	for _, target := range []string{
		"/api/v1/properties?status=sold",
		"/api/v1/properties?page=abc",
		"/api/v1/properties?location=lagos",
	} {
		w, body := get(r, target)
		assert.Equal(t, http.StatusBadRequest, w.Code, target)
		assert.Equal(t, response.StatusError, body.Status)
	}
}

func TestListInternalError(t *testing.T) {
	r := newServer(t, &fakeUseCase{err: assert.AnError})
	w, body := get(r, "/api/v1/properties")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, response.MessageInternalError, body.Message)
}

func TestDetail(t *testing.T) {
	r := newServer(t, &fakeUseCase{})

	w, _ := get(r, "/api/v1/properties/"+palmCourtID)
	assert.Equal(t, http.StatusOK, w.Code)

	w, body := get(r, "/api/v1/properties/"+lekkiID)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Property not found", body.Message)
}

func TestDetailMalformedID(t *testing.T) {
	r := newServer(t, &fakeUseCase{})

	w, body := get(r, "/api/v1/properties/abc")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, response.StatusError, body.Status)
}

func TestListLocationFilter(t *testing.T) {
	uc := &fakeUseCase{}
	r := newServer(t, uc)

	w, _ := get(r, "/api/v1/properties?location="+strings.ToUpper(lekkiID))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, lekkiID, uc.lastInput.LocationID)

	w, body := get(r, "/api/v1/properties?location=lagos")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, response.StatusError, body.Status)
}
