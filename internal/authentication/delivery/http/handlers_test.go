package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"rentdesk-srv/config"
	"rentdesk-srv/internal/authentication"
	"rentdesk-srv/internal/model"
	"rentdesk-srv/pkg/log"
	"rentdesk-srv/pkg/response"
	"rentdesk-srv/pkg/scope"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeUseCase struct{}

func (fakeUseCase) Login(_ context.Context, in authentication.LoginInput) (authentication.LoginOutput, error) {
	if in.Password != "s3cret-pass" {
		return authentication.LoginOutput{}, authentication.ErrInvalidCredentials
	}
	return authentication.LoginOutput{
		Token:     "tok",
		ExpiresAt: time.Now().Add(time.Hour),
		User:      model.User{ID: "u1", Email: in.Email, Role: model.RoleAdmin, FirstName: "Kemi"},
	}, nil
}

func (fakeUseCase) Me(_ context.Context, sc model.Scope) (model.User, error) {
	return model.User{ID: sc.UserID, Role: sc.Role}, nil
}

func newServer() *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := &handler{l: log.NewNop(), uc: fakeUseCase{}, cookie: config.CookieConfig{Name: "rentdesk_session", MaxAge: 3600}}
	r := gin.New()
	r.POST("/authentication/login", h.Login)
	r.POST("/authentication/logout", h.Logout)
	r.GET("/authentication/me", func(c *gin.Context) {
		sc := model.Scope{UserID: "u1", Role: model.RoleTenant}
		c.Request = c.Request.WithContext(scope.SetScopeToContext(c.Request.Context(), sc))
	}, h.Me)
	return r
}

func post(r *gin.Engine, target, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestLogin(t *testing.T) {
	r := newServer()

	w := post(r, "/authentication/login", `{"email":"kemi@x.io","password":"s3cret-pass"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var body response.Body[sessionResp]
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "tok", body.Data.Token)
	assert.Equal(t, "Kemi", body.Data.User.FirstName)

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "rentdesk_session", cookies[0].Name)
	assert.Equal(t, "tok", cookies[0].Value)
	assert.True(t, cookies[0].HttpOnly)
}

func TestLoginRejected(t *testing.T) {
	r := newServer()

	w := post(r, "/authentication/login", `{"email":"kemi@x.io","password":"wrong"}`)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Empty(t, w.Result().Cookies())

	w = post(r, "/authentication/login", `{"email":"not-an-email","password":"x"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLogoutClearsCookie(t *testing.T) {
	w := post(newServer(), "/authentication/logout", "")
	require.Equal(t, http.StatusOK, w.Code)
	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.True(t, cookies[0].MaxAge < 0)
}

func TestMe(t *testing.T) {
	w := httptest.NewRecorder()
	newServer().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/authentication/me", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var body response.Body[userResp]
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "u1", body.Data.ID)
	assert.Equal(t, model.RoleTenant, body.Data.Role)
}
