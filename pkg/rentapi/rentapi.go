package rentapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	pkghttp "rentdesk-srv/pkg/http"
	"rentdesk-srv/pkg/paginator"
	"rentdesk-srv/pkg/response"
)

// List fetches are never retried; failures surface to the caller for a manual retry.
func defaultHTTPClient() pkghttp.IClient {
	cfg := pkghttp.DefaultConfig()
	cfg.Timeout = DefaultTimeout
	return pkghttp.NewClient(cfg)
}

func (c *clientImpl) WithToken(token string) IClient {
	cp := *c
	cp.token = token
	return &cp
}

// Login exchanges credentials for a session token.
func (c *clientImpl) Login(ctx context.Context, email, password string) (Session, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	body, statusCode, err := c.httpClient.Post(ctx, c.url(PathLogin), map[string]string{
		"email":    email,
		"password": password,
	}, c.headers())
	if err != nil {
		return Session{}, fmt.Errorf("%w: %w", ErrTransport, err)
	}
	return decode[Session](body, statusCode)
}

// Me returns the user behind the current token.
func (c *clientImpl) Me(ctx context.Context) (User, error) {
	return get[User](ctx, c, PathMe, nil)
}

func (c *clientImpl) Properties(ctx context.Context, req paginator.PageRequest) (paginator.Page[Property], error) {
	return list[Property](ctx, c, PathProperties, req)
}

func (c *clientImpl) Payments(ctx context.Context, req paginator.PageRequest) (paginator.Page[Payment], error) {
	return list[Payment](ctx, c, PathPayments, req)
}

func (c *clientImpl) DueRents(ctx context.Context, req paginator.PageRequest) (paginator.Page[DueRent], error) {
	return list[DueRent](ctx, c, PathDueRents, req)
}

func (c *clientImpl) Tenants(ctx context.Context, req paginator.PageRequest) (paginator.Page[Tenant], error) {
	return list[Tenant](ctx, c, PathTenants, req)
}

func (c *clientImpl) Admins(ctx context.Context, req paginator.PageRequest) (paginator.Page[Admin], error) {
	return list[Admin](ctx, c, PathAdmins, req)
}

func (c *clientImpl) Locations(ctx context.Context, req paginator.PageRequest) (paginator.Page[Location], error) {
	return list[Location](ctx, c, PathLocations, req)
}

func (c *clientImpl) Notifications(ctx context.Context, req paginator.PageRequest) (paginator.Page[Notification], error) {
	return list[Notification](ctx, c, PathNotifications, req)
}

func list[T any](ctx context.Context, c *clientImpl, path string, req paginator.PageRequest) (paginator.Page[T], error) {
	return get[paginator.Page[T]](ctx, c, path, req.Values())
}

func get[T any](ctx context.Context, c *clientImpl, path string, query url.Values) (T, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	u := c.url(path)
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	body, statusCode, err := c.httpClient.Get(ctx, u, c.headers())
	if err != nil {
		var zero T
		return zero, fmt.Errorf("%w: %w", ErrTransport, err)
	}
	return decode[T](body, statusCode)
}

// decode checks the envelope before trusting its data.
func decode[T any](body []byte, statusCode int) (T, error) {
	var zero T
	var env response.Body[T]
	if err := json.Unmarshal(body, &env); err != nil {
		if statusCode < http.StatusOK || statusCode >= http.StatusMultipleChoices {
			return zero, &APIError{StatusCode: statusCode}
		}
		return zero, fmt.Errorf("%w: %w", ErrInvalidResponse, err)
	}

	if statusCode < http.StatusOK || statusCode >= http.StatusMultipleChoices || !env.Succeeded() {
		code := statusCode
		if env.StatusCode != 0 {
			code = env.StatusCode
		}
		return zero, &APIError{StatusCode: code, Message: env.Message}
	}
	return env.Data, nil
}

func (c *clientImpl) url(path string) string {
	return strings.TrimRight(c.baseURL, "/") + path
}

func (c *clientImpl) headers() map[string]string {
	h := map[string]string{"Accept": "application/json"}
	if c.token != "" {
		h["Authorization"] = "Bearer " + c.token
	}
	return h
}
