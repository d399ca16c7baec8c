package rentapi

import (
	"context"

	"rentdesk-srv/pkg/paginator"
)

// IClient is a typed client for the rentdesk REST API.
// Implementations are safe for concurrent use.
type IClient interface {
	Login(ctx context.Context, email, password string) (Session, error)
	Me(ctx context.Context) (User, error)
	WithToken(token string) IClient

	Properties(ctx context.Context, req paginator.PageRequest) (paginator.Page[Property], error)
	Payments(ctx context.Context, req paginator.PageRequest) (paginator.Page[Payment], error)
	DueRents(ctx context.Context, req paginator.PageRequest) (paginator.Page[DueRent], error)
	Tenants(ctx context.Context, req paginator.PageRequest) (paginator.Page[Tenant], error)
	Admins(ctx context.Context, req paginator.PageRequest) (paginator.Page[Admin], error)
	Locations(ctx context.Context, req paginator.PageRequest) (paginator.Page[Location], error)
	Notifications(ctx context.Context, req paginator.PageRequest) (paginator.Page[Notification], error)
}

// New creates a new API client. Returns the interface.
func New(cfg Config) IClient {
	if cfg.HTTPClient == nil {
		cfg.HTTPClient = defaultHTTPClient()
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	return &clientImpl{
		baseURL:    cfg.BaseURL,
		token:      cfg.Token,
		timeout:    cfg.Timeout,
		httpClient: cfg.HTTPClient,
	}
}
