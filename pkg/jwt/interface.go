package jwt

import (
	"time"

	"rentdesk-srv/internal/model"
	"rentdesk-srv/pkg/scope"
)

// IManager issues and verifies HS256 session tokens.
// Implementations are safe for concurrent use.
type IManager interface {
	Generate(sc model.Scope) (Token, error)
	Verify(token string) (scope.Payload, error)
}

// New creates a new JWT manager. Returns the interface.
func New(cfg Config) (IManager, error) {
	if err := validateConfig(cfg); err != nil {
		return nil, err
	}
	if cfg.TTL <= 0 {
		cfg.TTL = DefaultTTL
	}
	return &managerImpl{
		secretKey: []byte(cfg.SecretKey),
		issuer:    cfg.Issuer,
		audience:  cfg.Audience,
		ttl:       cfg.TTL,
		now:       time.Now,
	}, nil
}
