package jwt

import (
	"fmt"

	"rentdesk-srv/internal/model"
	"rentdesk-srv/pkg/scope"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

func validateConfig(cfg Config) error {
	if len(cfg.SecretKey) < MinSecretKeyLen {
		return fmt.Errorf("%w: got %d", ErrSecretTooShort, len(cfg.SecretKey))
	}
	return nil
}

// Generate signs a token for sc. The token id is a fresh UUID.
func (m *managerImpl) Generate(sc model.Scope) (Token, error) {
	now := m.now()
	expiresAt := now.Add(m.ttl)

	claims := scope.Payload{
		Email: sc.Email,
		Role:  sc.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    m.issuer,
			Subject:   sc.UserID,
			Audience:  m.audience,
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
			ID:        uuid.NewString(),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secretKey)
	if err != nil {
		return Token{}, fmt.Errorf("failed to sign token: %w", err)
	}
	return Token{Value: signed, ExpiresAt: expiresAt}, nil
}

// Verify parses token and checks its signature, expiry, issuer and audience.
func (m *managerImpl) Verify(token string) (scope.Payload, error) {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(m.now),
	}
	if m.issuer != "" {
		opts = append(opts, jwt.WithIssuer(m.issuer))
	}
	if len(m.audience) > 0 {
		opts = append(opts, jwt.WithAudience(m.audience[0]))
	}

	var payload scope.Payload
	parsed, err := jwt.ParseWithClaims(token, &payload, func(*jwt.Token) (any, error) {
		return m.secretKey, nil
	}, opts...)
	if err != nil {
		return scope.Payload{}, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}
	if !parsed.Valid || payload.Subject == "" || !model.ValidRole(payload.Role) {
		return scope.Payload{}, ErrInvalidToken
	}
	return payload, nil
}
