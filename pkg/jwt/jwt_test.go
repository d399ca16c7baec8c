package jwt

import (
	"strings"
	"testing"
	"time"

	"rentdesk-srv/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var secret = strings.Repeat("s", 32)

func newManager(t *testing.T, cfg Config) *managerImpl {
	t.Helper()
	m, err := New(cfg)
	require.NoError(t, err)
	return m.(*managerImpl)
}

func TestGenerateVerify(t *testing.T) {
	m := newManager(t, Config{SecretKey: secret, Issuer: "rentdesk-srv", Audience: []string{"rentdesk-dashboard"}, TTL: time.Hour})

	tok, err := m.Generate(model.Scope{UserID: "u1", Email: "ada@rentdesk.ng", Role: model.RoleAdmin})
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(time.Hour), tok.ExpiresAt, 5*time.Second)

	p, err := m.Verify(tok.Value)
	require.NoError(t, err)
	assert.Equal(t, "u1", p.Subject)
	assert.Equal(t, model.RoleAdmin, p.Role)
	assert.NotEmpty(t, p.ID)
}

func TestVerifyRejects(t *testing.T) {
	m := newManager(t, Config{SecretKey: secret, Issuer: "rentdesk-srv"})
	tok, err := m.Generate(model.Scope{UserID: "u1", Role: model.RoleTenant})
	require.NoError(t, err)

	t.Run("wrong secret", func(t *testing.T) {
		other := newManager(t, Config{SecretKey: strings.Repeat("x", 32), Issuer: "rentdesk-srv"})
		_, err := other.Verify(tok.Value)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("expired", func(t *testing.T) {
		m.now = func() time.Time { return time.Now().Add(DefaultTTL + time.Minute) }
		defer func() { m.now = time.Now }()
		_, err := m.Verify(tok.Value)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("wrong issuer", func(t *testing.T) {
		other := newManager(t, Config{SecretKey: secret, Issuer: "someone-else"})
		_, err := other.Verify(tok.Value)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := m.Verify("not.a.token")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("unknown role", func(t *testing.T) {
		bad, err := m.Generate(model.Scope{UserID: "u1", Role: "owner"})
		require.NoError(t, err)
		_, err = m.Verify(bad.Value)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}

func TestNewRejectsShortSecret(t *testing.T) {
	_, err := New(Config{SecretKey: "short"})
	assert.ErrorIs(t, err, ErrSecretTooShort)
}
