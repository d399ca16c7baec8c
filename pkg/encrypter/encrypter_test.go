package encrypter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHashAndCheck(t *testing.T) {
	e := New(bcrypt.MinCost)

	hash, err := e.HashPassword("ChangeMe123!")
	require.NoError(t, err)
	assert.NotEqual(t, "ChangeMe123!", hash)

	assert.True(t, e.CheckPasswordHash("ChangeMe123!", hash))
	assert.False(t, e.CheckPasswordHash("changeme123!", hash))
	assert.False(t, e.CheckPasswordHash("ChangeMe123!", "not-a-hash"))
}

func TestEmptyPassword(t *testing.T) {
	_, err := New(0).HashPassword("")
	assert.ErrorIs(t, err, ErrEmptyPassword)
}
