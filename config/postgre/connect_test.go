package postgre

import (
	"testing"

	"rentdesk-srv/config"

	"github.com/stretchr/testify/assert"
)

func TestDSN(t *testing.T) {
	cfg := config.PostgresConfig{Host: "db", Port: 5432, User: "rent", Password: "pw", DBName: "rentdesk"}
	assert.Equal(t,
		"host=db port=5432 user=rent password=pw dbname=rentdesk sslmode=disable search_path=public",
		DSN(cfg))

	cfg.SSLMode = "require"
	cfg.Schema = "billing"
	assert.Contains(t, DSN(cfg), "sslmode=require search_path=billing")
}
