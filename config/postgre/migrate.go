package postgre

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"rentdesk-srv/config"
	"rentdesk-srv/migrations"
	"rentdesk-srv/pkg/log"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

// Migrate applies the embedded migrations up to the latest version.
// An already current schema is not an error.
func Migrate(ctx context.Context, db *sql.DB, cfg config.PostgresConfig, l log.Logger) error {
	src, err := iofs.New(migrations.FS, ".")
	if err != nil {
		return fmt.Errorf("failed to load migrations: %w", err)
	}

	schema := cfg.Schema
	if schema == "" {
		schema = "public"
	}
	driver, err := postgres.WithInstance(db, &postgres.Config{SchemaName: schema})
	if err != nil {
		return fmt.Errorf("failed to create migrate driver: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", src, "postgres", driver)
	if err != nil {
		return fmt.Errorf("failed to create migrator: %w", err)
	}

	if err := m.Up(); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			l.Infof(ctx, "config.postgre.Migrate: schema is up to date")
			return nil
		}
		return fmt.Errorf("failed to apply migrations: %w", err)
	}

	version, dirty, err := m.Version()
	if err != nil {
		return fmt.Errorf("failed to read migration version: %w", err)
	}
	l.Infof(ctx, "config.postgre.Migrate: migrated to version %d (dirty=%t)", version, dirty)
	return nil
}
