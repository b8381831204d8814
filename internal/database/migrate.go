package database

import (
	"embed"
	"errors"
	"fmt"
	"net/url"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"

	"collegeblog/internal/config"
	"collegeblog/internal/logger"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// MigrationURL renders the settings as the URL form golang-migrate expects.
func MigrationURL(cfg config.DB) string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(cfg.User, cfg.Password),
		Host:     cfg.Host + ":" + cfg.Port,
		Path:     "/" + cfg.Name,
		RawQuery: url.Values{"sslmode": []string{cfg.SSLMode}}.Encode(),
	}
	return u.String()
}

// RunMigrations applies every embedded migration that has not run yet.
// It opens its own connection so closing the migrator leaves the pool intact.
func RunMigrations(cfg config.DB) error {
	src, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return fmt.Errorf("failed to open embedded migrations: %w", err)
	}

	m, err := migrate.NewWithSourceInstance("iofs", src, MigrationURL(cfg))
	if err != nil {
		return fmt.Errorf("failed to init migrator: %w", err)
	}
	defer func() {
		srcErr, dbErr := m.Close()
		if srcErr != nil || dbErr != nil {
			logger.Log.Warnw("failed to close migrator", "source_error", srcErr, "db_error", dbErr)
		}
	}()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}

	version, dirty, err := m.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return fmt.Errorf("failed to read migration version: %w", err)
	}
	logger.Log.Infow("migrations applied", "version", version, "dirty", dirty)

	return nil
}
