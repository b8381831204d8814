package database

import (
	"context"
	"fmt"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"collegeblog/internal/config"
	"collegeblog/internal/logger"
)

type DB struct {
	*sqlx.DB
}

// ConnectDB opens the pool with the configured driver, verifies it and applies
// pending migrations.
func ConnectDB(ctx context.Context, cfg *config.Config) (*DB, error) {
	logger.Log.Infow("connecting to database",
		"driver", cfg.DB.Driver,
		"host", cfg.DB.Host,
		"dbname", cfg.DB.Name,
	)

	db, err := sqlx.ConnectContext(ctx, cfg.DB.Driver, cfg.DB.DSN())
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	db.SetMaxOpenConns(cfg.DB.MaxOpenConns)
	db.SetMaxIdleConns(cfg.DB.MaxIdleConns)
	db.SetConnMaxLifetime(30 * time.Minute)

	dbStruct := &DB{db}

	if cfg.DB.Migrate {
		if err := RunMigrations(cfg.DB); err != nil {
			db.Close()
			return nil, err
		}
	}

	if err := dbStruct.HealthCheck(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("database health check failed: %w", err)
	}

	logger.Log.Infow("connected to database", "dbname", cfg.DB.Name)
	return dbStruct, nil
}

func (db *DB) CloseDB() error {
	return db.DB.Close()
}

func (db *DB) HealthCheck(ctx context.Context) error {
	if db == nil || db.DB == nil {
		return fmt.Errorf("database connection is not initialized")
	}

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	return db.PingContext(ctx)
}
