package app

import (
	"context"
	"fmt"

	"collegeblog/internal/config"
	"collegeblog/internal/database"
	"collegeblog/internal/mailer"
	"collegeblog/internal/repository"
	"collegeblog/internal/service"
	"collegeblog/internal/storage"
)

// App connects the collaborators and builds the service layer.
func App(ctx context.Context, cfg *config.Config) (*database.DB, *service.Service, error) {
	db, err := database.ConnectDB(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}

	store, err := storage.New(ctx, cfg)
	if err != nil {
		db.CloseDB()
		return nil, nil, fmt.Errorf("failed to initialize image storage: %w", err)
	}

	repo := repository.NewRepository(db.DB)
	tx := database.NewTxManager(db.DB)
	mail := mailer.New(cfg.SMTP)

	services := service.NewService(repo, cfg, tx, store, mail)

	return db, services, nil
}
