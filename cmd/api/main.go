package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/time/rate"

	"collegeblog/cmd/app"
	"collegeblog/internal/config"
	handlers "collegeblog/internal/handler"
	"collegeblog/internal/logger"
	"collegeblog/internal/middleware"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg := config.LoadConfig()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	if err := logger.Initialize(cfg.LogLevel); err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg); err != nil {
		logger.Log.Errorw("server stopped with error", "error", err)
		logger.Sync()
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config) error {
	db, services, err := app.App(ctx, cfg)
	if err != nil {
		return err
	}
	defer db.CloseDB()

	handler := handlers.NewHandlers(services, cfg)

	authLimiter := middleware.NewIPRateLimiter(rate.Limit(cfg.AuthRateLimit), cfg.AuthRateBurst)
	router := handler.NewRouter(middleware.RateLimit(authLimiter))

	handlerChain := middleware.Chain(
		router,
		middleware.Timeout(cfg.RequestTimeout),
		middleware.Recoverer,
		middleware.LoggingMiddleware,
		middleware.CORSMiddleware(cfg.CORSAllowedOrigins),
		middleware.RealIP,
		middleware.RequestID,
	)

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.ServerPort),
		Handler:           handlerChain,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       cfg.RequestTimeout + 5*time.Second,
		WriteTimeout:      cfg.RequestTimeout + 5*time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Log.Infow("server starting",
			"addr", srv.Addr,
			"db", cfg.DB.Name,
			"storage", cfg.Storage.Backend,
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("failed to start server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Log.Infow("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}

	logger.Log.Infow("server stopped")
	return nil
}
