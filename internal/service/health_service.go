package service

import (
	"context"
	"time"

	"collegeblog/internal/logger"
	"collegeblog/internal/models"
	"collegeblog/internal/repository"
)

const (
	StatusHealthy   = "healthy"
	StatusUnhealthy = "unhealthy"
)

type HealthService interface {
	Check(ctx context.Context) models.HealthStatus
}

type healthService struct {
	healthRepo repository.HealthRepository
	now        func() time.Time
}

func NewHealthService(healthRepo repository.HealthRepository) HealthService {
	return &healthService{
		healthRepo: healthRepo,
		now:        time.Now,
	}
}

func (s *healthService) Check(ctx context.Context) models.HealthStatus {
	status := models.HealthStatus{
		Status:    StatusHealthy,
		Timestamp: s.now().UTC(),
		Database:  "connected",
	}

	if err := s.healthRepo.Ping(ctx); err != nil {
		logger.Log.Warnw("database ping failed", "error", err)
		status.Status = StatusUnhealthy
		status.Database = "disconnected"
		return status
	}

	tables, err := s.healthRepo.CountTables(ctx)
	if err != nil {
		logger.Log.Warnw("count tables failed", "error", err)
		return status
	}
	status.Tables = tables

	return status
}
