package services

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/flickpick/flickpick/internal/database"
)

type HealthService struct {
	db     *database.Database
	logger *logrus.Logger
}

type HealthStatus struct {
	Status    string            `json:"status"`
	Timestamp time.Time         `json:"timestamp"`
	Services  map[string]string `json:"services"`
}

func NewHealthService(db *database.Database, logger *logrus.Logger) *HealthService {
	return &HealthService{
		db:     db,
		logger: logger,
	}
}

func (s *HealthService) Check(ctx context.Context) *HealthStatus {
	checkCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	status := &HealthStatus{
		Status:    "healthy",
		Timestamp: time.Now(),
		Services:  make(map[string]string),
	}

	if err := s.db.PG.Ping(checkCtx); err != nil {
		s.logger.WithError(err).Error("PostgreSQL health check failed")
		status.Services["postgres"] = "unhealthy"
		status.Status = "unhealthy"
	} else {
		status.Services["postgres"] = "healthy"
	}

	if err := s.db.Redis.Ping(checkCtx).Err(); err != nil {
		s.logger.WithError(err).Error("Redis health check failed")
		status.Services["redis"] = "unhealthy"
		status.Status = "unhealthy"
	} else {
		status.Services["redis"] = "healthy"
	}

	return status
}
