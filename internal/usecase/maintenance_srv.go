package usecase

import (
	"context"
	"fmt"

	"lab-booking/internal/data/repository"

	"go.uber.org/zap"
)

type MaintenanceService interface {
	// DisableExpiredTimeFrames archives every enabled timeframe whose window
	// has fully passed. Run periodically from the scheduler.
	DisableExpiredTimeFrames(ctx context.Context) (int64, error)
}

type maintenanceService struct {
	repo *repository.Repository
	now  Clock
	log  *zap.Logger
}

func NewMaintenanceService(repo *repository.Repository, clock Clock, log *zap.Logger) MaintenanceService {
	return &maintenanceService{
		repo: repo,
		now:  clock,
		log:  log.With(zap.String("service", "maintenance")),
	}
}

func (s *maintenanceService) DisableExpiredTimeFrames(ctx context.Context) (int64, error) {
	count, err := s.repo.TimeFrame.DisableExpired(ctx, s.now())
	if err != nil {
		s.log.Error("Failed to disable expired timeframes", zap.Error(err))
		return 0, fmt.Errorf("%w: disable expired timeframes: %v", ErrStorage, err)
	}

	if count > 0 {
		s.log.Info("Expired timeframes disabled", zap.Int64("count", count))
	}

	return count, nil
}
