package usecase

import (
	"time"

	"lab-booking/internal/data/repository"
	"lab-booking/pkg/utils"

	"go.uber.org/zap"
)

// Clock supplies "now" so time-dependent logic stays testable.
type Clock func() time.Time

type Service struct {
	Laboratory  LaboratoryService
	Equipment   EquipmentService
	TimeFrame   TimeFrameService
	Booking     BookingService
	Maintenance MaintenanceService
}

func NewService(repo *repository.Repository, config *utils.Config, log *zap.Logger) *Service {
	clock := Clock(time.Now)

	return &Service{
		Laboratory:  NewLaboratoryService(repo, clock, log),
		Equipment:   NewEquipmentService(repo, log),
		TimeFrame:   NewTimeFrameService(repo, config, clock, log),
		Booking:     NewBookingService(repo, clock, log),
		Maintenance: NewMaintenanceService(repo, clock, log),
	}
}
