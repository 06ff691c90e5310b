package usecase

import (
	"context"
	"fmt"
	"time"

	"lab-booking/internal/data/entity"
	"lab-booking/internal/data/repository"
	"lab-booking/internal/dto/request"
	"lab-booking/internal/dto/response"
	"lab-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type TimeFrameService interface {
	// CreateTimeFrame validates the template, partitions it into slots and
	// persists the timeframe plus one booking per slot atomically. There is
	// no regenerate operation: a timeframe produces its bookings exactly
	// once, at creation.
	CreateTimeFrame(ctx context.Context, ownerID uuid.UUID, req *request.CreateTimeFrameRequest) (*response.TimeFrameGenerationResponse, error)
	GetTimeFramesByEquipment(ctx context.Context, equipmentID string) ([]response.TimeFrameResponse, error)
	GetTimeFrameByID(ctx context.Context, timeframeID string) (*response.TimeFrameResponse, error)
	DisableTimeFrame(ctx context.Context, timeframeID string, ownerID uuid.UUID) error
}

type timeframeService struct {
	repo           *repository.Repository
	passwordLength int
	now            Clock
	log            *zap.Logger
}

func NewTimeFrameService(repo *repository.Repository, config *utils.Config, clock Clock, log *zap.Logger) TimeFrameService {
	return &timeframeService{
		repo:           repo,
		passwordLength: config.Booking.PasswordLength,
		now:            clock,
		log:            log.With(zap.String("service", "timeframe")),
	}
}

func (s *timeframeService) CreateTimeFrame(ctx context.Context, ownerID uuid.UUID, req *request.CreateTimeFrameRequest) (*response.TimeFrameGenerationResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create timeframe validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	equipmentID, err := uuid.Parse(req.EquipmentID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid equipment ID %s", ErrValidation, req.EquipmentID)
	}

	startDate, err := time.Parse("2006-01-02", req.StartDate)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid start date %s", ErrValidation, req.StartDate)
	}
	endDate, err := time.Parse("2006-01-02", req.EndDate)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid end date %s", ErrValidation, req.EndDate)
	}
	startHour, err := time.Parse("15:04", req.StartHour)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid start hour %s", ErrValidation, req.StartHour)
	}
	endHour, err := time.Parse("15:04", req.EndHour)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid end hour %s", ErrValidation, req.EndHour)
	}

	// Fails fast on template constraint violations before touching the store.
	slots, err := PartitionSlots(startDate, endDate, startHour, endHour, req.SlotDuration, time.Local)
	if err != nil {
		return nil, err
	}

	eq, err := s.repo.Equipment.FindByID(ctx, equipmentID)
	if err != nil {
		return nil, fmt.Errorf("%w: find equipment: %v", ErrStorage, err)
	}
	if eq == nil {
		return nil, fmt.Errorf("%w: equipment %s", ErrNotFound, req.EquipmentID)
	}

	// Equipment of a disabled laboratory must not offer new bookings.
	lab, err := s.repo.Laboratory.FindByID(ctx, eq.LaboratoryID)
	if err != nil {
		return nil, fmt.Errorf("%w: find laboratory: %v", ErrStorage, err)
	}
	if lab == nil {
		return nil, fmt.Errorf("%w: laboratory for equipment %s", ErrNotFound, req.EquipmentID)
	}

	now := s.now()
	tf := &entity.TimeFrame{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		EquipmentID:  equipmentID,
		StartDate:    startDate,
		EndDate:      endDate,
		StartHour:    startHour,
		EndHour:      endHour,
		SlotDuration: req.SlotDuration,
		Enabled:      true,
		OwnerID:      ownerID,
	}

	bookings := make([]*entity.Booking, len(slots))
	for i, slot := range slots {
		bookings[i] = &entity.Booking{
			Base: entity.Base{
				ID:        uuid.New(),
				CreatedAt: now,
				UpdatedAt: now,
			},
			TimeFrameID: tf.ID,
			EquipmentID: equipmentID,
			StartDate:   slot.Start,
			EndDate:     slot.End,
			Available:   true,
			Public:      req.Public,
			AccessKey:   utils.GenerateAccessKey(),
			Password:    utils.GeneratePassword(s.passwordLength),
			OwnerID:     ownerID,
			ReservedBy:  nil,
		}
	}

	if err := s.repo.TimeFrame.CreateWithBookings(ctx, tf, bookings); err != nil {
		s.log.Error("Failed to generate timeframe bookings",
			zap.Error(err),
			zap.String("equipment_id", req.EquipmentID),
			zap.Int("slots", len(slots)),
		)
		return nil, fmt.Errorf("%w: generate bookings: %v", ErrStorage, err)
	}

	s.log.Info("Timeframe generated",
		zap.String("timeframe_id", tf.ID.String()),
		zap.String("equipment_id", req.EquipmentID),
		zap.Int("slots", len(slots)),
		zap.Bool("public", req.Public),
	)

	return &response.TimeFrameGenerationResponse{
		TimeFrameResponse: response.TimeFrameToResponse(tf),
		GeneratedSlots:    len(bookings),
	}, nil
}

func (s *timeframeService) GetTimeFramesByEquipment(ctx context.Context, equipmentID string) ([]response.TimeFrameResponse, error) {
	id, err := uuid.Parse(equipmentID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid equipment ID %s", ErrValidation, equipmentID)
	}

	timeframes, err := s.repo.TimeFrame.FindByEquipmentID(ctx, id)
	if err != nil {
		s.log.Error("Failed to get timeframes", zap.Error(err))
		return nil, fmt.Errorf("%w: get timeframes: %v", ErrStorage, err)
	}

	responses := make([]response.TimeFrameResponse, len(timeframes))
	for i, tf := range timeframes {
		responses[i] = response.TimeFrameToResponse(tf)
	}

	return responses, nil
}

func (s *timeframeService) GetTimeFrameByID(ctx context.Context, timeframeID string) (*response.TimeFrameResponse, error) {
	id, err := uuid.Parse(timeframeID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid timeframe ID %s", ErrValidation, timeframeID)
	}

	tf, err := s.repo.TimeFrame.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%w: find timeframe: %v", ErrStorage, err)
	}
	if tf == nil {
		return nil, fmt.Errorf("%w: timeframe %s", ErrNotFound, timeframeID)
	}

	resp := response.TimeFrameToResponse(tf)
	return &resp, nil
}

func (s *timeframeService) DisableTimeFrame(ctx context.Context, timeframeID string, ownerID uuid.UUID) error {
	id, err := uuid.Parse(timeframeID)
	if err != nil {
		return fmt.Errorf("%w: invalid timeframe ID %s", ErrValidation, timeframeID)
	}

	tf, err := s.repo.TimeFrame.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("%w: find timeframe: %v", ErrStorage, err)
	}
	if tf == nil || tf.OwnerID != ownerID {
		return fmt.Errorf("%w: timeframe %s", ErrNotFound, timeframeID)
	}

	if err := s.repo.TimeFrame.Disable(ctx, id); err != nil {
		return fmt.Errorf("%w: disable timeframe: %v", ErrStorage, err)
	}

	return nil
}
