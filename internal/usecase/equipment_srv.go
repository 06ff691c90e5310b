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

// Default per-user cap on simultaneous future reservations per equipment.
const defaultBookingsPerUser = 3

type EquipmentService interface {
	CreateEquipment(ctx context.Context, ownerID uuid.UUID, req *request.CreateEquipmentRequest) (*response.EquipmentResponse, error)
	GetEquipmentByLaboratory(ctx context.Context, laboratoryID string) ([]response.EquipmentResponse, error)
	GetEquipmentByID(ctx context.Context, equipmentID string) (*response.EquipmentResponse, error)
	UpdateEquipment(ctx context.Context, equipmentID string, ownerID uuid.UUID, req *request.UpdateEquipmentRequest) (*response.EquipmentResponse, error)
	DisableEquipment(ctx context.Context, equipmentID string, ownerID uuid.UUID) error
}

type equipmentService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewEquipmentService(repo *repository.Repository, log *zap.Logger) EquipmentService {
	return &equipmentService{
		repo: repo,
		log:  log.With(zap.String("service", "equipment")),
	}
}

func (s *equipmentService) CreateEquipment(ctx context.Context, ownerID uuid.UUID, req *request.CreateEquipmentRequest) (*response.EquipmentResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create equipment validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	laboratoryID, err := uuid.Parse(req.LaboratoryID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid laboratory ID %s", ErrValidation, req.LaboratoryID)
	}

	// Equipment can only be attached to an enabled lab.
	lab, err := s.repo.Laboratory.FindByID(ctx, laboratoryID)
	if err != nil {
		return nil, fmt.Errorf("%w: find laboratory: %v", ErrStorage, err)
	}
	if lab == nil {
		return nil, fmt.Errorf("%w: laboratory %s", ErrNotFound, req.LaboratoryID)
	}

	bookingsPerUser := req.BookingsPerUser
	if bookingsPerUser <= 0 {
		bookingsPerUser = defaultBookingsPerUser
	}

	now := time.Now()
	eq := &entity.Equipment{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		LaboratoryID:    laboratoryID,
		Name:            req.Name,
		Description:     req.Description,
		Enabled:         true,
		BookingsPerUser: bookingsPerUser,
		OwnerID:         ownerID,
	}

	if err := s.repo.Equipment.Create(ctx, eq); err != nil {
		s.log.Error("Failed to create equipment", zap.Error(err), zap.String("name", req.Name))
		return nil, fmt.Errorf("%w: create equipment: %v", ErrStorage, err)
	}

	s.log.Info("Equipment created",
		zap.String("equipment_id", eq.ID.String()),
		zap.String("laboratory_id", laboratoryID.String()),
		zap.String("name", eq.Name),
	)

	resp := response.EquipmentToResponse(eq)
	return &resp, nil
}

func (s *equipmentService) GetEquipmentByLaboratory(ctx context.Context, laboratoryID string) ([]response.EquipmentResponse, error) {
	id, err := uuid.Parse(laboratoryID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid laboratory ID %s", ErrValidation, laboratoryID)
	}

	equipments, err := s.repo.Equipment.FindByLaboratoryID(ctx, id)
	if err != nil {
		s.log.Error("Failed to get equipment by laboratory", zap.Error(err))
		return nil, fmt.Errorf("%w: get equipment: %v", ErrStorage, err)
	}

	responses := make([]response.EquipmentResponse, len(equipments))
	for i, eq := range equipments {
		responses[i] = response.EquipmentToResponse(eq)
	}

	return responses, nil
}

func (s *equipmentService) GetEquipmentByID(ctx context.Context, equipmentID string) (*response.EquipmentResponse, error) {
	eq, err := s.findOwnedEquipment(ctx, equipmentID, uuid.Nil)
	if err != nil {
		return nil, err
	}

	resp := response.EquipmentToResponse(eq)
	return &resp, nil
}

func (s *equipmentService) UpdateEquipment(ctx context.Context, equipmentID string, ownerID uuid.UUID, req *request.UpdateEquipmentRequest) (*response.EquipmentResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update equipment validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	eq, err := s.findOwnedEquipment(ctx, equipmentID, ownerID)
	if err != nil {
		return nil, err
	}

	eq.Name = req.Name
	eq.Description = req.Description
	if req.BookingsPerUser > 0 {
		eq.BookingsPerUser = req.BookingsPerUser
	}
	eq.UpdatedAt = time.Now()

	if err := s.repo.Equipment.Update(ctx, eq); err != nil {
		s.log.Error("Failed to update equipment",
			zap.Error(err),
			zap.String("equipment_id", equipmentID),
		)
		return nil, fmt.Errorf("%w: update equipment: %v", ErrStorage, err)
	}

	resp := response.EquipmentToResponse(eq)
	return &resp, nil
}

// DisableEquipment archives the equipment and its timeframes; already
// generated bookings stay in place as history.
func (s *equipmentService) DisableEquipment(ctx context.Context, equipmentID string, ownerID uuid.UUID) error {
	eq, err := s.findOwnedEquipment(ctx, equipmentID, ownerID)
	if err != nil {
		return err
	}

	if err := s.repo.TimeFrame.DisableByEquipmentID(ctx, eq.ID); err != nil {
		return fmt.Errorf("%w: disable timeframes: %v", ErrStorage, err)
	}

	if err := s.repo.Equipment.Disable(ctx, eq.ID); err != nil {
		return fmt.Errorf("%w: disable equipment: %v", ErrStorage, err)
	}

	s.log.Info("Equipment archived", zap.String("equipment_id", eq.ID.String()))
	return nil
}

func (s *equipmentService) findOwnedEquipment(ctx context.Context, equipmentID string, ownerID uuid.UUID) (*entity.Equipment, error) {
	id, err := uuid.Parse(equipmentID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid equipment ID %s", ErrValidation, equipmentID)
	}

	eq, err := s.repo.Equipment.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%w: find equipment: %v", ErrStorage, err)
	}
	if eq == nil {
		return nil, fmt.Errorf("%w: equipment %s", ErrNotFound, equipmentID)
	}

	if ownerID != uuid.Nil && eq.OwnerID != ownerID {
		return nil, fmt.Errorf("%w: equipment %s", ErrNotFound, equipmentID)
	}

	return eq, nil
}
