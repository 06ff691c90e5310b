package usecase

import (
	"context"
	"fmt"

	"lab-booking/internal/data/entity"
	"lab-booking/internal/data/repository"
	"lab-booking/internal/dto/request"
	"lab-booking/internal/dto/response"
	"lab-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type LaboratoryService interface {
	CreateLaboratory(ctx context.Context, ownerID uuid.UUID, req *request.CreateLaboratoryRequest) (*response.LaboratoryResponse, error)
	GetLaboratories(ctx context.Context, ownerID string, visible string) ([]response.LaboratoryResponse, error)
	GetPublicLaboratories(ctx context.Context) ([]response.LaboratoryResponse, error)
	GetLaboratoryByID(ctx context.Context, laboratoryID string) (*response.LaboratoryResponse, error)
	UpdateLaboratory(ctx context.Context, laboratoryID string, ownerID uuid.UUID, req *request.UpdateLaboratoryRequest) (*response.LaboratoryResponse, error)
	DisableLaboratory(ctx context.Context, laboratoryID string, ownerID uuid.UUID) error
}

type laboratoryService struct {
	repo *repository.Repository
	now  Clock
	log  *zap.Logger
}

func NewLaboratoryService(repo *repository.Repository, clock Clock, log *zap.Logger) LaboratoryService {
	return &laboratoryService{
		repo: repo,
		now:  clock,
		log:  log.With(zap.String("service", "laboratory")),
	}
}

func (s *laboratoryService) CreateLaboratory(ctx context.Context, ownerID uuid.UUID, req *request.CreateLaboratoryRequest) (*response.LaboratoryResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create laboratory validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	now := s.now()
	lab := &entity.Laboratory{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Name:        req.Name,
		Instructor:  req.Instructor,
		University:  req.University,
		Course:      req.Course,
		Description: req.Description,
		URL:         req.URL,
		Enabled:     true,
		Visible:     req.Visible,
		OwnerID:     ownerID,
	}

	if err := s.repo.Laboratory.Create(ctx, lab); err != nil {
		s.log.Error("Failed to create laboratory", zap.Error(err), zap.String("name", req.Name))
		return nil, fmt.Errorf("%w: create laboratory: %v", ErrStorage, err)
	}

	s.log.Info("Laboratory created",
		zap.String("laboratory_id", lab.ID.String()),
		zap.String("name", lab.Name),
		zap.String("owner_id", ownerID.String()),
	)

	resp := response.LaboratoryToResponse(lab)
	return &resp, nil
}

func (s *laboratoryService) GetLaboratories(ctx context.Context, ownerID string, visible string) ([]response.LaboratoryResponse, error) {
	var ownerFilter *uuid.UUID
	if ownerID != "" {
		parsed, err := uuid.Parse(ownerID)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid owner ID %s", ErrValidation, ownerID)
		}
		ownerFilter = &parsed
	}

	labs, err := s.repo.Laboratory.FindAll(ctx, ownerFilter, utils.ParseBool(visible))
	if err != nil {
		s.log.Error("Failed to get laboratories", zap.Error(err))
		return nil, fmt.Errorf("%w: get laboratories: %v", ErrStorage, err)
	}

	responses := make([]response.LaboratoryResponse, len(labs))
	for i, lab := range labs {
		responses[i] = response.LaboratoryToResponse(lab)
	}

	return responses, nil
}

// GetPublicLaboratories lists visible labs with their live availability flag.
func (s *laboratoryService) GetPublicLaboratories(ctx context.Context) ([]response.LaboratoryResponse, error) {
	labs, err := s.repo.Laboratory.FindVisible(ctx)
	if err != nil {
		s.log.Error("Failed to get public laboratories", zap.Error(err))
		return nil, fmt.Errorf("%w: get public laboratories: %v", ErrStorage, err)
	}

	at := s.now()
	responses := make([]response.LaboratoryResponse, len(labs))
	for i, lab := range labs {
		responses[i] = response.LaboratoryToResponse(lab)

		available, err := s.repo.Booking.ExistsAvailableForLaboratory(ctx, lab.ID, at)
		if err != nil {
			s.log.Error("Failed to check laboratory availability",
				zap.Error(err),
				zap.String("laboratory_id", lab.ID.String()),
			)
			return nil, fmt.Errorf("%w: check laboratory availability: %v", ErrStorage, err)
		}
		responses[i].AvailableNow = &available
	}

	return responses, nil
}

func (s *laboratoryService) GetLaboratoryByID(ctx context.Context, laboratoryID string) (*response.LaboratoryResponse, error) {
	lab, err := s.findOwnedLaboratory(ctx, laboratoryID, uuid.Nil)
	if err != nil {
		return nil, err
	}

	resp := response.LaboratoryToResponse(lab)
	return &resp, nil
}

func (s *laboratoryService) UpdateLaboratory(ctx context.Context, laboratoryID string, ownerID uuid.UUID, req *request.UpdateLaboratoryRequest) (*response.LaboratoryResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update laboratory validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	lab, err := s.findOwnedLaboratory(ctx, laboratoryID, ownerID)
	if err != nil {
		return nil, err
	}

	lab.Name = req.Name
	lab.Instructor = req.Instructor
	lab.University = req.University
	lab.Course = req.Course
	lab.Description = req.Description
	lab.URL = req.URL
	lab.Visible = req.Visible
	lab.UpdatedAt = s.now()

	if err := s.repo.Laboratory.Update(ctx, lab); err != nil {
		s.log.Error("Failed to update laboratory",
			zap.Error(err),
			zap.String("laboratory_id", laboratoryID),
		)
		return nil, fmt.Errorf("%w: update laboratory: %v", ErrStorage, err)
	}

	resp := response.LaboratoryToResponse(lab)
	return &resp, nil
}

// DisableLaboratory archives the lab and, intentionally in service code
// rather than via schema cascades, its equipment and their timeframes.
// Existing bookings are kept as history.
func (s *laboratoryService) DisableLaboratory(ctx context.Context, laboratoryID string, ownerID uuid.UUID) error {
	lab, err := s.findOwnedLaboratory(ctx, laboratoryID, ownerID)
	if err != nil {
		return err
	}

	equipments, err := s.repo.Equipment.FindByLaboratoryID(ctx, lab.ID)
	if err != nil {
		return fmt.Errorf("%w: list laboratory equipment: %v", ErrStorage, err)
	}

	for _, eq := range equipments {
		if err := s.repo.TimeFrame.DisableByEquipmentID(ctx, eq.ID); err != nil {
			return fmt.Errorf("%w: disable timeframes: %v", ErrStorage, err)
		}
	}

	if err := s.repo.Equipment.DisableByLaboratoryID(ctx, lab.ID); err != nil {
		return fmt.Errorf("%w: disable equipment: %v", ErrStorage, err)
	}

	if err := s.repo.Laboratory.Disable(ctx, lab.ID); err != nil {
		return fmt.Errorf("%w: disable laboratory: %v", ErrStorage, err)
	}

	s.log.Info("Laboratory archived",
		zap.String("laboratory_id", lab.ID.String()),
		zap.Int("equipment_count", len(equipments)),
	)

	return nil
}

// findOwnedLaboratory loads an enabled lab. When ownerID is not uuid.Nil the
// caller must be the owner.
func (s *laboratoryService) findOwnedLaboratory(ctx context.Context, laboratoryID string, ownerID uuid.UUID) (*entity.Laboratory, error) {
	id, err := uuid.Parse(laboratoryID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid laboratory ID %s", ErrValidation, laboratoryID)
	}

	lab, err := s.repo.Laboratory.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%w: find laboratory: %v", ErrStorage, err)
	}
	if lab == nil {
		return nil, fmt.Errorf("%w: laboratory %s", ErrNotFound, laboratoryID)
	}

	if ownerID != uuid.Nil && lab.OwnerID != ownerID {
		return nil, fmt.Errorf("%w: laboratory %s", ErrNotFound, laboratoryID)
	}

	return lab, nil
}
