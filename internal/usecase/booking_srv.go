package usecase

import (
	"context"
	"crypto/subtle"
	"fmt"
	"time"

	"lab-booking/internal/data/repository"
	"lab-booking/internal/dto/request"
	"lab-booking/internal/dto/response"
	"lab-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type BookingService interface {
	ListAvailable(ctx context.Context, req *request.BookingListRequest) (*response.PaginatedResponse[response.BookingResponse], error)
	GetUserBookings(ctx context.Context, userID uuid.UUID, req *request.PaginatedRequest) (*response.PaginatedResponse[response.BookingResponse], error)
	ListPublicReserved(ctx context.Context, req *request.BookingListRequest) ([]response.BookingResponse, error)

	// ResolveAccess maps a shared link (access key + optional password) to its
	// booking. Unknown key, wrong password and inactive window all yield the
	// same ErrNotFound.
	ResolveAccess(ctx context.Context, accessKey, password string) (*response.BookingResponse, error)

	// Claim reserves a slot for the user. Exactly one of any set of
	// concurrent claimers wins; the rest get ErrConflict.
	Claim(ctx context.Context, bookingID string, userID uuid.UUID) (*response.BookingResponse, error)

	IsEquipmentAvailable(ctx context.Context, equipmentID string) (bool, error)
}

type bookingService struct {
	repo *repository.Repository
	now  Clock
	log  *zap.Logger
}

func NewBookingService(repo *repository.Repository, clock Clock, log *zap.Logger) BookingService {
	return &bookingService{
		repo: repo,
		now:  clock,
		log:  log.With(zap.String("service", "booking")),
	}
}

func (s *bookingService) ListAvailable(ctx context.Context, req *request.BookingListRequest) (*response.PaginatedResponse[response.BookingResponse], error) {
	filter, err := s.buildFilter(req)
	if err != nil {
		return nil, err
	}

	bookings, err := s.repo.Booking.FindAvailable(ctx, filter)
	if err != nil {
		s.log.Error("Failed to list available bookings", zap.Error(err))
		return nil, fmt.Errorf("%w: list available bookings: %v", ErrStorage, err)
	}

	total, err := s.repo.Booking.CountAvailable(ctx, filter)
	if err != nil {
		s.log.Error("Failed to count available bookings", zap.Error(err))
		return nil, fmt.Errorf("%w: count available bookings: %v", ErrStorage, err)
	}

	return response.NewPaginatedResponse(response.BookingsToResponses(bookings), req.Page, req.PerPage, total), nil
}

func (s *bookingService) GetUserBookings(ctx context.Context, userID uuid.UUID, req *request.PaginatedRequest) (*response.PaginatedResponse[response.BookingResponse], error) {
	bookings, err := s.repo.Booking.FindByReservedBy(ctx, userID, req.Limit(), req.Offset())
	if err != nil {
		s.log.Error("Failed to get user bookings",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return nil, fmt.Errorf("%w: get user bookings: %v", ErrStorage, err)
	}

	total, err := s.repo.Booking.CountByReservedBy(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%w: count user bookings: %v", ErrStorage, err)
	}

	return response.NewPaginatedResponse(response.BookingsToResponses(bookings), req.Page, req.PerPage, total), nil
}

func (s *bookingService) ListPublicReserved(ctx context.Context, req *request.BookingListRequest) ([]response.BookingResponse, error) {
	filter, err := s.buildFilter(req)
	if err != nil {
		return nil, err
	}

	bookings, err := s.repo.Booking.FindPublicReserved(ctx, filter)
	if err != nil {
		s.log.Error("Failed to list public reserved bookings", zap.Error(err))
		return nil, fmt.Errorf("%w: list public bookings: %v", ErrStorage, err)
	}

	return response.PublicBookingsToResponses(bookings), nil
}

func (s *bookingService) ResolveAccess(ctx context.Context, accessKey, password string) (*response.BookingResponse, error) {
	key, err := uuid.Parse(accessKey)
	if err != nil {
		// Malformed keys look exactly like unknown ones.
		return nil, fmt.Errorf("%w: booking", ErrNotFound)
	}

	booking, err := s.repo.Booking.FindByAccessKey(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("%w: resolve access: %v", ErrStorage, err)
	}
	if booking == nil {
		return nil, fmt.Errorf("%w: booking", ErrNotFound)
	}

	if !booking.Public {
		if subtle.ConstantTimeCompare([]byte(booking.Password), []byte(password)) != 1 {
			s.log.Warn("Access resolution failed for private booking",
				zap.String("booking_id", booking.ID.String()),
			)
			return nil, fmt.Errorf("%w: booking", ErrNotFound)
		}
	}

	// Only a currently running slot is resolvable.
	now := s.now()
	if now.Before(booking.StartDate) || !now.Before(booking.EndDate) {
		return nil, fmt.Errorf("%w: booking", ErrNotFound)
	}

	resp := response.BookingToResponse(booking)
	return &resp, nil
}

func (s *bookingService) Claim(ctx context.Context, bookingID string, userID uuid.UUID) (*response.BookingResponse, error) {
	id, err := uuid.Parse(bookingID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid booking ID %s", ErrValidation, bookingID)
	}

	booking, err := s.repo.Booking.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%w: find booking: %v", ErrStorage, err)
	}
	if booking == nil {
		return nil, fmt.Errorf("%w: booking %s", ErrNotFound, bookingID)
	}

	// Per-equipment reservation cap. The equipment may have been disabled
	// since generation; the cap then falls back to the default.
	maxPerUser := defaultBookingsPerUser
	eq, err := s.repo.Equipment.FindByID(ctx, booking.EquipmentID)
	if err != nil {
		return nil, fmt.Errorf("%w: find equipment: %v", ErrStorage, err)
	}
	if eq != nil {
		maxPerUser = eq.BookingsPerUser
	}

	active, err := s.repo.Booking.CountFutureReservations(ctx, booking.EquipmentID, userID, s.now())
	if err != nil {
		return nil, fmt.Errorf("%w: count reservations: %v", ErrStorage, err)
	}
	if active >= int64(maxPerUser) {
		return nil, fmt.Errorf("%w: reservation limit of %d reached for this equipment", ErrValidation, maxPerUser)
	}

	claimed, err := s.repo.Booking.Claim(ctx, id, userID)
	if err != nil {
		return nil, fmt.Errorf("%w: claim booking: %v", ErrStorage, err)
	}
	if !claimed {
		// Lost the race, or the slot was never claimable.
		s.log.Info("Claim lost",
			zap.String("booking_id", bookingID),
			zap.String("user_id", userID.String()),
		)
		return nil, fmt.Errorf("%w: booking %s already reserved", ErrConflict, bookingID)
	}

	booking, err = s.repo.Booking.FindByID(ctx, id)
	if err != nil || booking == nil {
		return nil, fmt.Errorf("%w: reload booking: %v", ErrStorage, err)
	}

	s.log.Info("Booking claimed",
		zap.String("booking_id", bookingID),
		zap.String("user_id", userID.String()),
		zap.Time("start_date", booking.StartDate),
	)

	resp := response.BookingToResponse(booking)
	return &resp, nil
}

func (s *bookingService) IsEquipmentAvailable(ctx context.Context, equipmentID string) (bool, error) {
	id, err := uuid.Parse(equipmentID)
	if err != nil {
		return false, fmt.Errorf("%w: invalid equipment ID %s", ErrValidation, equipmentID)
	}

	available, err := s.repo.Booking.ExistsAvailableForEquipment(ctx, id, s.now())
	if err != nil {
		s.log.Error("Failed to evaluate equipment availability",
			zap.Error(err),
			zap.String("equipment_id", equipmentID),
		)
		return false, fmt.Errorf("%w: evaluate availability: %v", ErrStorage, err)
	}

	return available, nil
}

func (s *bookingService) buildFilter(req *request.BookingListRequest) (repository.BookingFilter, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return repository.BookingFilter{}, fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	filter := repository.BookingFilter{
		Limit:  req.Limit(),
		Offset: req.Offset(),
	}

	if req.EquipmentID != "" {
		id, err := uuid.Parse(req.EquipmentID)
		if err != nil {
			return filter, fmt.Errorf("%w: invalid equipment ID %s", ErrValidation, req.EquipmentID)
		}
		filter.EquipmentID = &id
	}

	if req.StartDate != "" {
		from, err := time.Parse(time.RFC3339, req.StartDate)
		if err != nil {
			return filter, fmt.Errorf("%w: invalid start date %s", ErrValidation, req.StartDate)
		}
		filter.From = &from
	}

	if req.EndDate != "" {
		to, err := time.Parse(time.RFC3339, req.EndDate)
		if err != nil {
			return filter, fmt.Errorf("%w: invalid end date %s", ErrValidation, req.EndDate)
		}
		filter.To = &to
	}

	return filter, nil
}
