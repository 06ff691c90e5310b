package repository

import (
	"context"
	"fmt"
	"time"

	"lab-booking/internal/data/entity"
	"lab-booking/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

// BookingFilter narrows booking listings. Nil fields are not applied.
// From/To bound the slot start: start_date >= From AND start_date < To.
type BookingFilter struct {
	EquipmentID *uuid.UUID
	From        *time.Time
	To          *time.Time
	Limit       int
	Offset      int
}

type BookingRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error)
	FindByAccessKey(ctx context.Context, accessKey uuid.UUID) (*entity.Booking, error)
	FindAvailable(ctx context.Context, filter BookingFilter) ([]*entity.Booking, error)
	CountAvailable(ctx context.Context, filter BookingFilter) (int64, error)
	FindByReservedBy(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.Booking, error)
	CountByReservedBy(ctx context.Context, userID uuid.UUID) (int64, error)
	FindPublicReserved(ctx context.Context, filter BookingFilter) ([]*entity.Booking, error)

	// Claim is the atomic conditional update backing the reservation step:
	// it succeeds for exactly one caller per booking.
	Claim(ctx context.Context, id, userID uuid.UUID) (bool, error)
	CountFutureReservations(ctx context.Context, equipmentID, userID uuid.UUID, at time.Time) (int64, error)

	ExistsAvailableForEquipment(ctx context.Context, equipmentID uuid.UUID, at time.Time) (bool, error)
	ExistsAvailableForLaboratory(ctx context.Context, laboratoryID uuid.UUID, at time.Time) (bool, error)
}

type bookingRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewBookingRepository(db database.PgxIface, log *zap.Logger) BookingRepository {
	return &bookingRepository{
		db:  db,
		log: log.With(zap.String("repository", "booking")),
	}
}

const bookingColumns = `id, timeframe_id, equipment_id, start_date, end_date, available,
	       public, access_key, password, owner_id, reserved_by, created_at, updated_at`

func (r *bookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
	query := `
		SELECT ` + bookingColumns + `
		FROM bookings
		WHERE id = $1
	`

	return r.queryOne(ctx, query, id)
}

func (r *bookingRepository) FindByAccessKey(ctx context.Context, accessKey uuid.UUID) (*entity.Booking, error) {
	query := `
		SELECT ` + bookingColumns + `
		FROM bookings
		WHERE access_key = $1
	`

	return r.queryOne(ctx, query, accessKey)
}

func (r *bookingRepository) queryOne(ctx context.Context, query string, arg any) (*entity.Booking, error) {
	var b entity.Booking
	err := scanBooking(r.db.QueryRow(ctx, query, arg), &b)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find booking", zap.Error(err))
		return nil, fmt.Errorf("find booking: %w", err)
	}

	return &b, nil
}

func (r *bookingRepository) FindAvailable(ctx context.Context, filter BookingFilter) ([]*entity.Booking, error) {
	query := `
		SELECT ` + bookingColumns + `
		FROM bookings
		WHERE available = TRUE
		  AND ($1::uuid IS NULL OR equipment_id = $1)
		  AND ($2::timestamptz IS NULL OR start_date >= $2)
		  AND ($3::timestamptz IS NULL OR start_date < $3)
		ORDER BY start_date
		LIMIT $4 OFFSET $5
	`

	rows, err := r.db.Query(ctx, query, filter.EquipmentID, filter.From, filter.To, filter.Limit, filter.Offset)
	if err != nil {
		r.log.Error("Failed to find available bookings", zap.Error(err))
		return nil, fmt.Errorf("find available bookings: %w", err)
	}
	defer rows.Close()

	return scanBookings(rows)
}

func (r *bookingRepository) CountAvailable(ctx context.Context, filter BookingFilter) (int64, error) {
	query := `
		SELECT COUNT(*)
		FROM bookings
		WHERE available = TRUE
		  AND ($1::uuid IS NULL OR equipment_id = $1)
		  AND ($2::timestamptz IS NULL OR start_date >= $2)
		  AND ($3::timestamptz IS NULL OR start_date < $3)
	`

	var count int64
	err := r.db.QueryRow(ctx, query, filter.EquipmentID, filter.From, filter.To).Scan(&count)
	if err != nil {
		r.log.Error("Failed to count available bookings", zap.Error(err))
		return 0, fmt.Errorf("count available bookings: %w", err)
	}

	return count, nil
}

func (r *bookingRepository) FindByReservedBy(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.Booking, error) {
	query := `
		SELECT ` + bookingColumns + `
		FROM bookings
		WHERE reserved_by = $1
		ORDER BY start_date
		LIMIT $2 OFFSET $3
	`

	rows, err := r.db.Query(ctx, query, userID, limit, offset)
	if err != nil {
		r.log.Error("Failed to find bookings by reserved_by",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return nil, fmt.Errorf("find bookings reserved by %s: %w", userID.String(), err)
	}
	defer rows.Close()

	return scanBookings(rows)
}

func (r *bookingRepository) CountByReservedBy(ctx context.Context, userID uuid.UUID) (int64, error) {
	query := `SELECT COUNT(*) FROM bookings WHERE reserved_by = $1`

	var count int64
	err := r.db.QueryRow(ctx, query, userID).Scan(&count)
	if err != nil {
		r.log.Error("Failed to count bookings by reserved_by",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return 0, fmt.Errorf("count bookings reserved by %s: %w", userID.String(), err)
	}

	return count, nil
}

// FindPublicReserved lists public slots somebody already claimed, so other
// users can see when the equipment is in use.
func (r *bookingRepository) FindPublicReserved(ctx context.Context, filter BookingFilter) ([]*entity.Booking, error) {
	query := `
		SELECT ` + bookingColumns + `
		FROM bookings
		WHERE public = TRUE
		  AND available = FALSE
		  AND reserved_by IS NOT NULL
		  AND ($1::uuid IS NULL OR equipment_id = $1)
		  AND ($2::timestamptz IS NULL OR start_date >= $2)
		  AND ($3::timestamptz IS NULL OR start_date < $3)
		ORDER BY start_date
		LIMIT $4 OFFSET $5
	`

	rows, err := r.db.Query(ctx, query, filter.EquipmentID, filter.From, filter.To, filter.Limit, filter.Offset)
	if err != nil {
		r.log.Error("Failed to find public reserved bookings", zap.Error(err))
		return nil, fmt.Errorf("find public reserved bookings: %w", err)
	}
	defer rows.Close()

	return scanBookings(rows)
}

func (r *bookingRepository) Claim(ctx context.Context, id, userID uuid.UUID) (bool, error) {
	// Compare-and-set: only one concurrent claimer sees rows affected = 1.
	query := `
		UPDATE bookings
		SET reserved_by = $2, available = FALSE, updated_at = NOW()
		WHERE id = $1 AND reserved_by IS NULL AND available = TRUE
	`

	result, err := r.db.Exec(ctx, query, id, userID)
	if err != nil {
		r.log.Error("Failed to claim booking",
			zap.Error(err),
			zap.String("booking_id", id.String()),
			zap.String("user_id", userID.String()),
		)
		return false, fmt.Errorf("claim booking %s: %w", id.String(), err)
	}

	return result.RowsAffected() == 1, nil
}

func (r *bookingRepository) CountFutureReservations(ctx context.Context, equipmentID, userID uuid.UUID, at time.Time) (int64, error) {
	query := `
		SELECT COUNT(*)
		FROM bookings
		WHERE equipment_id = $1 AND reserved_by = $2 AND end_date > $3
	`

	var count int64
	err := r.db.QueryRow(ctx, query, equipmentID, userID, at).Scan(&count)
	if err != nil {
		r.log.Error("Failed to count future reservations",
			zap.Error(err),
			zap.String("equipment_id", equipmentID.String()),
			zap.String("user_id", userID.String()),
		)
		return 0, fmt.Errorf("count future reservations: %w", err)
	}

	return count, nil
}

// ExistsAvailableForEquipment reports whether the equipment still has an open
// slot in an enabled timeframe extending past `at`.
func (r *bookingRepository) ExistsAvailableForEquipment(ctx context.Context, equipmentID uuid.UUID, at time.Time) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1
			FROM bookings b
			JOIN timeframes tf ON tf.id = b.timeframe_id
			WHERE tf.equipment_id = $1
			  AND tf.enabled = TRUE
			  AND b.available = TRUE
			  AND (tf.end_date::date > $2::date
			       OR (tf.end_date::date = $2::date AND tf.end_hour::time > $2::time))
		)
	`

	var exists bool
	err := r.db.QueryRow(ctx, query, equipmentID, at).Scan(&exists)
	if err != nil {
		r.log.Error("Failed to check equipment availability",
			zap.Error(err),
			zap.String("equipment_id", equipmentID.String()),
		)
		return false, fmt.Errorf("check availability for equipment %s: %w", equipmentID.String(), err)
	}

	return exists, nil
}

func (r *bookingRepository) ExistsAvailableForLaboratory(ctx context.Context, laboratoryID uuid.UUID, at time.Time) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1
			FROM bookings b
			JOIN timeframes tf ON tf.id = b.timeframe_id
			JOIN equipments e ON e.id = tf.equipment_id
			WHERE e.laboratory_id = $1
			  AND e.enabled = TRUE
			  AND tf.enabled = TRUE
			  AND b.available = TRUE
			  AND (tf.end_date::date > $2::date
			       OR (tf.end_date::date = $2::date AND tf.end_hour::time > $2::time))
		)
	`

	var exists bool
	err := r.db.QueryRow(ctx, query, laboratoryID, at).Scan(&exists)
	if err != nil {
		r.log.Error("Failed to check laboratory availability",
			zap.Error(err),
			zap.String("laboratory_id", laboratoryID.String()),
		)
		return false, fmt.Errorf("check availability for laboratory %s: %w", laboratoryID.String(), err)
	}

	return exists, nil
}

func scanBooking(row pgx.Row, b *entity.Booking) error {
	return row.Scan(
		&b.ID,
		&b.TimeFrameID,
		&b.EquipmentID,
		&b.StartDate,
		&b.EndDate,
		&b.Available,
		&b.Public,
		&b.AccessKey,
		&b.Password,
		&b.OwnerID,
		&b.ReservedBy,
		&b.CreatedAt,
		&b.UpdatedAt,
	)
}

func scanBookings(rows pgx.Rows) ([]*entity.Booking, error) {
	var bookings []*entity.Booking
	for rows.Next() {
		var b entity.Booking
		if err := scanBooking(rows, &b); err != nil {
			return nil, fmt.Errorf("scan booking row: %w", err)
		}
		bookings = append(bookings, &b)
	}

	return bookings, nil
}
