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

type TimeFrameRepository interface {
	// CreateWithBookings persists the timeframe and its generated bookings in
	// one transaction. Either everything lands or nothing does.
	CreateWithBookings(ctx context.Context, tf *entity.TimeFrame, bookings []*entity.Booking) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.TimeFrame, error)
	FindByEquipmentID(ctx context.Context, equipmentID uuid.UUID) ([]*entity.TimeFrame, error)
	Disable(ctx context.Context, id uuid.UUID) error
	DisableByEquipmentID(ctx context.Context, equipmentID uuid.UUID) error
	DisableExpired(ctx context.Context, at time.Time) (int64, error)
}

type timeframeRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewTimeFrameRepository(db database.PgxIface, log *zap.Logger) TimeFrameRepository {
	return &timeframeRepository{
		db:  db,
		log: log.With(zap.String("repository", "timeframe")),
	}
}

func (r *timeframeRepository) CreateWithBookings(ctx context.Context, tf *entity.TimeFrame, bookings []*entity.Booking) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		r.log.Error("Failed to begin transaction", zap.Error(err))
		return fmt.Errorf("begin timeframe transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	tfQuery := `
		INSERT INTO timeframes (id, equipment_id, start_date, end_date, start_hour, end_hour,
		                        slot_duration, enabled, owner_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`

	_, err = tx.Exec(ctx, tfQuery,
		tf.ID,
		tf.EquipmentID,
		tf.StartDate,
		tf.EndDate,
		tf.StartHour,
		tf.EndHour,
		tf.SlotDuration,
		tf.Enabled,
		tf.OwnerID,
		tf.CreatedAt,
		tf.UpdatedAt,
	)
	if err != nil {
		r.log.Error("Failed to create timeframe",
			zap.Error(err),
			zap.String("equipment_id", tf.EquipmentID.String()),
		)
		return fmt.Errorf("create timeframe for equipment %s: %w", tf.EquipmentID.String(), err)
	}

	bookingQuery := `
		INSERT INTO bookings (id, timeframe_id, equipment_id, start_date, end_date, available,
		                      public, access_key, password, owner_id, reserved_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
	`

	for _, b := range bookings {
		_, err = tx.Exec(ctx, bookingQuery,
			b.ID,
			b.TimeFrameID,
			b.EquipmentID,
			b.StartDate,
			b.EndDate,
			b.Available,
			b.Public,
			b.AccessKey,
			b.Password,
			b.OwnerID,
			b.ReservedBy,
			b.CreatedAt,
			b.UpdatedAt,
		)
		if err != nil {
			r.log.Error("Failed to create booking slot, rolling back generation",
				zap.Error(err),
				zap.String("timeframe_id", tf.ID.String()),
				zap.Time("slot_start", b.StartDate),
			)
			return fmt.Errorf("create booking slot for timeframe %s: %w", tf.ID.String(), err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		r.log.Error("Failed to commit timeframe generation",
			zap.Error(err),
			zap.String("timeframe_id", tf.ID.String()),
		)
		return fmt.Errorf("commit timeframe %s: %w", tf.ID.String(), err)
	}

	r.log.Info("Timeframe created with bookings",
		zap.String("timeframe_id", tf.ID.String()),
		zap.String("equipment_id", tf.EquipmentID.String()),
		zap.Int("bookings", len(bookings)),
	)
	return nil
}

func (r *timeframeRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.TimeFrame, error) {
	query := `
		SELECT id, equipment_id, start_date, end_date, start_hour, end_hour,
		       slot_duration, enabled, owner_id, created_at, updated_at
		FROM timeframes
		WHERE id = $1
	`

	var tf entity.TimeFrame
	err := r.db.QueryRow(ctx, query, id).Scan(
		&tf.ID,
		&tf.EquipmentID,
		&tf.StartDate,
		&tf.EndDate,
		&tf.StartHour,
		&tf.EndHour,
		&tf.SlotDuration,
		&tf.Enabled,
		&tf.OwnerID,
		&tf.CreatedAt,
		&tf.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find timeframe by ID",
			zap.Error(err),
			zap.String("timeframe_id", id.String()),
		)
		return nil, fmt.Errorf("find timeframe by ID %s: %w", id.String(), err)
	}

	return &tf, nil
}

func (r *timeframeRepository) FindByEquipmentID(ctx context.Context, equipmentID uuid.UUID) ([]*entity.TimeFrame, error) {
	query := `
		SELECT id, equipment_id, start_date, end_date, start_hour, end_hour,
		       slot_duration, enabled, owner_id, created_at, updated_at
		FROM timeframes
		WHERE equipment_id = $1
		ORDER BY start_date
	`

	rows, err := r.db.Query(ctx, query, equipmentID)
	if err != nil {
		r.log.Error("Failed to find timeframes by equipment ID",
			zap.Error(err),
			zap.String("equipment_id", equipmentID.String()),
		)
		return nil, fmt.Errorf("find timeframes by equipment ID %s: %w", equipmentID.String(), err)
	}
	defer rows.Close()

	var timeframes []*entity.TimeFrame
	for rows.Next() {
		var tf entity.TimeFrame
		err := rows.Scan(
			&tf.ID,
			&tf.EquipmentID,
			&tf.StartDate,
			&tf.EndDate,
			&tf.StartHour,
			&tf.EndHour,
			&tf.SlotDuration,
			&tf.Enabled,
			&tf.OwnerID,
			&tf.CreatedAt,
			&tf.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan timeframe row: %w", err)
		}
		timeframes = append(timeframes, &tf)
	}

	return timeframes, nil
}

func (r *timeframeRepository) Disable(ctx context.Context, id uuid.UUID) error {
	query := `UPDATE timeframes SET enabled = FALSE, updated_at = NOW() WHERE id = $1 AND enabled = TRUE`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to disable timeframe",
			zap.Error(err),
			zap.String("timeframe_id", id.String()),
		)
		return fmt.Errorf("disable timeframe %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("timeframe %s not found", id.String())
	}

	r.log.Info("Timeframe disabled", zap.String("timeframe_id", id.String()))
	return nil
}

func (r *timeframeRepository) DisableByEquipmentID(ctx context.Context, equipmentID uuid.UUID) error {
	query := `UPDATE timeframes SET enabled = FALSE, updated_at = NOW() WHERE equipment_id = $1 AND enabled = TRUE`

	result, err := r.db.Exec(ctx, query, equipmentID)
	if err != nil {
		r.log.Error("Failed to disable timeframes for equipment",
			zap.Error(err),
			zap.String("equipment_id", equipmentID.String()),
		)
		return fmt.Errorf("disable timeframes for equipment %s: %w", equipmentID.String(), err)
	}

	r.log.Info("Timeframes disabled for equipment",
		zap.String("equipment_id", equipmentID.String()),
		zap.Int64("count", result.RowsAffected()),
	)
	return nil
}

// DisableExpired disables timeframes whose whole window lies behind `at`.
// Called by the maintenance sweep; existing bookings are left untouched.
func (r *timeframeRepository) DisableExpired(ctx context.Context, at time.Time) (int64, error) {
	query := `
		UPDATE timeframes
		SET enabled = FALSE, updated_at = NOW()
		WHERE enabled = TRUE
		  AND (end_date::date < $1::date
		       OR (end_date::date = $1::date AND end_hour::time <= $1::time))
	`

	result, err := r.db.Exec(ctx, query, at)
	if err != nil {
		r.log.Error("Failed to disable expired timeframes", zap.Error(err))
		return 0, fmt.Errorf("disable expired timeframes: %w", err)
	}

	return result.RowsAffected(), nil
}
