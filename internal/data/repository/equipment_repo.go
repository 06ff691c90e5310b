package repository

import (
	"context"
	"fmt"

	"lab-booking/internal/data/entity"
	"lab-booking/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type EquipmentRepository interface {
	Create(ctx context.Context, eq *entity.Equipment) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Equipment, error)
	FindByLaboratoryID(ctx context.Context, laboratoryID uuid.UUID) ([]*entity.Equipment, error)
	Update(ctx context.Context, eq *entity.Equipment) error
	Disable(ctx context.Context, id uuid.UUID) error
	DisableByLaboratoryID(ctx context.Context, laboratoryID uuid.UUID) error
}

type equipmentRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewEquipmentRepository(db database.PgxIface, log *zap.Logger) EquipmentRepository {
	return &equipmentRepository{
		db:  db,
		log: log.With(zap.String("repository", "equipment")),
	}
}

func (r *equipmentRepository) Create(ctx context.Context, eq *entity.Equipment) error {
	query := `
		INSERT INTO equipments (id, laboratory_id, name, description, enabled,
		                        bookings_per_user, owner_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err := r.db.Exec(ctx, query,
		eq.ID,
		eq.LaboratoryID,
		eq.Name,
		eq.Description,
		eq.Enabled,
		eq.BookingsPerUser,
		eq.OwnerID,
		eq.CreatedAt,
		eq.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create equipment",
			zap.Error(err),
			zap.String("name", eq.Name),
			zap.String("laboratory_id", eq.LaboratoryID.String()),
		)
		return fmt.Errorf("create equipment %s: %w", eq.Name, err)
	}

	return nil
}

func (r *equipmentRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Equipment, error) {
	query := `
		SELECT id, laboratory_id, name, description, enabled, bookings_per_user,
		       owner_id, created_at, updated_at
		FROM equipments
		WHERE id = $1 AND enabled = TRUE
	`

	var eq entity.Equipment
	err := r.db.QueryRow(ctx, query, id).Scan(
		&eq.ID,
		&eq.LaboratoryID,
		&eq.Name,
		&eq.Description,
		&eq.Enabled,
		&eq.BookingsPerUser,
		&eq.OwnerID,
		&eq.CreatedAt,
		&eq.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find equipment by ID",
			zap.Error(err),
			zap.String("equipment_id", id.String()),
		)
		return nil, fmt.Errorf("find equipment by ID %s: %w", id.String(), err)
	}

	return &eq, nil
}

func (r *equipmentRepository) FindByLaboratoryID(ctx context.Context, laboratoryID uuid.UUID) ([]*entity.Equipment, error) {
	query := `
		SELECT id, laboratory_id, name, description, enabled, bookings_per_user,
		       owner_id, created_at, updated_at
		FROM equipments
		WHERE laboratory_id = $1 AND enabled = TRUE
		ORDER BY name
	`

	rows, err := r.db.Query(ctx, query, laboratoryID)
	if err != nil {
		r.log.Error("Failed to find equipment by laboratory ID",
			zap.Error(err),
			zap.String("laboratory_id", laboratoryID.String()),
		)
		return nil, fmt.Errorf("find equipment by laboratory ID %s: %w", laboratoryID.String(), err)
	}
	defer rows.Close()

	var equipments []*entity.Equipment
	for rows.Next() {
		var eq entity.Equipment
		err := rows.Scan(
			&eq.ID,
			&eq.LaboratoryID,
			&eq.Name,
			&eq.Description,
			&eq.Enabled,
			&eq.BookingsPerUser,
			&eq.OwnerID,
			&eq.CreatedAt,
			&eq.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan equipment row: %w", err)
		}
		equipments = append(equipments, &eq)
	}

	return equipments, nil
}

func (r *equipmentRepository) Update(ctx context.Context, eq *entity.Equipment) error {
	query := `
		UPDATE equipments
		SET name = $2, description = $3, bookings_per_user = $4, updated_at = $5
		WHERE id = $1 AND enabled = TRUE
	`

	result, err := r.db.Exec(ctx, query,
		eq.ID,
		eq.Name,
		eq.Description,
		eq.BookingsPerUser,
		eq.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to update equipment",
			zap.Error(err),
			zap.String("equipment_id", eq.ID.String()),
		)
		return fmt.Errorf("update equipment %s: %w", eq.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("equipment %s not found", eq.ID.String())
	}

	return nil
}

func (r *equipmentRepository) Disable(ctx context.Context, id uuid.UUID) error {
	query := `UPDATE equipments SET enabled = FALSE, updated_at = NOW() WHERE id = $1 AND enabled = TRUE`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to disable equipment",
			zap.Error(err),
			zap.String("equipment_id", id.String()),
		)
		return fmt.Errorf("disable equipment %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("equipment %s not found", id.String())
	}

	r.log.Info("Equipment disabled", zap.String("equipment_id", id.String()))
	return nil
}

func (r *equipmentRepository) DisableByLaboratoryID(ctx context.Context, laboratoryID uuid.UUID) error {
	query := `UPDATE equipments SET enabled = FALSE, updated_at = NOW() WHERE laboratory_id = $1 AND enabled = TRUE`

	result, err := r.db.Exec(ctx, query, laboratoryID)
	if err != nil {
		r.log.Error("Failed to disable equipment for laboratory",
			zap.Error(err),
			zap.String("laboratory_id", laboratoryID.String()),
		)
		return fmt.Errorf("disable equipment for laboratory %s: %w", laboratoryID.String(), err)
	}

	r.log.Info("Equipment disabled for laboratory",
		zap.String("laboratory_id", laboratoryID.String()),
		zap.Int64("count", result.RowsAffected()),
	)
	return nil
}
