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

type LaboratoryRepository interface {
	Create(ctx context.Context, lab *entity.Laboratory) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Laboratory, error)
	FindAll(ctx context.Context, ownerID *uuid.UUID, visible *bool) ([]*entity.Laboratory, error)
	FindVisible(ctx context.Context) ([]*entity.Laboratory, error)
	Update(ctx context.Context, lab *entity.Laboratory) error
	Disable(ctx context.Context, id uuid.UUID) error
}

type laboratoryRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewLaboratoryRepository(db database.PgxIface, log *zap.Logger) LaboratoryRepository {
	return &laboratoryRepository{
		db:  db,
		log: log.With(zap.String("repository", "laboratory")),
	}
}

const laboratoryColumns = `id, name, instructor, university, course, description, url,
	       enabled, visible, owner_id, created_at, updated_at`

func (r *laboratoryRepository) Create(ctx context.Context, lab *entity.Laboratory) error {
	query := `
		INSERT INTO laboratories (id, name, instructor, university, course, description, url,
		                          enabled, visible, owner_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`

	_, err := r.db.Exec(ctx, query,
		lab.ID,
		lab.Name,
		lab.Instructor,
		lab.University,
		lab.Course,
		lab.Description,
		lab.URL,
		lab.Enabled,
		lab.Visible,
		lab.OwnerID,
		lab.CreatedAt,
		lab.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create laboratory",
			zap.Error(err),
			zap.String("name", lab.Name),
		)
		return fmt.Errorf("create laboratory %s: %w", lab.Name, err)
	}

	return nil
}

func (r *laboratoryRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Laboratory, error) {
	query := `
		SELECT ` + laboratoryColumns + `
		FROM laboratories
		WHERE id = $1 AND enabled = TRUE
	`

	var lab entity.Laboratory
	err := r.db.QueryRow(ctx, query, id).Scan(
		&lab.ID,
		&lab.Name,
		&lab.Instructor,
		&lab.University,
		&lab.Course,
		&lab.Description,
		&lab.URL,
		&lab.Enabled,
		&lab.Visible,
		&lab.OwnerID,
		&lab.CreatedAt,
		&lab.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find laboratory by ID",
			zap.Error(err),
			zap.String("laboratory_id", id.String()),
		)
		return nil, fmt.Errorf("find laboratory by ID %s: %w", id.String(), err)
	}

	return &lab, nil
}

func (r *laboratoryRepository) FindAll(ctx context.Context, ownerID *uuid.UUID, visible *bool) ([]*entity.Laboratory, error) {
	query := `
		SELECT ` + laboratoryColumns + `
		FROM laboratories
		WHERE enabled = TRUE
		  AND ($1::uuid IS NULL OR owner_id = $1)
		  AND ($2::boolean IS NULL OR visible = $2)
		ORDER BY name
	`

	rows, err := r.db.Query(ctx, query, ownerID, visible)
	if err != nil {
		r.log.Error("Failed to find laboratories", zap.Error(err))
		return nil, fmt.Errorf("find laboratories: %w", err)
	}
	defer rows.Close()

	return scanLaboratories(rows)
}

func (r *laboratoryRepository) FindVisible(ctx context.Context) ([]*entity.Laboratory, error) {
	query := `
		SELECT ` + laboratoryColumns + `
		FROM laboratories
		WHERE enabled = TRUE AND visible = TRUE
		ORDER BY name
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to find visible laboratories", zap.Error(err))
		return nil, fmt.Errorf("find visible laboratories: %w", err)
	}
	defer rows.Close()

	return scanLaboratories(rows)
}

func (r *laboratoryRepository) Update(ctx context.Context, lab *entity.Laboratory) error {
	query := `
		UPDATE laboratories
		SET name = $2, instructor = $3, university = $4, course = $5,
		    description = $6, url = $7, visible = $8, updated_at = $9
		WHERE id = $1 AND enabled = TRUE
	`

	result, err := r.db.Exec(ctx, query,
		lab.ID,
		lab.Name,
		lab.Instructor,
		lab.University,
		lab.Course,
		lab.Description,
		lab.URL,
		lab.Visible,
		lab.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to update laboratory",
			zap.Error(err),
			zap.String("laboratory_id", lab.ID.String()),
		)
		return fmt.Errorf("update laboratory %s: %w", lab.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("laboratory %s not found", lab.ID.String())
	}

	return nil
}

func (r *laboratoryRepository) Disable(ctx context.Context, id uuid.UUID) error {
	query := `UPDATE laboratories SET enabled = FALSE, updated_at = NOW() WHERE id = $1 AND enabled = TRUE`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to disable laboratory",
			zap.Error(err),
			zap.String("laboratory_id", id.String()),
		)
		return fmt.Errorf("disable laboratory %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("laboratory %s not found", id.String())
	}

	r.log.Info("Laboratory disabled", zap.String("laboratory_id", id.String()))
	return nil
}

func scanLaboratories(rows pgx.Rows) ([]*entity.Laboratory, error) {
	var labs []*entity.Laboratory
	for rows.Next() {
		var lab entity.Laboratory
		err := rows.Scan(
			&lab.ID,
			&lab.Name,
			&lab.Instructor,
			&lab.University,
			&lab.Course,
			&lab.Description,
			&lab.URL,
			&lab.Enabled,
			&lab.Visible,
			&lab.OwnerID,
			&lab.CreatedAt,
			&lab.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan laboratory row: %w", err)
		}
		labs = append(labs, &lab)
	}

	return labs, nil
}
