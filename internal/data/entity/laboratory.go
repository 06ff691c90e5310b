package entity

import "github.com/google/uuid"

type Laboratory struct {
	Base
	Name        string    `db:"name"`
	Instructor  string    `db:"instructor"`
	University  string    `db:"university"`
	Course      string    `db:"course"`
	Description string    `db:"description"`
	URL         *string   `db:"url"`
	Enabled     bool      `db:"enabled"`
	Visible     bool      `db:"visible"`
	OwnerID     uuid.UUID `db:"owner_id"`
}
