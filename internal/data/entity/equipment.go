package entity

import "github.com/google/uuid"

type Equipment struct {
	Base
	LaboratoryID uuid.UUID `db:"laboratory_id"`
	Name         string    `db:"name"`
	Description  string    `db:"description"`
	Enabled      bool      `db:"enabled"`
	// Max simultaneous future reservations one user may hold on this equipment.
	BookingsPerUser int       `db:"bookings_per_user"`
	OwnerID         uuid.UUID `db:"owner_id"`
}
