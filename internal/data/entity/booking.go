package entity

import (
	"time"

	"github.com/google/uuid"
)

// Booking is one reservable slot. Available flips true->false exactly once,
// when ReservedBy is set; neither transition ever reverts.
type Booking struct {
	Base
	TimeFrameID uuid.UUID  `db:"timeframe_id"`
	EquipmentID uuid.UUID  `db:"equipment_id"`
	StartDate   time.Time  `db:"start_date"`
	EndDate     time.Time  `db:"end_date"`
	Available   bool       `db:"available"`
	Public      bool       `db:"public"`
	AccessKey   uuid.UUID  `db:"access_key"`
	Password    string     `db:"password"`
	OwnerID     uuid.UUID  `db:"owner_id"`
	ReservedBy  *uuid.UUID `db:"reserved_by"`
}
