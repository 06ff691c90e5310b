package entity

import (
	"time"

	"github.com/google/uuid"
)

// TimeFrame is the generation template for a batch of bookings: every day in
// [StartDate, EndDate] is cut into SlotDuration-minute slots between StartHour
// and EndHour. Once its bookings exist the timeframe is never regenerated.
type TimeFrame struct {
	Base
	EquipmentID  uuid.UUID `db:"equipment_id"`
	StartDate    time.Time `db:"start_date"` // date part only
	EndDate      time.Time `db:"end_date"`   // date part only, inclusive
	StartHour    time.Time `db:"start_hour"` // clock time within a day
	EndHour      time.Time `db:"end_hour"`   // clock time, exclusive
	SlotDuration int       `db:"slot_duration"` // minutes
	Enabled      bool      `db:"enabled"`
	OwnerID      uuid.UUID `db:"owner_id"`
}
