package response

import (
	"time"

	"lab-booking/internal/data/entity"
)

type TimeFrameResponse struct {
	ID           string    `json:"id"`
	EquipmentID  string    `json:"equipment_id"`
	StartDate    string    `json:"start_date"`
	EndDate      string    `json:"end_date"`
	StartHour    string    `json:"start_hour"`
	EndHour      string    `json:"end_hour"`
	SlotDuration int       `json:"slot_duration"`
	Enabled      bool      `json:"enabled"`
	OwnerID      string    `json:"owner_id"`
	CreatedAt    time.Time `json:"created_at"`
}

// TimeFrameGenerationResponse is returned on creation, with the number of
// booking slots the timeframe produced.
type TimeFrameGenerationResponse struct {
	TimeFrameResponse
	GeneratedSlots int `json:"generated_slots"`
}

func TimeFrameToResponse(tf *entity.TimeFrame) TimeFrameResponse {
	return TimeFrameResponse{
		ID:           tf.ID.String(),
		EquipmentID:  tf.EquipmentID.String(),
		StartDate:    tf.StartDate.Format("2006-01-02"),
		EndDate:      tf.EndDate.Format("2006-01-02"),
		StartHour:    tf.StartHour.Format("15:04"),
		EndHour:      tf.EndHour.Format("15:04"),
		SlotDuration: tf.SlotDuration,
		Enabled:      tf.Enabled,
		OwnerID:      tf.OwnerID.String(),
		CreatedAt:    tf.CreatedAt,
	}
}
