package request

// CreateTimeFrameRequest triggers slot generation: every day in
// [StartDate, EndDate] is cut into SlotDuration-minute bookings between
// StartHour and EndHour.
type CreateTimeFrameRequest struct {
	EquipmentID  string `json:"equipment_id" validate:"required,uuid4"`
	StartDate    string `json:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate      string `json:"end_date" validate:"required,datetime=2006-01-02"`
	StartHour    string `json:"start_hour" validate:"required,datetime=15:04"`
	EndHour      string `json:"end_hour" validate:"required,datetime=15:04"`
	SlotDuration int    `json:"slot_duration" validate:"required,gt=0"`
	// Visibility class stamped on every generated booking.
	Public bool `json:"public"`
}
