package request

// BookingListRequest filters booking listings. Date bounds apply to the slot
// start and are half-open: start_date >= StartDate AND start_date < EndDate.
type BookingListRequest struct {
	PaginatedRequest
	EquipmentID string `json:"equipment_id" validate:"omitempty,uuid4"`
	StartDate   string `json:"start_date" validate:"omitempty,datetime=2006-01-02T15:04:05Z07:00"`
	EndDate     string `json:"end_date" validate:"omitempty,datetime=2006-01-02T15:04:05Z07:00"`
}
