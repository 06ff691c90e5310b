package request

type CreateEquipmentRequest struct {
	LaboratoryID string `json:"laboratory_id" validate:"required,uuid4"`
	Name         string `json:"name" validate:"required,max=255"`
	Description  string `json:"description" validate:"max=500"`
	// Zero means "use the default cap".
	BookingsPerUser int `json:"bookings_per_user" validate:"omitempty,min=1"`
}

type UpdateEquipmentRequest struct {
	Name            string `json:"name" validate:"required,max=255"`
	Description     string `json:"description" validate:"max=500"`
	BookingsPerUser int    `json:"bookings_per_user" validate:"omitempty,min=1"`
}
