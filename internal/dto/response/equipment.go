package response

import (
	"time"

	"lab-booking/internal/data/entity"
)

type EquipmentResponse struct {
	ID              string    `json:"id"`
	LaboratoryID    string    `json:"laboratory_id"`
	Name            string    `json:"name"`
	Description     string    `json:"description"`
	BookingsPerUser int       `json:"bookings_per_user"`
	OwnerID         string    `json:"owner_id"`
	CreatedAt       time.Time `json:"created_at"`
}

type EquipmentAvailabilityResponse struct {
	EquipmentID string `json:"equipment_id"`
	Available   bool   `json:"available"`
}

func EquipmentToResponse(eq *entity.Equipment) EquipmentResponse {
	return EquipmentResponse{
		ID:              eq.ID.String(),
		LaboratoryID:    eq.LaboratoryID.String(),
		Name:            eq.Name,
		Description:     eq.Description,
		BookingsPerUser: eq.BookingsPerUser,
		OwnerID:         eq.OwnerID.String(),
		CreatedAt:       eq.CreatedAt,
	}
}
