package response

import (
	"time"

	"lab-booking/internal/data/entity"
)

type LaboratoryResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Instructor  string    `json:"instructor"`
	University  string    `json:"university"`
	Course      string    `json:"course"`
	Description string    `json:"description"`
	URL         *string   `json:"url,omitempty"`
	Visible     bool      `json:"visible"`
	OwnerID     string    `json:"owner_id"`
	// Whether the laboratory currently has at least one open future slot.
	// Only filled on the public listing.
	AvailableNow *bool     `json:"available_now,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

func LaboratoryToResponse(lab *entity.Laboratory) LaboratoryResponse {
	return LaboratoryResponse{
		ID:          lab.ID.String(),
		Name:        lab.Name,
		Instructor:  lab.Instructor,
		University:  lab.University,
		Course:      lab.Course,
		Description: lab.Description,
		URL:         lab.URL,
		Visible:     lab.Visible,
		OwnerID:     lab.OwnerID.String(),
		CreatedAt:   lab.CreatedAt,
	}
}
