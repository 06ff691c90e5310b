package response

import (
	"time"

	"lab-booking/internal/data/entity"
)

type BookingResponse struct {
	ID          string    `json:"id"`
	TimeFrameID string    `json:"timeframe_id"`
	EquipmentID string    `json:"equipment_id"`
	StartDate   time.Time `json:"start_date"`
	EndDate     time.Time `json:"end_date"`
	Available   bool      `json:"available"`
	Public      bool      `json:"public"`
	AccessKey   string    `json:"access_key"`
	Password    string    `json:"password,omitempty"`
	OwnerID     string    `json:"owner_id"`
	ReservedBy  *string   `json:"reserved_by,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

func BookingToResponse(b *entity.Booking) BookingResponse {
	var reservedBy *string
	if b.ReservedBy != nil {
		s := b.ReservedBy.String()
		reservedBy = &s
	}

	return BookingResponse{
		ID:          b.ID.String(),
		TimeFrameID: b.TimeFrameID.String(),
		EquipmentID: b.EquipmentID.String(),
		StartDate:   b.StartDate,
		EndDate:     b.EndDate,
		Available:   b.Available,
		Public:      b.Public,
		AccessKey:   b.AccessKey.String(),
		Password:    b.Password,
		OwnerID:     b.OwnerID.String(),
		ReservedBy:  reservedBy,
		CreatedAt:   b.CreatedAt,
	}
}

// PublicBookingToResponse hides the slot password. Used on listings visible
// to users other than the owner.
func PublicBookingToResponse(b *entity.Booking) BookingResponse {
	resp := BookingToResponse(b)
	resp.Password = ""
	return resp
}

func BookingsToResponses(bookings []*entity.Booking) []BookingResponse {
	responses := make([]BookingResponse, len(bookings))
	for i, b := range bookings {
		responses[i] = BookingToResponse(b)
	}
	return responses
}

func PublicBookingsToResponses(bookings []*entity.Booking) []BookingResponse {
	responses := make([]BookingResponse, len(bookings))
	for i, b := range bookings {
		responses[i] = PublicBookingToResponse(b)
	}
	return responses
}
