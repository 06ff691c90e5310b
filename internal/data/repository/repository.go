package repository

import (
	"lab-booking/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	Session    SessionRepository
	Laboratory LaboratoryRepository
	Equipment  EquipmentRepository
	TimeFrame  TimeFrameRepository
	Booking    BookingRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		Session:    NewSessionRepository(db, log),
		Laboratory: NewLaboratoryRepository(db, log),
		Equipment:  NewEquipmentRepository(db, log),
		TimeFrame:  NewTimeFrameRepository(db, log),
		Booking:    NewBookingRepository(db, log),
	}
}
