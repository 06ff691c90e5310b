package adaptor

import (
	"errors"
	"net/http"

	"lab-booking/internal/usecase"
	"lab-booking/pkg/utils"

	"go.uber.org/zap"
)

type Handler struct {
	Laboratory *LaboratoryHandler
	Equipment  *EquipmentHandler
	TimeFrame  *TimeFrameHandler
	Booking    *BookingHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Laboratory: NewLaboratoryHandler(service.Laboratory, log),
		Equipment:  NewEquipmentHandler(service.Equipment, service.Booking, log),
		TimeFrame:  NewTimeFrameHandler(service.TimeFrame, log),
		Booking:    NewBookingHandler(service.Booking, log),
	}
}

// handleServiceError maps usecase sentinel errors to HTTP responses.
func handleServiceError(log *zap.Logger, w http.ResponseWriter, err error, operation string) {
	switch {
	case errors.Is(err, usecase.ErrValidation):
		log.Warn(operation+" failed - validation",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseBadRequest(w, err.Error(), nil)

	case errors.Is(err, usecase.ErrNotFound):
		log.Warn(operation+" failed - not found",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseNotFound(w, err.Error())

	case errors.Is(err, usecase.ErrConflict):
		log.Warn(operation+" failed - conflict",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseConflict(w, err.Error())

	default:
		log.Error(operation+" failed",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
