package adaptor

import (
	"encoding/json"
	"net/http"

	"lab-booking/internal/dto/request"
	"lab-booking/internal/usecase"
	"lab-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type TimeFrameHandler struct {
	service usecase.TimeFrameService
	log     *zap.Logger
}

func NewTimeFrameHandler(service usecase.TimeFrameService, log *zap.Logger) *TimeFrameHandler {
	return &TimeFrameHandler{
		service: service,
		log:     log.With(zap.String("handler", "timeframe")),
	}
}

// CreateTimeFrame handles POST /api/timeframes (protected). Creating a
// timeframe also generates its booking slots.
func (h *TimeFrameHandler) CreateTimeFrame(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	var req request.CreateTimeFrameRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	tf, err := h.service.CreateTimeFrame(r.Context(), userID, &req)
	if err != nil {
		handleServiceError(h.log, w, err, "create timeframe")
		return
	}

	utils.ResponseCreated(w, "success", tf)
}

// GetTimeFramesByEquipment handles GET /api/equipment/{id}/timeframes (protected)
func (h *TimeFrameHandler) GetTimeFramesByEquipment(w http.ResponseWriter, r *http.Request) {
	equipmentID := chi.URLParam(r, "id")
	if equipmentID == "" {
		utils.ResponseBadRequest(w, "Equipment ID is required", nil)
		return
	}

	timeframes, err := h.service.GetTimeFramesByEquipment(r.Context(), equipmentID)
	if err != nil {
		handleServiceError(h.log, w, err, "get timeframes")
		return
	}

	utils.ResponseSuccess(w, "success", timeframes)
}

// GetTimeFrameByID handles GET /api/timeframes/{id} (protected)
func (h *TimeFrameHandler) GetTimeFrameByID(w http.ResponseWriter, r *http.Request) {
	timeframeID := chi.URLParam(r, "id")
	if timeframeID == "" {
		utils.ResponseBadRequest(w, "Timeframe ID is required", nil)
		return
	}

	tf, err := h.service.GetTimeFrameByID(r.Context(), timeframeID)
	if err != nil {
		handleServiceError(h.log, w, err, "get timeframe")
		return
	}

	utils.ResponseSuccess(w, "success", tf)
}

// DisableTimeFrame handles DELETE /api/timeframes/{id} (protected, owner only)
func (h *TimeFrameHandler) DisableTimeFrame(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	timeframeID := chi.URLParam(r, "id")
	if timeframeID == "" {
		utils.ResponseBadRequest(w, "Timeframe ID is required", nil)
		return
	}

	if err := h.service.DisableTimeFrame(r.Context(), timeframeID, userID); err != nil {
		handleServiceError(h.log, w, err, "disable timeframe")
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}
