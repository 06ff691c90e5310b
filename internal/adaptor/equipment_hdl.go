package adaptor

import (
	"encoding/json"
	"net/http"

	"lab-booking/internal/dto/request"
	"lab-booking/internal/dto/response"
	"lab-booking/internal/usecase"
	"lab-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type EquipmentHandler struct {
	service usecase.EquipmentService
	booking usecase.BookingService
	log     *zap.Logger
}

func NewEquipmentHandler(service usecase.EquipmentService, booking usecase.BookingService, log *zap.Logger) *EquipmentHandler {
	return &EquipmentHandler{
		service: service,
		booking: booking,
		log:     log.With(zap.String("handler", "equipment")),
	}
}

// CreateEquipment handles POST /api/equipment (protected)
func (h *EquipmentHandler) CreateEquipment(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	var req request.CreateEquipmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	eq, err := h.service.CreateEquipment(r.Context(), userID, &req)
	if err != nil {
		handleServiceError(h.log, w, err, "create equipment")
		return
	}

	utils.ResponseCreated(w, "success", eq)
}

// GetEquipmentByLaboratory handles GET /api/laboratories/{id}/equipment (protected)
func (h *EquipmentHandler) GetEquipmentByLaboratory(w http.ResponseWriter, r *http.Request) {
	laboratoryID := chi.URLParam(r, "id")
	if laboratoryID == "" {
		utils.ResponseBadRequest(w, "Laboratory ID is required", nil)
		return
	}

	equipments, err := h.service.GetEquipmentByLaboratory(r.Context(), laboratoryID)
	if err != nil {
		handleServiceError(h.log, w, err, "get equipment by laboratory")
		return
	}

	utils.ResponseSuccess(w, "success", equipments)
}

// GetEquipmentByID handles GET /api/equipment/{id} (protected)
func (h *EquipmentHandler) GetEquipmentByID(w http.ResponseWriter, r *http.Request) {
	equipmentID := chi.URLParam(r, "id")
	if equipmentID == "" {
		utils.ResponseBadRequest(w, "Equipment ID is required", nil)
		return
	}

	eq, err := h.service.GetEquipmentByID(r.Context(), equipmentID)
	if err != nil {
		handleServiceError(h.log, w, err, "get equipment")
		return
	}

	utils.ResponseSuccess(w, "success", eq)
}

// GetEquipmentAvailability handles GET /api/equipment/{id}/availability (public)
func (h *EquipmentHandler) GetEquipmentAvailability(w http.ResponseWriter, r *http.Request) {
	equipmentID := chi.URLParam(r, "id")
	if equipmentID == "" {
		utils.ResponseBadRequest(w, "Equipment ID is required", nil)
		return
	}

	available, err := h.booking.IsEquipmentAvailable(r.Context(), equipmentID)
	if err != nil {
		handleServiceError(h.log, w, err, "get equipment availability")
		return
	}

	utils.ResponseSuccess(w, "success", response.EquipmentAvailabilityResponse{
		EquipmentID: equipmentID,
		Available:   available,
	})
}

// UpdateEquipment handles PUT /api/equipment/{id} (protected, owner only)
func (h *EquipmentHandler) UpdateEquipment(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	equipmentID := chi.URLParam(r, "id")
	if equipmentID == "" {
		utils.ResponseBadRequest(w, "Equipment ID is required", nil)
		return
	}

	var req request.UpdateEquipmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	eq, err := h.service.UpdateEquipment(r.Context(), equipmentID, userID, &req)
	if err != nil {
		handleServiceError(h.log, w, err, "update equipment")
		return
	}

	utils.ResponseSuccess(w, "success", eq)
}

// DisableEquipment handles DELETE /api/equipment/{id} (protected, owner only)
func (h *EquipmentHandler) DisableEquipment(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	equipmentID := chi.URLParam(r, "id")
	if equipmentID == "" {
		utils.ResponseBadRequest(w, "Equipment ID is required", nil)
		return
	}

	if err := h.service.DisableEquipment(r.Context(), equipmentID, userID); err != nil {
		handleServiceError(h.log, w, err, "disable equipment")
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}
