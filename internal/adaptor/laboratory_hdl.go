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

type LaboratoryHandler struct {
	service usecase.LaboratoryService
	log     *zap.Logger
}

func NewLaboratoryHandler(service usecase.LaboratoryService, log *zap.Logger) *LaboratoryHandler {
	return &LaboratoryHandler{
		service: service,
		log:     log.With(zap.String("handler", "laboratory")),
	}
}

// CreateLaboratory handles POST /api/laboratories (protected)
func (h *LaboratoryHandler) CreateLaboratory(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	var req request.CreateLaboratoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	lab, err := h.service.CreateLaboratory(r.Context(), userID, &req)
	if err != nil {
		handleServiceError(h.log, w, err, "create laboratory")
		return
	}

	utils.ResponseCreated(w, "success", lab)
}

// GetLaboratories handles GET /api/laboratories (protected)
func (h *LaboratoryHandler) GetLaboratories(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	labs, err := h.service.GetLaboratories(r.Context(), query.Get("owner_id"), query.Get("visible"))
	if err != nil {
		handleServiceError(h.log, w, err, "get laboratories")
		return
	}

	utils.ResponseSuccess(w, "success", labs)
}

// GetPublicLaboratories handles GET /api/public/laboratories (public)
func (h *LaboratoryHandler) GetPublicLaboratories(w http.ResponseWriter, r *http.Request) {
	labs, err := h.service.GetPublicLaboratories(r.Context())
	if err != nil {
		handleServiceError(h.log, w, err, "get public laboratories")
		return
	}

	utils.ResponseSuccess(w, "success", labs)
}

// GetLaboratoryByID handles GET /api/laboratories/{id} (protected)
func (h *LaboratoryHandler) GetLaboratoryByID(w http.ResponseWriter, r *http.Request) {
	laboratoryID := chi.URLParam(r, "id")
	if laboratoryID == "" {
		utils.ResponseBadRequest(w, "Laboratory ID is required", nil)
		return
	}

	lab, err := h.service.GetLaboratoryByID(r.Context(), laboratoryID)
	if err != nil {
		handleServiceError(h.log, w, err, "get laboratory")
		return
	}

	utils.ResponseSuccess(w, "success", lab)
}

// UpdateLaboratory handles PUT /api/laboratories/{id} (protected, owner only)
func (h *LaboratoryHandler) UpdateLaboratory(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	laboratoryID := chi.URLParam(r, "id")
	if laboratoryID == "" {
		utils.ResponseBadRequest(w, "Laboratory ID is required", nil)
		return
	}

	var req request.UpdateLaboratoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	lab, err := h.service.UpdateLaboratory(r.Context(), laboratoryID, userID, &req)
	if err != nil {
		handleServiceError(h.log, w, err, "update laboratory")
		return
	}

	utils.ResponseSuccess(w, "success", lab)
}

// DisableLaboratory handles DELETE /api/laboratories/{id} (protected, owner only)
func (h *LaboratoryHandler) DisableLaboratory(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	laboratoryID := chi.URLParam(r, "id")
	if laboratoryID == "" {
		utils.ResponseBadRequest(w, "Laboratory ID is required", nil)
		return
	}

	if err := h.service.DisableLaboratory(r.Context(), laboratoryID, userID); err != nil {
		handleServiceError(h.log, w, err, "disable laboratory")
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}
