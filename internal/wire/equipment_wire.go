package wire

import (
	"lab-booking/internal/adaptor"
	"lab-booking/internal/data/repository"
	"lab-booking/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireEquipment(
	r chi.Router,
	equipmentHandler *adaptor.EquipmentHandler,
	repo *repository.Repository,
	log *zap.Logger,
) {
	// Protected routes
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, log))

		// POST /api/equipment - Create equipment
		r.Post("/api/equipment", equipmentHandler.CreateEquipment)

		// GET /api/laboratories/{id}/equipment - Equipment of a laboratory
		r.Get("/api/laboratories/{id}/equipment", equipmentHandler.GetEquipmentByLaboratory)

		// GET /api/equipment/{id} - Equipment details
		r.Get("/api/equipment/{id}", equipmentHandler.GetEquipmentByID)

		// PUT /api/equipment/{id} - Update equipment (owner only)
		r.Put("/api/equipment/{id}", equipmentHandler.UpdateEquipment)

		// DELETE /api/equipment/{id} - Archive equipment (owner only)
		r.Delete("/api/equipment/{id}", equipmentHandler.DisableEquipment)
	})

	// Public routes
	// GET /api/equipment/{id}/availability - Whether open future slots exist
	r.Get("/api/equipment/{id}/availability", equipmentHandler.GetEquipmentAvailability)
}
