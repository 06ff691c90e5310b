package wire

import (
	"lab-booking/internal/adaptor"
	"lab-booking/internal/data/repository"
	"lab-booking/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireLaboratory(
	r chi.Router,
	laboratoryHandler *adaptor.LaboratoryHandler,
	repo *repository.Repository,
	log *zap.Logger,
) {
	// Protected routes
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, log))

		// POST /api/laboratories - Create laboratory
		r.Post("/api/laboratories", laboratoryHandler.CreateLaboratory)

		// GET /api/laboratories - List laboratories (filter by owner_id, visible)
		r.Get("/api/laboratories", laboratoryHandler.GetLaboratories)

		// GET /api/laboratories/{id} - Laboratory details
		r.Get("/api/laboratories/{id}", laboratoryHandler.GetLaboratoryByID)

		// PUT /api/laboratories/{id} - Update laboratory (owner only)
		r.Put("/api/laboratories/{id}", laboratoryHandler.UpdateLaboratory)

		// DELETE /api/laboratories/{id} - Archive laboratory (owner only)
		r.Delete("/api/laboratories/{id}", laboratoryHandler.DisableLaboratory)
	})

	// Public routes
	// GET /api/public/laboratories - Visible labs with live availability
	r.Get("/api/public/laboratories", laboratoryHandler.GetPublicLaboratories)
}
