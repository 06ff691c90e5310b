package wire

import (
	"lab-booking/internal/adaptor"
	"lab-booking/internal/data/repository"
	"lab-booking/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireTimeFrame(
	r chi.Router,
	timeframeHandler *adaptor.TimeFrameHandler,
	repo *repository.Repository,
	log *zap.Logger,
) {
	// All timeframe routes require auth
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, log))

		// POST /api/timeframes - Create timeframe and generate its slots
		r.Post("/api/timeframes", timeframeHandler.CreateTimeFrame)

		// GET /api/equipment/{id}/timeframes - Timeframes of an equipment
		r.Get("/api/equipment/{id}/timeframes", timeframeHandler.GetTimeFramesByEquipment)

		// GET /api/timeframes/{id} - Timeframe details
		r.Get("/api/timeframes/{id}", timeframeHandler.GetTimeFrameByID)

		// DELETE /api/timeframes/{id} - Archive timeframe (owner only)
		r.Delete("/api/timeframes/{id}", timeframeHandler.DisableTimeFrame)
	})
}
