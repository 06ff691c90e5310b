package wire

import (
	"net/http"

	"lab-booking/internal/adaptor"
	"lab-booking/internal/data/repository"
	"lab-booking/internal/usecase"
	"lab-booking/pkg/middleware"
	"lab-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type App struct {
	Router  *chi.Mux
	Service *usecase.Service
}

// Wiring builds the service layer, handlers and router.
func Wiring(repo *repository.Repository, config *utils.Config, logger *zap.Logger) *App {
	service := usecase.NewService(repo, config, logger)
	handler := adaptor.NewHandler(service, logger)

	router := setupRouter(handler, repo, logger)

	return &App{
		Router:  router,
		Service: service,
	}
}

func setupRouter(
	handler *adaptor.Handler,
	repo *repository.Repository,
	logger *zap.Logger,
) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS())

	wireLaboratory(r, handler.Laboratory, repo, logger)
	wireEquipment(r, handler.Equipment, repo, logger)
	wireTimeFrame(r, handler.TimeFrame, repo, logger)
	wireBooking(r, handler.Booking, repo, logger)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	return r
}
