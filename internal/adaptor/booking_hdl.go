package adaptor

import (
	"net/http"

	"lab-booking/internal/dto/request"
	"lab-booking/internal/usecase"
	"lab-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type BookingHandler struct {
	service usecase.BookingService
	log     *zap.Logger
}

func NewBookingHandler(service usecase.BookingService, log *zap.Logger) *BookingHandler {
	return &BookingHandler{
		service: service,
		log:     log.With(zap.String("handler", "booking")),
	}
}

// GetBookings handles GET /api/bookings (protected). Lists open slots,
// optionally filtered by equipment and slot start window.
func (h *BookingHandler) GetBookings(w http.ResponseWriter, r *http.Request) {
	req := bookingListFromQuery(r)

	bookings, err := h.service.ListAvailable(r.Context(), req)
	if err != nil {
		handleServiceError(h.log, w, err, "get bookings")
		return
	}

	utils.ResponseSuccess(w, "success", bookings)
}

// GetUserBookings handles GET /api/user/bookings (protected)
func (h *BookingHandler) GetUserBookings(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	query := r.URL.Query()
	req := &request.PaginatedRequest{
		Page:    utils.ParseInt(query.Get("page"), 1),
		PerPage: utils.ParseInt(query.Get("per_page"), 10),
	}

	bookings, err := h.service.GetUserBookings(r.Context(), userID, req)
	if err != nil {
		handleServiceError(h.log, w, err, "get user bookings")
		return
	}

	utils.ResponseSuccess(w, "success", bookings)
}

// GetPublicBookings handles GET /api/public/bookings (public). Lists reserved
// public slots without their passwords.
func (h *BookingHandler) GetPublicBookings(w http.ResponseWriter, r *http.Request) {
	req := bookingListFromQuery(r)

	bookings, err := h.service.ListPublicReserved(r.Context(), req)
	if err != nil {
		handleServiceError(h.log, w, err, "get public bookings")
		return
	}

	utils.ResponseSuccess(w, "success", bookings)
}

// ResolveAccess handles GET /api/booking-access?access_key=...&pwd=... (public).
// This is the endpoint behind shared booking links.
func (h *BookingHandler) ResolveAccess(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	accessKey := query.Get("access_key")
	if accessKey == "" {
		utils.ResponseBadRequest(w, "Access key is required", nil)
		return
	}

	booking, err := h.service.ResolveAccess(r.Context(), accessKey, query.Get("pwd"))
	if err != nil {
		handleServiceError(h.log, w, err, "resolve booking access")
		return
	}

	utils.ResponseSuccess(w, "success", booking)
}

// Claim handles PUT /api/bookings/{id}/claim (protected)
func (h *BookingHandler) Claim(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	bookingID := chi.URLParam(r, "id")
	if bookingID == "" {
		utils.ResponseBadRequest(w, "Booking ID is required", nil)
		return
	}

	booking, err := h.service.Claim(r.Context(), bookingID, userID)
	if err != nil {
		handleServiceError(h.log, w, err, "claim booking")
		return
	}

	utils.ResponseSuccess(w, "success", booking)
}

func bookingListFromQuery(r *http.Request) *request.BookingListRequest {
	query := r.URL.Query()

	return &request.BookingListRequest{
		PaginatedRequest: request.PaginatedRequest{
			Page:    utils.ParseInt(query.Get("page"), 1),
			PerPage: utils.ParseInt(query.Get("per_page"), 10),
		},
		EquipmentID: query.Get("equipment_id"),
		StartDate:   query.Get("start_date"),
		EndDate:     query.Get("end_date"),
	}
}
