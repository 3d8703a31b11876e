package get_reservation

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/mobisfm/FM-BookingService/internal/api/handlers"
	"github.com/mobisfm/FM-BookingService/internal/api/middleware"
	"github.com/mobisfm/FM-BookingService/internal/service/reservations"
)

const (
	msgInvalidReservationID = "invalid reservation id"
	msgMissingUserID        = "missing user id"
	msgNotFound             = "reservation not found"
	msgForbidden            = "access denied"
)

type Handler struct {
	service ReservationService
	logger  Logger
}

func NewHandler(service ReservationService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/reservations/{reservationId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	reservationID, err := strconv.ParseInt(mux.Vars(r)["reservationId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /reservations/{id} - Invalid reservation ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidReservationID)
		return
	}

	actor, ok := middleware.GetActor(r.Context())
	if !ok {
		h.logger.Warn("GET /reservations/{id} - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	reservation, err := h.service.GetByID(r.Context(), reservationID, actor)
	if err != nil {
		switch {
		case errors.Is(err, reservations.ErrReservationNotFound):
			h.logger.Warn("GET /reservations/{id} - Not found: reservation_id=%d", reservationID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, reservations.ErrAccessDenied):
			h.logger.Warn("GET /reservations/{id} - Access denied: reservation_id=%d, user_id=%d", reservationID, actor.ID)
			handlers.RespondForbidden(w, msgForbidden)

		default:
			h.logger.Error("GET /reservations/{id} - Failed: reservation_id=%d, error=%v", reservationID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /reservations/{id} - Reservation retrieved: reservation_id=%d, user_id=%d", reservationID, actor.ID)
	handlers.RespondJSON(w, http.StatusOK, reservation)
}
