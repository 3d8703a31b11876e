package transition_reservation

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/mobisfm/FM-BookingService/internal/api/handlers"
	"github.com/mobisfm/FM-BookingService/internal/api/middleware"
	"github.com/mobisfm/FM-BookingService/internal/service/reservations"
	"github.com/mobisfm/FM-BookingService/internal/service/reservations/models"
)

const (
	msgInvalidRequestBody   = "invalid request body"
	msgInvalidReservationID = "invalid reservation id"
	msgMissingUserID        = "missing user id"
	msgNotFound             = "reservation not found"
	msgForbidden            = "access denied"
	msgInvalidStatus        = "invalid status value"
	msgInvalidTransition    = "status transition is not allowed"
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

// Handle PATCH /api/v1/reservations/{reservationId}/status
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	reservationID, err := strconv.ParseInt(mux.Vars(r)["reservationId"], 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /reservations/{id}/status - Invalid reservation ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidReservationID)
		return
	}

	actor, ok := middleware.GetActor(r.Context())
	if !ok {
		h.logger.Warn("PATCH /reservations/{id}/status - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req TransitionRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /reservations/{id}/status - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Transition(r.Context(), reservationID, &models.TransitionRequest{
		Actor:  actor,
		Status: req.Status,
		Reason: req.Reason,
	})
	if err != nil {
		switch {
		case errors.Is(err, reservations.ErrReservationNotFound):
			h.logger.Warn("PATCH /reservations/{id}/status - Not found: reservation_id=%d", reservationID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, reservations.ErrAccessDenied):
			h.logger.Warn("PATCH /reservations/{id}/status - Access denied: reservation_id=%d, user_id=%d", reservationID, actor.ID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, reservations.ErrInvalidStatus):
			h.logger.Warn("PATCH /reservations/{id}/status - Invalid status: %s", req.Status)
			handlers.RespondBadRequest(w, msgInvalidStatus)

		case errors.Is(err, reservations.ErrInvalidTransition):
			h.logger.Warn("PATCH /reservations/{id}/status - Invalid transition: reservation_id=%d, target=%s", reservationID, req.Status)
			handlers.RespondConflict(w, msgInvalidTransition)

		default:
			h.logger.Error("PATCH /reservations/{id}/status - Failed: reservation_id=%d, error=%v", reservationID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /reservations/{id}/status - Reservation moved: reservation_id=%d, status=%s, user_id=%d",
		reservationID, result.Status, actor.ID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
