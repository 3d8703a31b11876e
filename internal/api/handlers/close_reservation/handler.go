package close_reservation

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/mobisfm/FM-BookingService/internal/api/handlers"
	"github.com/mobisfm/FM-BookingService/internal/api/middleware"
	closeReservation "github.com/mobisfm/FM-BookingService/internal/usecase/close_reservation"
)

const (
	msgInvalidRequestBody   = "invalid request body"
	msgInvalidReservationID = "invalid reservation id"
	msgMissingUserID        = "missing user id"
	msgNotFound             = "reservation not found"
	msgForbidden            = "access denied"
	msgNotVehicle           = "only vehicle reservations can be closed"
	msgNotApproved          = "only approved reservations can be closed"
	msgAlreadyClosed        = "reservation is already closed"
	msgKilometersDecreased  = "final kilometers must not be below the initial reading"
)

type Handler struct {
	useCase CloseReservationUseCase
	logger  Logger
}

func NewHandler(useCase CloseReservationUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/reservations/{reservationId}/close
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	reservationID, err := strconv.ParseInt(mux.Vars(r)["reservationId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /reservations/{id}/close - Invalid reservation ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidReservationID)
		return
	}

	actor, ok := middleware.GetActor(r.Context())
	if !ok {
		h.logger.Warn("POST /reservations/{id}/close - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req CloseReservationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /reservations/{id}/close - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &closeReservation.Request{
		Actor:              actor,
		ReservationID:      reservationID,
		FinalKilometers:    req.FinalKilometers,
		FinalChargePercent: req.FinalChargePercent,
	})
	if err != nil {
		switch {
		case errors.Is(err, closeReservation.ErrReservationNotFound):
			h.logger.Warn("POST /reservations/{id}/close - Not found: reservation_id=%d", reservationID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, closeReservation.ErrAccessDenied):
			h.logger.Warn("POST /reservations/{id}/close - Access denied: reservation_id=%d, user_id=%d", reservationID, actor.ID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, closeReservation.ErrNotVehicle):
			h.logger.Warn("POST /reservations/{id}/close - Not a vehicle reservation: reservation_id=%d", reservationID)
			handlers.RespondBadRequest(w, msgNotVehicle)

		case errors.Is(err, closeReservation.ErrNotApproved):
			h.logger.Warn("POST /reservations/{id}/close - Not approved: reservation_id=%d", reservationID)
			handlers.RespondConflict(w, msgNotApproved)

		case errors.Is(err, closeReservation.ErrAlreadyClosed):
			h.logger.Warn("POST /reservations/{id}/close - Already closed: reservation_id=%d", reservationID)
			handlers.RespondConflict(w, msgAlreadyClosed)

		case errors.Is(err, closeReservation.ErrKilometersDecreased):
			h.logger.Warn("POST /reservations/{id}/close - Kilometers decreased: reservation_id=%d", reservationID)
			handlers.RespondBadRequest(w, msgKilometersDecreased)

		case errors.Is(err, closeReservation.ErrInvalidInput):
			h.logger.Warn("POST /reservations/{id}/close - Invalid input: reservation_id=%d, error=%v", reservationID, err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("POST /reservations/{id}/close - Failed: reservation_id=%d, error=%v", reservationID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /reservations/{id}/close - Reservation closed: reservation_id=%d, vehicle_id=%d",
		result.ID, result.ResourceID)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
