package update_booking

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/mobisfm/FM-BookingService/internal/api/handlers"
	"github.com/mobisfm/FM-BookingService/internal/api/middleware"
	updateBooking "github.com/mobisfm/FM-BookingService/internal/usecase/update_booking"
)

const (
	msgInvalidRequestBody   = "invalid request body"
	msgInvalidReservationID = "invalid reservation id"
	msgInvalidDateOrTime    = "invalid date or time, expected YYYY-MM-DD and HH:MM"
	msgMissingUserID        = "missing user id"
	msgNotFound             = "reservation not found"
	msgForbidden            = "access denied"
	msgNotEditable          = "reservation can no longer be edited"
	msgResourceUnavailable  = "resource is not available for reservations"
	msgCapacityExceeded     = "attendees exceed the room capacity"
	msgExceedsMaxDays       = "reservation exceeds the vehicle day limit"
	msgHoliday              = "the requested date is a holiday"
	msgOutsideOpenHours     = "the requested time is outside open hours"
	msgConflict             = "the requested range conflicts with an existing reservation"
)

type Handler struct {
	useCase UpdateBookingUseCase
	logger  Logger
}

func NewHandler(useCase UpdateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PUT /api/v1/reservations/{reservationId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	reservationID, err := strconv.ParseInt(mux.Vars(r)["reservationId"], 10, 64)
	if err != nil {
		h.logger.Warn("PUT /reservations/{id} - Invalid reservation ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidReservationID)
		return
	}

	actor, ok := middleware.GetActor(r.Context())
	if !ok {
		h.logger.Warn("PUT /reservations/{id} - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req UpdateReservationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /reservations/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(actor, reservationID)
	if err != nil {
		h.logger.Warn("PUT /reservations/{id} - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateOrTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, updateBooking.ErrReservationNotFound):
			h.logger.Warn("PUT /reservations/{id} - Not found: reservation_id=%d", reservationID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, updateBooking.ErrAccessDenied):
			h.logger.Warn("PUT /reservations/{id} - Access denied: reservation_id=%d, user_id=%d", reservationID, actor.ID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, updateBooking.ErrNotEditable):
			h.logger.Warn("PUT /reservations/{id} - Not editable: reservation_id=%d", reservationID)
			handlers.RespondConflict(w, msgNotEditable)

		case errors.Is(err, updateBooking.ErrInvalidInput),
			errors.Is(err, updateBooking.ErrEndBeforeStart):
			h.logger.Warn("PUT /reservations/{id} - Validation failed: reservation_id=%d, error=%v", reservationID, err)
			handlers.RespondBadRequest(w, err.Error())

		case errors.Is(err, updateBooking.ErrResourceUnavailable):
			h.logger.Warn("PUT /reservations/{id} - Resource unavailable: reservation_id=%d", reservationID)
			handlers.RespondBadRequest(w, msgResourceUnavailable)

		case errors.Is(err, updateBooking.ErrCapacityExceeded):
			h.logger.Warn("PUT /reservations/{id} - Capacity exceeded: reservation_id=%d", reservationID)
			handlers.RespondBadRequest(w, msgCapacityExceeded)

		case errors.Is(err, updateBooking.ErrExceedsMaxDays):
			h.logger.Warn("PUT /reservations/{id} - Exceeds max days: reservation_id=%d", reservationID)
			handlers.RespondBadRequest(w, msgExceedsMaxDays)

		case errors.Is(err, updateBooking.ErrHoliday):
			h.logger.Warn("PUT /reservations/{id} - Holiday: reservation_id=%d", reservationID)
			handlers.RespondBadRequest(w, msgHoliday)

		case errors.Is(err, updateBooking.ErrOutsideOpenHours):
			h.logger.Warn("PUT /reservations/{id} - Outside open hours: reservation_id=%d", reservationID)
			handlers.RespondBadRequest(w, msgOutsideOpenHours)

		case errors.Is(err, updateBooking.ErrConflict):
			h.logger.Warn("PUT /reservations/{id} - Conflict: reservation_id=%d", reservationID)
			handlers.RespondConflict(w, msgConflict)

		default:
			h.logger.Error("PUT /reservations/{id} - Failed to update: reservation_id=%d, error=%v", reservationID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /reservations/{id} - Reservation updated: reservation_id=%d, user_id=%d", result.ID, actor.ID)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
