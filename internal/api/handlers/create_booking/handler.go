package create_booking

import (
	"errors"
	"net/http"

	"github.com/mobisfm/FM-BookingService/internal/api/handlers"
	"github.com/mobisfm/FM-BookingService/internal/api/middleware"
	createBooking "github.com/mobisfm/FM-BookingService/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody  = "invalid request body"
	msgInvalidDateOrTime   = "invalid date or time, expected YYYY-MM-DD and HH:MM"
	msgMissingUserID       = "missing user id"
	msgResourceNotFound    = "resource not found"
	msgResourceUnavailable = "resource is not available for reservations"
	msgCapacityExceeded    = "attendees exceed the room capacity"
	msgExceedsMaxDays      = "reservation exceeds the vehicle day limit"
	msgHoliday             = "the requested date is a holiday"
	msgOutsideOpenHours    = "the requested time is outside open hours"
	msgConflict            = "the requested range conflicts with an existing reservation"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/reservations
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.GetActor(r.Context())
	if !ok {
		h.logger.Warn("POST /reservations - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req CreateReservationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /reservations - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(actor)
	if err != nil {
		h.logger.Warn("POST /reservations - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateOrTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrInvalidInput),
			errors.Is(err, createBooking.ErrEndBeforeStart):
			h.logger.Warn("POST /reservations - Validation failed: user_id=%d, error=%v", actor.ID, err)
			handlers.RespondBadRequest(w, err.Error())

		case errors.Is(err, createBooking.ErrResourceNotFound):
			h.logger.Warn("POST /reservations - Resource not found: type=%s, id=%d", req.ResourceType, req.ResourceID)
			handlers.RespondNotFound(w, msgResourceNotFound)

		case errors.Is(err, createBooking.ErrResourceUnavailable):
			h.logger.Warn("POST /reservations - Resource unavailable: type=%s, id=%d", req.ResourceType, req.ResourceID)
			handlers.RespondBadRequest(w, msgResourceUnavailable)

		case errors.Is(err, createBooking.ErrCapacityExceeded):
			h.logger.Warn("POST /reservations - Capacity exceeded: room_id=%d", req.ResourceID)
			handlers.RespondBadRequest(w, msgCapacityExceeded)

		case errors.Is(err, createBooking.ErrExceedsMaxDays):
			h.logger.Warn("POST /reservations - Exceeds max days: vehicle_id=%d", req.ResourceID)
			handlers.RespondBadRequest(w, msgExceedsMaxDays)

		case errors.Is(err, createBooking.ErrHoliday):
			h.logger.Warn("POST /reservations - Holiday: user_id=%d, date=%s", actor.ID, req.StartDate)
			handlers.RespondBadRequest(w, msgHoliday)

		case errors.Is(err, createBooking.ErrOutsideOpenHours):
			h.logger.Warn("POST /reservations - Outside open hours: user_id=%d", actor.ID)
			handlers.RespondBadRequest(w, msgOutsideOpenHours)

		case errors.Is(err, createBooking.ErrConflict):
			h.logger.Warn("POST /reservations - Conflict: type=%s, id=%d, user_id=%d", req.ResourceType, req.ResourceID, actor.ID)
			handlers.RespondConflict(w, msgConflict)

		default:
			h.logger.Error("POST /reservations - Failed to create reservation: user_id=%d, error=%v", actor.ID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /reservations - Reservation created: reservation_id=%d, user_id=%d, status=%s",
		result.ID, actor.ID, result.Status)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
