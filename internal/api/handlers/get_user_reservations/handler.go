package get_user_reservations

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
	msgInvalidUserID = "invalid user id"
	msgMissingUserID = "missing user id"
	msgForbidden     = "access denied"
	msgInvalidFilter = "invalid filter parameters"
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

// Handle GET /api/v1/users/{userId}/reservations?resourceType=&status=&includeInactive=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, err := strconv.ParseInt(mux.Vars(r)["userId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /users/{id}/reservations - Invalid user ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidUserID)
		return
	}

	actor, ok := middleware.GetActor(r.Context())
	if !ok {
		h.logger.Warn("GET /users/{id}/reservations - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	req := &models.GetUserReservationsRequest{
		Actor:  actor,
		UserID: userID,
	}
	query := r.URL.Query()
	if rt := query.Get("resourceType"); rt != "" {
		req.ResourceType = &rt
	}
	if status := query.Get("status"); status != "" {
		req.Status = &status
	}
	if query.Get("includeInactive") == "true" {
		req.IncludeInactive = true
	}

	result, err := h.service.GetUserReservations(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, reservations.ErrAccessDenied):
			h.logger.Warn("GET /users/{id}/reservations - Access denied: user_id=%d, actor_id=%d", userID, actor.ID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, reservations.ErrInvalidInput):
			h.logger.Warn("GET /users/{id}/reservations - Invalid filter: user_id=%d, error=%v", userID, err)
			handlers.RespondBadRequest(w, msgInvalidFilter)

		default:
			h.logger.Error("GET /users/{id}/reservations - Failed: user_id=%d, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /users/{id}/reservations - %d reservations for user_id=%d", len(result.Reservations), userID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
