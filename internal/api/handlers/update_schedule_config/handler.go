package update_schedule_config

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mobisfm/FM-BookingService/internal/api/handlers"
	"github.com/mobisfm/FM-BookingService/internal/api/middleware"
	"github.com/mobisfm/FM-BookingService/internal/domain"
	"github.com/mobisfm/FM-BookingService/internal/service/schedule"
	"github.com/mobisfm/FM-BookingService/internal/service/schedule/models"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgMissingUserID      = "missing user id"
	msgForbidden          = "access denied"
)

type Handler struct {
	service ScheduleService
	logger  Logger
}

func NewHandler(service ScheduleService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PUT /api/v1/schedule/{resourceType}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	resourceType := domain.ResourceType(mux.Vars(r)["resourceType"])

	actor, ok := middleware.GetActor(r.Context())
	if !ok {
		h.logger.Warn("PUT /schedule/{type} - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req UpsertRuleRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /schedule/{type} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.UpsertRule(r.Context(), resourceType, &models.UpsertRuleRequest{
		Actor:     actor,
		Month:     req.Month,
		DayOfWeek: req.DayOfWeek,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		Enabled:   req.Enabled,
	})
	if err != nil {
		switch {
		case errors.Is(err, schedule.ErrAccessDenied):
			h.logger.Warn("PUT /schedule/{type} - Access denied: user_id=%d", actor.ID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, schedule.ErrInvalidInput):
			h.logger.Warn("PUT /schedule/{type} - Validation failed: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("PUT /schedule/{type} - Failed: type=%s, error=%v", resourceType, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /schedule/{type} - Rule saved: type=%s, month=%d, dow=%d, user_id=%d",
		resourceType, req.Month, req.DayOfWeek, actor.ID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
