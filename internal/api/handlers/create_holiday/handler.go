package create_holiday

import (
	"errors"
	"net/http"

	"github.com/mobisfm/FM-BookingService/internal/api/handlers"
	"github.com/mobisfm/FM-BookingService/internal/api/middleware"
	"github.com/mobisfm/FM-BookingService/internal/service/schedule"
	"github.com/mobisfm/FM-BookingService/internal/service/schedule/models"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgMissingUserID      = "missing user id"
	msgForbidden          = "access denied"
	msgDuplicateHoliday   = "a holiday already exists on this date"
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

// Handle POST /api/v1/holidays
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.GetActor(r.Context())
	if !ok {
		h.logger.Warn("POST /holidays - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req CreateHolidayRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /holidays - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.CreateHoliday(r.Context(), &models.CreateHolidayRequest{
		Actor:   actor,
		Day:     req.Day,
		Month:   req.Month,
		Year:    req.Year,
		Comment: req.Comment,
	})
	if err != nil {
		switch {
		case errors.Is(err, schedule.ErrAccessDenied):
			h.logger.Warn("POST /holidays - Access denied: user_id=%d", actor.ID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, schedule.ErrInvalidInput):
			h.logger.Warn("POST /holidays - Validation failed: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		case errors.Is(err, schedule.ErrDuplicateHoliday):
			h.logger.Warn("POST /holidays - Duplicate: %04d-%02d-%02d", req.Year, req.Month, req.Day)
			handlers.RespondConflict(w, msgDuplicateHoliday)

		default:
			h.logger.Error("POST /holidays - Failed: user_id=%d, error=%v", actor.ID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /holidays - Holiday created: holiday_id=%d, user_id=%d", result.ID, actor.ID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
