package delete_holiday

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/mobisfm/FM-BookingService/internal/api/handlers"
	"github.com/mobisfm/FM-BookingService/internal/api/middleware"
	"github.com/mobisfm/FM-BookingService/internal/service/schedule"
)

const (
	msgInvalidHolidayID = "invalid holiday id"
	msgMissingUserID    = "missing user id"
	msgForbidden        = "access denied"
	msgNotFound         = "holiday not found"
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

// Handle DELETE /api/v1/holidays/{holidayId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	holidayID, err := strconv.ParseInt(mux.Vars(r)["holidayId"], 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /holidays/{id} - Invalid holiday ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidHolidayID)
		return
	}

	actor, ok := middleware.GetActor(r.Context())
	if !ok {
		h.logger.Warn("DELETE /holidays/{id} - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	if err := h.service.DeleteHoliday(r.Context(), holidayID, actor); err != nil {
		switch {
		case errors.Is(err, schedule.ErrAccessDenied):
			h.logger.Warn("DELETE /holidays/{id} - Access denied: holiday_id=%d, user_id=%d", holidayID, actor.ID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, schedule.ErrHolidayNotFound):
			h.logger.Warn("DELETE /holidays/{id} - Not found: holiday_id=%d", holidayID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("DELETE /holidays/{id} - Failed: holiday_id=%d, error=%v", holidayID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /holidays/{id} - Holiday deleted: holiday_id=%d, user_id=%d", holidayID, actor.ID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
