package get_schedule_config

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mobisfm/FM-BookingService/internal/api/handlers"
	"github.com/mobisfm/FM-BookingService/internal/domain"
	"github.com/mobisfm/FM-BookingService/internal/service/schedule"
)

const (
	msgInvalidResourceType = "invalid resource type, expected room or vehicle"
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

// Handle GET /api/v1/schedule/{resourceType}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	resourceType := domain.ResourceType(mux.Vars(r)["resourceType"])

	result, err := h.service.GetConfig(r.Context(), resourceType)
	if err != nil {
		switch {
		case errors.Is(err, schedule.ErrInvalidInput):
			h.logger.Warn("GET /schedule/{type} - Invalid resource type: %s", resourceType)
			handlers.RespondBadRequest(w, msgInvalidResourceType)

		default:
			h.logger.Error("GET /schedule/{type} - Failed: type=%s, error=%v", resourceType, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /schedule/{type} - Config retrieved: type=%s, %d rules, %d holidays",
		resourceType, len(result.Rules), len(result.Holidays))
	handlers.RespondJSON(w, http.StatusOK, result)
}
