package get_available_slots

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/mobisfm/FM-BookingService/internal/api/handlers"
	"github.com/mobisfm/FM-BookingService/internal/domain"
	getSlots "github.com/mobisfm/FM-BookingService/internal/usecase/get_available_slots"
)

const (
	msgInvalidResourceType = "invalid resource type, expected room or vehicle"
	msgInvalidResourceID   = "invalid resource id"
	msgInvalidDate         = "invalid date, expected YYYY-MM-DD"
	msgResourceNotFound    = "resource not found"
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/resources/{resourceType}/{resourceId}/available-slots?date=YYYY-MM-DD
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	resourceType := domain.ResourceType(vars["resourceType"])
	if !resourceType.Valid() {
		h.logger.Warn("GET /available-slots - Invalid resource type: %s", vars["resourceType"])
		handlers.RespondBadRequest(w, msgInvalidResourceType)
		return
	}

	resourceID, err := strconv.ParseInt(vars["resourceId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /available-slots - Invalid resource ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidResourceID)
		return
	}

	date, err := time.Parse(domain.DateFormat, r.URL.Query().Get("date"))
	if err != nil {
		h.logger.Warn("GET /available-slots - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getSlots.Request{
		ResourceType: resourceType,
		ResourceID:   resourceID,
		Date:         date,
	})
	if err != nil {
		switch {
		case errors.Is(err, getSlots.ErrResourceNotFound):
			h.logger.Warn("GET /available-slots - Resource not found: type=%s, id=%d", resourceType, resourceID)
			handlers.RespondNotFound(w, msgResourceNotFound)

		case errors.Is(err, getSlots.ErrInvalidInput):
			h.logger.Warn("GET /available-slots - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("GET /available-slots - Failed: type=%s, id=%d, error=%v", resourceType, resourceID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /available-slots - %d slots for type=%s, id=%d, date=%s",
		len(result.Slots), resourceType, resourceID, r.URL.Query().Get("date"))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
