package get_available_slots

import (
	"github.com/mobisfm/FM-BookingService/internal/domain"
	getSlots "github.com/mobisfm/FM-BookingService/internal/usecase/get_available_slots"
)

// AvailableSlotsResponse HTTP response model
type AvailableSlotsResponse struct {
	ResourceType       string   `json:"resourceType"`
	ResourceID         int64    `json:"resourceId"`
	Date               string   `json:"date"` // "2026-08-15"
	GranularityMinutes int      `json:"granularityMinutes"`
	Slots              []string `json:"slots"` // "07:30", "07:45", ...
}

// FromUseCaseResponse converts the use case response to the HTTP model
func FromUseCaseResponse(resp *getSlots.Response) *AvailableSlotsResponse {
	slots := make([]string, 0, len(resp.Slots))
	for _, slot := range resp.Slots {
		slots = append(slots, slot.String())
	}
	return &AvailableSlotsResponse{
		ResourceType:       string(resp.ResourceType),
		ResourceID:         resp.ResourceID,
		Date:               resp.Date.Format(domain.DateFormat),
		GranularityMinutes: resp.GranularityMinutes,
		Slots:              slots,
	}
}
