package get_available_slots

import (
	"time"

	"github.com/mobisfm/FM-BookingService/internal/domain"
	"github.com/mobisfm/FM-BookingService/pkg/types"
)

// Request asks for the free slots of one resource on one date
type Request struct {
	ResourceType domain.ResourceType
	ResourceID   int64
	Date         time.Time
}

// Response lists the free slots in ascending time order
type Response struct {
	ResourceType       domain.ResourceType
	ResourceID         int64
	Date               time.Time
	GranularityMinutes int
	Slots              []types.TimeString
}
