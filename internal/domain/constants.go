package domain

import "github.com/mobisfm/FM-BookingService/pkg/types"

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Slot generation
const (
	// SlotGranularityMinutes is the fixed spacing between bookable time points
	SlotGranularityMinutes = 15
)

// Default open-hours windows, applied when no explicit schedule rule exists
// for a (resourceType, month, dayOfWeek) key
const (
	DefaultOpenTime  types.TimeString = "07:30"
	DefaultCloseTime types.TimeString = "17:30"

	// August runs a reduced summer schedule
	AugustOpenTime  types.TimeString = "07:00"
	AugustCloseTime types.TimeString = "14:00"
)

// ClosedTime is the sentinel marking a fully closed day when used for both
// ends of a schedule rule window
const ClosedTime types.TimeString = "00:00"

// Business validation constants
const (
	MaxPurposeLength            = 500
	MaxCancellationReasonLength = 500
	MinAttendees                = 1
)

// InactiveStatuses are the statuses excluded from conflict detection and
// availability filtering
var InactiveStatuses = []ReservationStatus{
	StatusRejected,
	StatusCancelled,
}

// BlockingStatuses are the statuses that occupy a resource's time range.
// Pending reservations hold their slot provisionally until decided.
var BlockingStatuses = []ReservationStatus{
	StatusPending,
	StatusApproved,
	StatusCompleted,
}
