package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/mobisfm/FM-BookingService/pkg/types"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func roomReservation(day time.Time, start, end types.TimeString, status ReservationStatus) *Reservation {
	return &Reservation{
		ResourceType: ResourceTypeRoom,
		ResourceID:   1,
		StartDate:    day,
		EndDate:      day,
		StartTime:    start,
		EndTime:      end,
		Status:       status,
	}
}

func TestIntervalsOverlap(t *testing.T) {
	assert.True(t, IntervalsOverlap(540, 660, 600, 720))  // 09-11 vs 10-12
	assert.True(t, IntervalsOverlap(600, 720, 540, 660))  // symmetric
	assert.False(t, IntervalsOverlap(540, 660, 660, 720)) // back-to-back
	assert.False(t, IntervalsOverlap(660, 720, 540, 660))
	assert.True(t, IntervalsOverlap(540, 720, 600, 660)) // containment
}

func TestReservationsOverlap_SameDay(t *testing.T) {
	day := date(2026, time.September, 10)
	a := roomReservation(day, "09:00", "11:00", StatusApproved)

	assert.True(t, ReservationsOverlap(a, roomReservation(day, "10:00", "12:00", StatusPending)))
	assert.False(t, ReservationsOverlap(a, roomReservation(day, "11:00", "12:00", StatusPending)))
	assert.False(t, ReservationsOverlap(a, roomReservation(date(2026, time.September, 11), "09:00", "11:00", StatusPending)))
}

func TestReservationsOverlap_CrossDateInteriorDay(t *testing.T) {
	// A multi-day vehicle reservation fully occupies its interior days
	a := &Reservation{
		ResourceType: ResourceTypeVehicle,
		StartDate:    date(2026, time.September, 10),
		EndDate:      date(2026, time.September, 14),
		StartTime:    "14:00",
		EndTime:      "10:00",
		Status:       StatusApproved,
	}
	b := &Reservation{
		ResourceType: ResourceTypeVehicle,
		StartDate:    date(2026, time.September, 12),
		EndDate:      date(2026, time.September, 12),
		StartTime:    "08:00",
		EndTime:      "09:00",
		Status:       StatusPending,
	}
	assert.True(t, ReservationsOverlap(a, b))
}

func TestReservationsOverlap_BoundaryDayTimes(t *testing.T) {
	// On the shared boundary day only the time windows decide
	a := &Reservation{
		ResourceType: ResourceTypeVehicle,
		StartDate:    date(2026, time.September, 10),
		EndDate:      date(2026, time.September, 12),
		StartTime:    "08:00",
		EndTime:      "10:00", // releases at 10:00 on the 12th
		Status:       StatusApproved,
	}
	after := &Reservation{
		ResourceType: ResourceTypeVehicle,
		StartDate:    date(2026, time.September, 12),
		EndDate:      date(2026, time.September, 12),
		StartTime:    "10:00",
		EndTime:      "12:00",
		Status:       StatusPending,
	}
	before := &Reservation{
		ResourceType: ResourceTypeVehicle,
		StartDate:    date(2026, time.September, 12),
		EndDate:      date(2026, time.September, 12),
		StartTime:    "09:00",
		EndTime:      "12:00",
		Status:       StatusPending,
	}
	assert.False(t, ReservationsOverlap(a, after))
	assert.True(t, ReservationsOverlap(a, before))
}

func TestReservationsOverlap_EmptyTimesExtendToDayEdges(t *testing.T) {
	// A vehicle booking without boundary times occupies its whole days
	a := &Reservation{
		ResourceType: ResourceTypeVehicle,
		StartDate:    date(2026, time.September, 10),
		EndDate:      date(2026, time.September, 10),
		Status:       StatusApproved,
	}
	b := &Reservation{
		ResourceType: ResourceTypeVehicle,
		StartDate:    date(2026, time.September, 10),
		EndDate:      date(2026, time.September, 10),
		StartTime:    "23:00",
		EndTime:      "23:45",
		Status:       StatusPending,
	}
	assert.True(t, ReservationsOverlap(a, b))
}

func TestBlocksSlot(t *testing.T) {
	day := date(2026, time.September, 10)
	r := roomReservation(day, "09:00", "11:00", StatusApproved)

	assert.False(t, r.BlocksSlot(day, "08:45"))
	assert.True(t, r.BlocksSlot(day, "09:00"))
	assert.True(t, r.BlocksSlot(day, "10:45"))
	// The end boundary itself stays bookable
	assert.False(t, r.BlocksSlot(day, "11:00"))
	assert.False(t, r.BlocksSlot(date(2026, time.September, 11), "09:00"))
}
