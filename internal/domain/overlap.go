package domain

import (
	"time"

	"github.com/mobisfm/FM-BookingService/pkg/types"
)

const endOfDayMinutes = 24 * 60

// IntervalsOverlap is the half-open interval intersection test: two ranges
// [s1,e1) and [s2,e2) intersect iff s1 < e2 && s2 < e1. Touching
// boundaries do not intersect, which is what allows back-to-back bookings.
func IntervalsOverlap(s1, e1, s2, e2 int) bool {
	return s1 < e2 && s2 < e1
}

// minuteWindowOn returns the minute range a reservation occupies on the
// given calendar day. Boundary days use the reservation's own times; any
// interior day of a multi-day range is fully occupied. Times left empty
// (vehicle bookings without boundary times) extend to the day edges.
func minuteWindowOn(r *Reservation, day time.Time) (int, int, bool) {
	d := DateOnly(day)
	if d.Before(DateOnly(r.StartDate)) || d.After(DateOnly(r.EndDate)) {
		return 0, 0, false
	}

	start := 0
	if SameDay(d, r.StartDate) && !r.StartTime.IsZero() {
		m, err := r.StartTime.Minutes()
		if err != nil {
			return 0, 0, false
		}
		start = m
	}

	end := endOfDayMinutes
	if SameDay(d, r.EndDate) && !r.EndTime.IsZero() {
		m, err := r.EndTime.Minutes()
		if err != nil {
			return 0, 0, false
		}
		end = m
	}

	return start, end, true
}

// ReservationsOverlap reports whether two reservations of the same
// resource intersect. Date ranges must overlap, and on shared boundary
// dates the time ranges must also overlap; interior days count as fully
// occupied.
func ReservationsOverlap(a, b *Reservation) bool {
	first := DateOnly(maxTime(a.StartDate, b.StartDate))
	last := DateOnly(minTime(a.EndDate, b.EndDate))
	if first.After(last) {
		return false
	}

	for day := first; !day.After(last); day = day.AddDate(0, 0, 1) {
		s1, e1, ok := minuteWindowOn(a, day)
		if !ok {
			continue
		}
		s2, e2, ok := minuteWindowOn(b, day)
		if !ok {
			continue
		}
		if IntervalsOverlap(s1, e1, s2, e2) {
			return true
		}
	}
	return false
}

// BlocksSlot reports whether the reservation occupies the slot starting at
// t on the given date: blocked iff start <= t < end, so the interval's own
// end boundary stays free.
func (r *Reservation) BlocksSlot(date time.Time, t types.TimeString) bool {
	start, end, ok := minuteWindowOn(r, date)
	if !ok {
		return false
	}
	m, err := t.Minutes()
	if err != nil {
		return false
	}
	return start <= m && m < end
}

func maxTime(a, b time.Time) time.Time {
	if a.After(b) {
		return a
	}
	return b
}

func minTime(a, b time.Time) time.Time {
	if a.Before(b) {
		return a
	}
	return b
}
