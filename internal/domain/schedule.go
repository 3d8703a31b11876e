package domain

import (
	"time"

	"github.com/mobisfm/FM-BookingService/pkg/types"
)

// ScheduleRule is one row of the per-resource-type open-hours table,
// keyed by (ResourceType, Month, DayOfWeek). At most one rule per key.
type ScheduleRule struct {
	ID           int64
	ResourceType ResourceType
	Month        time.Month // 1-12
	DayOfWeek    int        // 0=Monday .. 6=Sunday
	StartTime    types.TimeString
	EndTime      types.TimeString
	Enabled      bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsClosed reports whether the rule closes the day entirely, either
// explicitly or through the 00:00-00:00 sentinel window
func (r *ScheduleRule) IsClosed() bool {
	return !r.Enabled || (r.StartTime == ClosedTime && r.EndTime == ClosedTime)
}

// Holiday excludes a date from availability for every resource type
type Holiday struct {
	ID      int64
	Day     int
	Month   time.Month
	Year    int
	Comment string
}

// Matches reports whether the holiday falls on the given date
func (h *Holiday) Matches(date time.Time) bool {
	return h.Day == date.Day() && h.Month == date.Month() && h.Year == date.Year()
}

// DayOfWeekFromTime converts Go's Sunday-based weekday to the schedule
// table's Monday-based index (0=Monday .. 6=Sunday)
func DayOfWeekFromTime(t time.Time) int {
	return (int(t.Weekday()) + 6) % 7
}

// DefaultScheduleWindow returns the open-hours window used when no explicit
// schedule rule exists for a key. August runs the reduced summer schedule.
func DefaultScheduleWindow(month time.Month) (types.TimeString, types.TimeString) {
	if month == time.August {
		return AugustOpenTime, AugustCloseTime
	}
	return DefaultOpenTime, DefaultCloseTime
}

// EffectiveWindow resolves the open window for a date given the explicit
// rules of a resource type. The second return is false when the day is
// closed (disabled rule or the 00:00 sentinel).
func EffectiveWindow(rules []*ScheduleRule, date time.Time) (types.TimeString, types.TimeString, bool) {
	month := date.Month()
	dow := DayOfWeekFromTime(date)

	for _, rule := range rules {
		if rule.Month != month || rule.DayOfWeek != dow {
			continue
		}
		if rule.IsClosed() {
			return "", "", false
		}
		return rule.StartTime, rule.EndTime, true
	}

	open, close := DefaultScheduleWindow(month)
	return open, close, true
}
