package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/mobisfm/FM-BookingService/pkg/types"
)

func TestDayOfWeekFromTime(t *testing.T) {
	// 2026-09-07 is a Monday
	assert.Equal(t, 0, DayOfWeekFromTime(time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, 5, DayOfWeekFromTime(time.Date(2026, 9, 12, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, 6, DayOfWeekFromTime(time.Date(2026, 9, 13, 0, 0, 0, 0, time.UTC)))
}

func TestDefaultScheduleWindow(t *testing.T) {
	open, close := DefaultScheduleWindow(time.March)
	assert.Equal(t, DefaultOpenTime, open)
	assert.Equal(t, DefaultCloseTime, close)

	open, close = DefaultScheduleWindow(time.August)
	assert.Equal(t, AugustOpenTime, open)
	assert.Equal(t, AugustCloseTime, close)
}

func TestEffectiveWindow_NoRulesUsesDefaults(t *testing.T) {
	open, close, ok := EffectiveWindow(nil, time.Date(2026, 3, 4, 0, 0, 0, 0, time.UTC))
	assert.True(t, ok)
	assert.Equal(t, DefaultOpenTime, open)
	assert.Equal(t, DefaultCloseTime, close)

	open, close, ok = EffectiveWindow(nil, time.Date(2026, 8, 5, 0, 0, 0, 0, time.UTC))
	assert.True(t, ok)
	assert.Equal(t, AugustOpenTime, open)
	assert.Equal(t, AugustCloseTime, close)
}

func TestEffectiveWindow_ExplicitRuleWins(t *testing.T) {
	// 2026-09-09 is a Wednesday (dow 2)
	rules := []*ScheduleRule{
		{ResourceType: ResourceTypeRoom, Month: time.September, DayOfWeek: 2, StartTime: "10:00", EndTime: "16:00", Enabled: true},
	}

	open, close, ok := EffectiveWindow(rules, time.Date(2026, 9, 9, 0, 0, 0, 0, time.UTC))
	assert.True(t, ok)
	assert.Equal(t, types.TimeString("10:00"), open)
	assert.Equal(t, types.TimeString("16:00"), close)

	// Other weekdays of the month still fall back to the defaults
	open, close, ok = EffectiveWindow(rules, time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC))
	assert.True(t, ok)
	assert.Equal(t, DefaultOpenTime, open)
	assert.Equal(t, DefaultCloseTime, close)
}

func TestEffectiveWindow_ClosedDay(t *testing.T) {
	disabled := []*ScheduleRule{
		{Month: time.September, DayOfWeek: 5, Enabled: false, StartTime: "09:00", EndTime: "13:00"},
	}
	_, _, ok := EffectiveWindow(disabled, time.Date(2026, 9, 12, 0, 0, 0, 0, time.UTC))
	assert.False(t, ok)

	sentinel := []*ScheduleRule{
		{Month: time.September, DayOfWeek: 6, Enabled: true, StartTime: ClosedTime, EndTime: ClosedTime},
	}
	_, _, ok = EffectiveWindow(sentinel, time.Date(2026, 9, 13, 0, 0, 0, 0, time.UTC))
	assert.False(t, ok)
}

func TestHolidayMatches(t *testing.T) {
	h := &Holiday{Day: 25, Month: time.December, Year: 2026}
	assert.True(t, h.Matches(time.Date(2026, 12, 25, 0, 0, 0, 0, time.UTC)))
	assert.False(t, h.Matches(time.Date(2025, 12, 25, 0, 0, 0, 0, time.UTC)))
	assert.False(t, h.Matches(time.Date(2026, 12, 24, 0, 0, 0, 0, time.UTC)))
}
