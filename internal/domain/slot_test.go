package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mobisfm/FM-BookingService/pkg/types"
)

func TestGenerateSlots(t *testing.T) {
	// Standard day: 07:30-17:30 at 15 minutes, both endpoints included
	slots, err := GenerateSlots(DefaultOpenTime, DefaultCloseTime, SlotGranularityMinutes)
	require.NoError(t, err)
	assert.Len(t, slots, 41)
	assert.Equal(t, types.TimeString("07:30"), slots[0])
	assert.Equal(t, types.TimeString("07:45"), slots[1])
	assert.Equal(t, types.TimeString("17:30"), slots[len(slots)-1])
}

func TestGenerateSlots_AugustWindow(t *testing.T) {
	// Summer schedule 07:00-14:00 yields 7h * 4 + 1 = 29 slots
	slots, err := GenerateSlots(AugustOpenTime, AugustCloseTime, SlotGranularityMinutes)
	require.NoError(t, err)
	assert.Len(t, slots, 29)
	assert.Equal(t, types.TimeString("07:00"), slots[0])
	assert.Equal(t, types.TimeString("14:00"), slots[28])
}

func TestGenerateSlots_DegenerateWindows(t *testing.T) {
	// Instant window yields exactly one slot
	slots, err := GenerateSlots("10:00", "10:00", SlotGranularityMinutes)
	require.NoError(t, err)
	assert.Equal(t, []types.TimeString{"10:00"}, slots)

	// Inverted window yields none
	slots, err = GenerateSlots("11:00", "10:00", SlotGranularityMinutes)
	require.NoError(t, err)
	assert.Empty(t, slots)
}

func TestFilterPastSlots(t *testing.T) {
	slots, err := GenerateSlots("09:00", "10:00", SlotGranularityMinutes)
	require.NoError(t, err)

	// 09:20 rounds up to 09:30, so 09:00 and 09:15 fall away
	now := time.Date(2026, 8, 15, 9, 20, 0, 0, time.UTC)
	kept := FilterPastSlots(slots, now, SlotGranularityMinutes)
	assert.Equal(t, []types.TimeString{"09:30", "09:45", "10:00"}, kept)
}

func TestFilterPastSlots_ExactBoundary(t *testing.T) {
	slots, err := GenerateSlots("09:00", "10:00", SlotGranularityMinutes)
	require.NoError(t, err)

	// A slot beginning exactly now is already in the past
	now := time.Date(2026, 8, 15, 9, 30, 0, 0, time.UTC)
	kept := FilterPastSlots(slots, now, SlotGranularityMinutes)
	assert.Equal(t, []types.TimeString{"09:45", "10:00"}, kept)
}

func TestFilterPastSlots_AllPast(t *testing.T) {
	slots, err := GenerateSlots("09:00", "10:00", SlotGranularityMinutes)
	require.NoError(t, err)

	now := time.Date(2026, 8, 15, 18, 0, 0, 0, time.UTC)
	kept := FilterPastSlots(slots, now, SlotGranularityMinutes)
	assert.Empty(t, kept)
}
