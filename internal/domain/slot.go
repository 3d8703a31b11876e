package domain

import (
	"time"

	"github.com/mobisfm/FM-BookingService/pkg/types"
)

// GenerateSlots turns an open-hours window into the ordered sequence of
// bookable time points spaced by granularityMinutes, inclusive of both
// endpoints. A degenerate window (start after end) yields an empty
// sequence; an instant window (start == end) yields exactly one slot.
func GenerateSlots(start, end types.TimeString, granularityMinutes int) ([]types.TimeString, error) {
	startMin, err := start.Minutes()
	if err != nil {
		return nil, err
	}
	endMin, err := end.Minutes()
	if err != nil {
		return nil, err
	}

	slots := make([]types.TimeString, 0)
	if startMin > endMin || granularityMinutes <= 0 {
		return slots, nil
	}

	for m := startMin; m <= endMin; m += granularityMinutes {
		slot, err := types.NewTimeStringFromMinutes(m)
		if err != nil {
			return nil, err
		}
		slots = append(slots, slot)
	}
	return slots, nil
}

// FilterPastSlots drops every slot at or before now, with the cutoff
// rounded up to the next granularity boundary. A slot beginning exactly
// now is therefore excluded.
func FilterPastSlots(slots []types.TimeString, now time.Time, granularityMinutes int) []types.TimeString {
	nowMin := now.Hour()*60 + now.Minute()
	cutoff := (nowMin/granularityMinutes + 1) * granularityMinutes

	kept := make([]types.TimeString, 0, len(slots))
	for _, slot := range slots {
		m, err := slot.Minutes()
		if err != nil {
			continue
		}
		if m >= cutoff {
			kept = append(kept, slot)
		}
	}
	return kept
}
