package create_booking

import (
	"fmt"

	"github.com/mobisfm/FM-BookingService/internal/domain"
)

// validateRequest covers the first two validator steps: required field
// presence and range ordering. Later steps need repository data and run in
// the use case body.
func validateRequest(req *Request) error {
	if !req.ResourceType.Valid() {
		return fmt.Errorf("%w: unknown resource type %q", ErrInvalidInput, req.ResourceType)
	}
	if req.ResourceID <= 0 {
		return fmt.Errorf("%w: missing field resourceId", ErrInvalidInput)
	}
	if req.Actor.ID <= 0 {
		return fmt.Errorf("%w: missing field userId", ErrInvalidInput)
	}
	if req.StartDate.IsZero() {
		return fmt.Errorf("%w: missing field startDate", ErrInvalidInput)
	}
	if req.EndDate.IsZero() {
		return fmt.Errorf("%w: missing field endDate", ErrInvalidInput)
	}
	if req.Purpose == "" {
		return fmt.Errorf("%w: missing field purpose", ErrInvalidInput)
	}
	if len(req.Purpose) > domain.MaxPurposeLength {
		return fmt.Errorf("%w: purpose too long", ErrInvalidInput)
	}

	if req.ResourceType == domain.ResourceTypeRoom {
		if req.StartTime.IsZero() {
			return fmt.Errorf("%w: missing field startTime", ErrInvalidInput)
		}
		if req.EndTime.IsZero() {
			return fmt.Errorf("%w: missing field endTime", ErrInvalidInput)
		}
		if req.Attendees == nil {
			return fmt.Errorf("%w: missing field attendees", ErrInvalidInput)
		}
		if *req.Attendees < domain.MinAttendees {
			return fmt.Errorf("%w: attendees must be at least %d", ErrInvalidInput, domain.MinAttendees)
		}
		if !domain.SameDay(req.StartDate, req.EndDate) {
			return fmt.Errorf("%w: room bookings are single-date", ErrInvalidInput)
		}
	}

	if !req.StartTime.IsZero() {
		if err := req.StartTime.Validate(); err != nil {
			return fmt.Errorf("%w: invalid startTime: %v", ErrInvalidInput, err)
		}
	}
	if !req.EndTime.IsZero() {
		if err := req.EndTime.Validate(); err != nil {
			return fmt.Errorf("%w: invalid endTime: %v", ErrInvalidInput, err)
		}
	}

	return validateRange(req)
}

// validateRange enforces end-after-start ordering
func validateRange(req *Request) error {
	startDay := domain.DateOnly(req.StartDate)
	endDay := domain.DateOnly(req.EndDate)

	if endDay.Before(startDay) {
		return ErrEndBeforeStart
	}
	if startDay.Equal(endDay) && !req.StartTime.IsZero() && !req.EndTime.IsZero() {
		if !req.EndTime.IsAfter(req.StartTime) {
			return ErrEndBeforeStart
		}
	}
	return nil
}

// candidateReservation builds the domain record the overlap test and the
// insert both use
func candidateReservation(req *Request) *domain.Reservation {
	return &domain.Reservation{
		ResourceType: req.ResourceType,
		ResourceID:   req.ResourceID,
		UserID:       req.Actor.ID,
		UserName:     req.Actor.Name,
		StartDate:    domain.DateOnly(req.StartDate),
		EndDate:      domain.DateOnly(req.EndDate),
		StartTime:    req.StartTime,
		EndTime:      req.EndTime,
		Purpose:      req.Purpose,
		Attendees:    req.Attendees,
	}
}

// findConflict returns the first blocking reservation overlapping the
// candidate, skipping the excluded id (the record being edited)
func findConflict(candidate *domain.Reservation, existing []*domain.Reservation, excludeID int64) *domain.Reservation {
	for _, res := range existing {
		if excludeID != 0 && res.ID == excludeID {
			continue
		}
		if !res.IsBlocking() {
			continue
		}
		if domain.ReservationsOverlap(candidate, res) {
			return res
		}
	}
	return nil
}
