package update_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/mobisfm/FM-BookingService/internal/domain"
	reservationRepo "github.com/mobisfm/FM-BookingService/internal/infra/storage/reservation"
	resourceRepo "github.com/mobisfm/FM-BookingService/internal/infra/storage/resource"
	scheduleRepo "github.com/mobisfm/FM-BookingService/internal/infra/storage/schedule"
	"github.com/mobisfm/FM-BookingService/pkg/ptr"
)

// UseCase is the reservation edit path. It re-runs the booking validator
// chain with the edited record excluded from the overlap check.
type UseCase struct {
	reservations ReservationRepository
	resources    ResourceRepository
	schedule     ScheduleRepository
	txManager    TransactionManager
	logger       Logger
}

// NewUseCase creates the edit use case
func NewUseCase(
	reservations ReservationRepository,
	resources ResourceRepository,
	schedule ScheduleRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		reservations: reservations,
		resources:    resources,
		schedule:     schedule,
		txManager:    txManager,
		logger:       logger,
	}
}

// Execute validates and persists the edit
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("UpdateBooking: user=%d, reservation=%d", req.Actor.ID, req.ReservationID)

	existing, err := uc.reservations.GetByID(ctx, req.ReservationID)
	if err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			uc.logger.Warn("UpdateBooking: reservation id=%d not found", req.ReservationID)
			return nil, ErrReservationNotFound
		}
		uc.logger.Error("UpdateBooking: failed to get reservation id=%d: %v", req.ReservationID, err)
		return nil, fmt.Errorf("%w: failed to get reservation: %v", ErrInternal, err)
	}

	if existing.UserID != req.Actor.ID && !req.Actor.IsAdmin {
		uc.logger.Warn("UpdateBooking: user=%d may not edit reservation id=%d", req.Actor.ID, existing.ID)
		return nil, ErrAccessDenied
	}
	if !existing.CanBeEditedBy(req.Actor) {
		uc.logger.Warn("UpdateBooking: reservation id=%d not editable in status %s", existing.ID, existing.Status)
		return nil, ErrNotEditable
	}

	candidate := *existing
	candidate.StartDate = domain.DateOnly(req.StartDate)
	candidate.EndDate = domain.DateOnly(req.EndDate)
	candidate.StartTime = req.StartTime
	candidate.EndTime = req.EndTime
	candidate.Purpose = req.Purpose
	candidate.Attendees = req.Attendees

	if err := uc.validate(req, &candidate); err != nil {
		uc.logger.Warn("UpdateBooking: validation failed: %v", err)
		return nil, err
	}
	if err := uc.checkResource(ctx, &candidate); err != nil {
		return nil, err
	}

	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		if err := uc.checkSchedule(txCtx, &candidate); err != nil {
			return err
		}

		others, err := uc.reservations.GetWithFilter(txCtx, domain.ReservationFilter{
			ResourceType: candidate.ResourceType,
			ResourceID:   ptr.Ptr(candidate.ResourceID),
			StartDate:    ptr.Ptr(candidate.StartDate),
			EndDate:      ptr.Ptr(candidate.EndDate),
		})
		if err != nil {
			uc.logger.Error("UpdateBooking: failed to get reservations: %v", err)
			return fmt.Errorf("%w: failed to get reservations: %v", ErrInternal, err)
		}

		// The record being edited never conflicts with itself
		for _, other := range others {
			if other.ID == candidate.ID || !other.IsBlocking() {
				continue
			}
			if domain.ReservationsOverlap(&candidate, other) {
				uc.logger.Warn("UpdateBooking: conflict with reservation id=%d", other.ID)
				return ErrConflict
			}
		}

		if err := uc.reservations.Update(txCtx, &candidate); err != nil {
			uc.logger.Error("UpdateBooking: failed to update reservation id=%d: %v", candidate.ID, err)
			return fmt.Errorf("%w: failed to update reservation: %v", ErrInternal, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("UpdateBooking: updated reservation id=%d", candidate.ID)
	return FromDomain(&candidate), nil
}

func (uc *UseCase) validate(req *Request, candidate *domain.Reservation) error {
	if req.StartDate.IsZero() {
		return fmt.Errorf("%w: missing field startDate", ErrInvalidInput)
	}
	if req.EndDate.IsZero() {
		return fmt.Errorf("%w: missing field endDate", ErrInvalidInput)
	}
	if req.Purpose == "" {
		return fmt.Errorf("%w: missing field purpose", ErrInvalidInput)
	}

	if candidate.ResourceType == domain.ResourceTypeRoom {
		if req.StartTime.IsZero() || req.EndTime.IsZero() {
			return fmt.Errorf("%w: missing field startTime/endTime", ErrInvalidInput)
		}
		if req.Attendees == nil || *req.Attendees < domain.MinAttendees {
			return fmt.Errorf("%w: missing field attendees", ErrInvalidInput)
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

	if candidate.EndDate.Before(candidate.StartDate) {
		return ErrEndBeforeStart
	}
	if candidate.StartDate.Equal(candidate.EndDate) && !req.StartTime.IsZero() && !req.EndTime.IsZero() {
		if !req.EndTime.IsAfter(req.StartTime) {
			return ErrEndBeforeStart
		}
	}
	return nil
}

func (uc *UseCase) checkResource(ctx context.Context, candidate *domain.Reservation) error {
	switch candidate.ResourceType {
	case domain.ResourceTypeRoom:
		room, err := uc.resources.GetRoom(ctx, candidate.ResourceID)
		if err != nil {
			return uc.mapResourceErr(err, candidate.ResourceID)
		}
		if !room.Status.Bookable() {
			return ErrResourceUnavailable
		}
		if *candidate.Attendees > room.MaxCapacity {
			return ErrCapacityExceeded
		}
	default:
		vehicle, err := uc.resources.GetVehicle(ctx, candidate.ResourceID)
		if err != nil {
			return uc.mapResourceErr(err, candidate.ResourceID)
		}
		// A vehicle already in use by this very reservation stays editable
		if !vehicle.Status.Bookable() && vehicle.Status != domain.ResourceInUse {
			return ErrResourceUnavailable
		}
		if vehicle.HasReservationDayLimit() && candidate.DaySpan() > vehicle.MaxReservationDays {
			return ErrExceedsMaxDays
		}
	}
	return nil
}

func (uc *UseCase) checkSchedule(ctx context.Context, candidate *domain.Reservation) error {
	_, err := uc.schedule.GetHolidayByDate(ctx, candidate.StartDate.Day(), int(candidate.StartDate.Month()), candidate.StartDate.Year())
	if err == nil {
		return ErrHoliday
	}
	if !errors.Is(err, scheduleRepo.ErrHolidayNotFound) {
		return fmt.Errorf("%w: failed to check holiday: %v", ErrInternal, err)
	}

	if candidate.ResourceType != domain.ResourceTypeRoom {
		return nil
	}

	rules, err := uc.schedule.ListRules(ctx, candidate.ResourceType)
	if err != nil {
		return fmt.Errorf("%w: failed to list schedule rules: %v", ErrInternal, err)
	}
	openTime, closeTime, open := domain.EffectiveWindow(rules, candidate.StartDate)
	if !open {
		return ErrOutsideOpenHours
	}
	if candidate.StartTime.IsBefore(openTime) || candidate.EndTime.IsAfter(closeTime) {
		return ErrOutsideOpenHours
	}
	return nil
}

func (uc *UseCase) mapResourceErr(err error, id int64) error {
	if errors.Is(err, resourceRepo.ErrResourceNotFound) {
		uc.logger.Warn("UpdateBooking: resource id=%d not found", id)
		return ErrResourceUnavailable
	}
	uc.logger.Error("UpdateBooking: failed to get resource id=%d: %v", id, err)
	return fmt.Errorf("%w: failed to get resource: %v", ErrInternal, err)
}
