package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/mobisfm/FM-BookingService/internal/domain"
	resourceRepo "github.com/mobisfm/FM-BookingService/internal/infra/storage/resource"
	scheduleRepo "github.com/mobisfm/FM-BookingService/internal/infra/storage/schedule"
	"github.com/mobisfm/FM-BookingService/pkg/ptr"
)

// UseCase creates a reservation after running the full validator chain
type UseCase struct {
	reservationRepo ReservationRepository
	resourceRepo    ResourceRepository
	scheduleRepo    ScheduleRepository
	txManager       TransactionManager
	logger          Logger
}

// NewUseCase creates the booking use case
func NewUseCase(
	reservationRepo ReservationRepository,
	resourceRepo ResourceRepository,
	scheduleRepo ScheduleRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepo,
		resourceRepo:    resourceRepo,
		scheduleRepo:    scheduleRepo,
		txManager:       txManager,
		logger:          logger,
	}
}

// Execute validates the candidate and persists it. The overlap check and
// the insert share a serializable transaction so two concurrent requests
// for the same range cannot both pass.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: user=%d, type=%s, resource=%d, start=%s, end=%s",
		req.Actor.ID, req.ResourceType, req.ResourceID,
		req.StartDate.Format(domain.DateFormat), req.EndDate.Format(domain.DateFormat))

	// 1-2. Field presence and range ordering
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 3-5. Resource existence, status, capacity and duration limits
	candidate := candidateReservation(req)
	if err := uc.checkResource(ctx, req, candidate); err != nil {
		return nil, err
	}

	// Non-admin actors create pending reservations awaiting an admin
	// decision; admin-created reservations are approved immediately
	if req.Actor.IsAdmin {
		candidate.Status = domain.StatusApproved
	} else {
		candidate.Status = domain.StatusPending
	}

	var created *domain.Reservation
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 6. Schedule exclusions at write time
		if err := uc.checkSchedule(txCtx, req); err != nil {
			return err
		}

		// 7. Overlap against every blocking reservation of the resource
		existing, err := uc.reservationRepo.GetWithFilter(txCtx, domain.ReservationFilter{
			ResourceType: req.ResourceType,
			ResourceID:   ptr.Ptr(req.ResourceID),
			StartDate:    ptr.Ptr(candidate.StartDate),
			EndDate:      ptr.Ptr(candidate.EndDate),
		})
		if err != nil {
			uc.logger.Error("CreateBooking: failed to get reservations: %v", err)
			return fmt.Errorf("%w: failed to get reservations: %v", ErrInternal, err)
		}

		if conflict := findConflict(candidate, existing, 0); conflict != nil {
			uc.logger.Warn("CreateBooking: conflict with reservation id=%d (status=%s)",
				conflict.ID, conflict.Status)
			return ErrConflict
		}

		created, err = uc.reservationRepo.Create(txCtx, candidate)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to create reservation: %v", err)
			return fmt.Errorf("%w: failed to create reservation: %v", ErrInternal, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateBooking: created reservation id=%d status=%s", created.ID, created.Status)
	return FromDomain(created), nil
}

// checkResource runs validator steps 3-5 and, for vehicles, snapshots the
// current readings into the candidate's usage payload
func (uc *UseCase) checkResource(ctx context.Context, req *Request, candidate *domain.Reservation) error {
	switch req.ResourceType {
	case domain.ResourceTypeRoom:
		room, err := uc.resourceRepo.GetRoom(ctx, req.ResourceID)
		if err != nil {
			return uc.mapResourceErr(err, req.ResourceID)
		}
		if !room.Status.Bookable() {
			uc.logger.Warn("CreateBooking: room id=%d is %s", room.ID, room.Status)
			return ErrResourceUnavailable
		}
		if *req.Attendees > room.MaxCapacity {
			uc.logger.Warn("CreateBooking: %d attendees exceed capacity %d of room id=%d",
				*req.Attendees, room.MaxCapacity, room.ID)
			return ErrCapacityExceeded
		}

	default:
		vehicle, err := uc.resourceRepo.GetVehicle(ctx, req.ResourceID)
		if err != nil {
			return uc.mapResourceErr(err, req.ResourceID)
		}
		if !vehicle.Status.Bookable() {
			uc.logger.Warn("CreateBooking: vehicle id=%d is %s", vehicle.ID, vehicle.Status)
			return ErrResourceUnavailable
		}
		if vehicle.HasReservationDayLimit() && candidate.DaySpan() > vehicle.MaxReservationDays {
			uc.logger.Warn("CreateBooking: %d days exceed limit %d of vehicle id=%d",
				candidate.DaySpan(), vehicle.MaxReservationDays, vehicle.ID)
			return ErrExceedsMaxDays
		}
		candidate.Vehicle = &domain.VehicleUsage{
			InitialKilometers:    vehicle.CurrentKilometers,
			InitialChargePercent: vehicle.ChargePercent,
		}
	}
	return nil
}

// checkSchedule rejects holiday dates and, for rooms, times outside the
// effective open window
func (uc *UseCase) checkSchedule(ctx context.Context, req *Request) error {
	_, err := uc.scheduleRepo.GetHolidayByDate(ctx, req.StartDate.Day(), int(req.StartDate.Month()), req.StartDate.Year())
	if err == nil {
		uc.logger.Warn("CreateBooking: %s is a holiday", req.StartDate.Format(domain.DateFormat))
		return ErrHoliday
	}
	if !errors.Is(err, scheduleRepo.ErrHolidayNotFound) {
		uc.logger.Error("CreateBooking: failed to check holiday: %v", err)
		return fmt.Errorf("%w: failed to check holiday: %v", ErrInternal, err)
	}

	if req.ResourceType != domain.ResourceTypeRoom {
		return nil
	}

	rules, err := uc.scheduleRepo.ListRules(ctx, req.ResourceType)
	if err != nil {
		uc.logger.Error("CreateBooking: failed to list schedule rules: %v", err)
		return fmt.Errorf("%w: failed to list schedule rules: %v", ErrInternal, err)
	}

	openTime, closeTime, open := domain.EffectiveWindow(rules, req.StartDate)
	if !open {
		uc.logger.Warn("CreateBooking: day is closed by schedule rule")
		return ErrOutsideOpenHours
	}
	if req.StartTime.IsBefore(openTime) || req.EndTime.IsAfter(closeTime) {
		uc.logger.Warn("CreateBooking: %s-%s outside open window %s-%s",
			req.StartTime, req.EndTime, openTime, closeTime)
		return ErrOutsideOpenHours
	}
	return nil
}

func (uc *UseCase) mapResourceErr(err error, id int64) error {
	if errors.Is(err, resourceRepo.ErrResourceNotFound) {
		uc.logger.Warn("CreateBooking: resource id=%d not found", id)
		return ErrResourceNotFound
	}
	uc.logger.Error("CreateBooking: failed to get resource id=%d: %v", id, err)
	return fmt.Errorf("%w: failed to get resource: %v", ErrInternal, err)
}
