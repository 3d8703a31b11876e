package get_available_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/mobisfm/FM-BookingService/internal/domain"
	resourceRepo "github.com/mobisfm/FM-BookingService/internal/infra/storage/resource"
	scheduleRepo "github.com/mobisfm/FM-BookingService/internal/infra/storage/schedule"
	"github.com/mobisfm/FM-BookingService/pkg/ptr"
	"github.com/mobisfm/FM-BookingService/pkg/types"
)

// UseCase computes the free slots of a resource on a date
type UseCase struct {
	reservationRepo ReservationRepository
	resourceRepo    ResourceRepository
	scheduleRepo    ScheduleRepository
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase creates the availability use case
func NewUseCase(
	reservationRepo ReservationRepository,
	resourceRepo ResourceRepository,
	scheduleRepo ScheduleRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepo,
		resourceRepo:    resourceRepo,
		scheduleRepo:    scheduleRepo,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute resolves the day's open window, generates the slot grid and drops
// every slot in the past or inside a blocking reservation
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: type=%s, resource=%d, date=%s",
		req.ResourceType, req.ResourceID, req.Date.Format(domain.DateFormat))

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	now := uc.timeProvider.Now()

	// 1. Resource must exist; a resource that is not bookable simply offers
	// no slots rather than erroring
	status, err := uc.resourceStatus(ctx, req.ResourceType, req.ResourceID)
	if err != nil {
		return nil, err
	}
	if !status.Bookable() {
		uc.logger.Info("GetAvailableSlots: resource %d is %s, no slots offered", req.ResourceID, status)
		return uc.emptyResponse(req), nil
	}

	// 2. Holidays exclude the date entirely, regardless of schedule rules
	_, err = uc.scheduleRepo.GetHolidayByDate(ctx, req.Date.Day(), int(req.Date.Month()), req.Date.Year())
	if err == nil {
		uc.logger.Info("GetAvailableSlots: %s is a holiday", req.Date.Format(domain.DateFormat))
		return uc.emptyResponse(req), nil
	}
	if !errors.Is(err, scheduleRepo.ErrHolidayNotFound) {
		uc.logger.Error("GetAvailableSlots: failed to check holiday: %v", err)
		return nil, fmt.Errorf("%w: failed to check holiday: %v", ErrInternal, err)
	}

	// 3. Resolve the open window: explicit rule or centralized default
	rules, err := uc.scheduleRepo.ListRules(ctx, req.ResourceType)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to list schedule rules: %v", err)
		return nil, fmt.Errorf("%w: failed to list schedule rules: %v", ErrInternal, err)
	}

	openTime, closeTime, open := domain.EffectiveWindow(rules, req.Date)
	if !open {
		uc.logger.Info("GetAvailableSlots: day is closed by schedule rule")
		return uc.emptyResponse(req), nil
	}

	// 4. Generate the slot grid, inclusive of both window endpoints
	slots, err := domain.GenerateSlots(openTime, closeTime, domain.SlotGranularityMinutes)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to generate slots: %v", err)
		return nil, fmt.Errorf("%w: failed to generate slots: %v", ErrInternal, err)
	}

	// 5. For today, drop slots at or before now (cutoff rounded up to the
	// next granularity boundary)
	if domain.SameDay(req.Date, now) {
		slots = domain.FilterPastSlots(slots, now, domain.SlotGranularityMinutes)
	}

	// 6. Drop slots inside blocking reservations; the interval end boundary
	// stays free so back-to-back bookings work
	reservations, err := uc.reservationRepo.GetWithFilter(ctx, domain.ReservationFilter{
		ResourceType: req.ResourceType,
		ResourceID:   ptr.Ptr(req.ResourceID),
		StartDate:    ptr.Ptr(domain.DateOnly(req.Date)),
		EndDate:      ptr.Ptr(domain.DateOnly(req.Date)),
	})
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get reservations: %v", err)
		return nil, fmt.Errorf("%w: failed to get reservations: %v", ErrInternal, err)
	}

	free := make([]types.TimeString, 0, len(slots))
	for _, slot := range slots {
		if blockedBy(reservations, req, slot) {
			continue
		}
		free = append(free, slot)
	}

	uc.logger.Info("GetAvailableSlots: %d free of %d generated slots for resource=%d date=%s",
		len(free), len(slots), req.ResourceID, req.Date.Format(domain.DateFormat))

	return &Response{
		ResourceType:       req.ResourceType,
		ResourceID:         req.ResourceID,
		Date:               req.Date,
		GranularityMinutes: domain.SlotGranularityMinutes,
		Slots:              free,
	}, nil
}

func blockedBy(reservations []*domain.Reservation, req *Request, slot types.TimeString) bool {
	for _, res := range reservations {
		if !res.IsBlocking() {
			continue
		}
		if res.BlocksSlot(req.Date, slot) {
			return true
		}
	}
	return false
}

func (uc *UseCase) resourceStatus(ctx context.Context, resourceType domain.ResourceType, id int64) (domain.ResourceStatus, error) {
	switch resourceType {
	case domain.ResourceTypeRoom:
		room, err := uc.resourceRepo.GetRoom(ctx, id)
		if err != nil {
			return "", uc.mapResourceErr(err, id)
		}
		return room.Status, nil
	default:
		vehicle, err := uc.resourceRepo.GetVehicle(ctx, id)
		if err != nil {
			return "", uc.mapResourceErr(err, id)
		}
		return vehicle.Status, nil
	}
}

func (uc *UseCase) mapResourceErr(err error, id int64) error {
	if errors.Is(err, resourceRepo.ErrResourceNotFound) {
		uc.logger.Warn("GetAvailableSlots: resource id=%d not found", id)
		return ErrResourceNotFound
	}
	uc.logger.Error("GetAvailableSlots: failed to get resource id=%d: %v", id, err)
	return fmt.Errorf("%w: failed to get resource: %v", ErrInternal, err)
}

func (uc *UseCase) emptyResponse(req *Request) *Response {
	return &Response{
		ResourceType:       req.ResourceType,
		ResourceID:         req.ResourceID,
		Date:               req.Date,
		GranularityMinutes: domain.SlotGranularityMinutes,
		Slots:              []types.TimeString{},
	}
}
