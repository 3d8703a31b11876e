package close_reservation

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/mobisfm/FM-BookingService/internal/domain"
	reservationRepo "github.com/mobisfm/FM-BookingService/internal/infra/storage/reservation"
)

// UseCase closes out a vehicle reservation: records the end-of-use odometer
// and charge readings, completes the reservation and releases the vehicle.
type UseCase struct {
	reservations ReservationRepository
	resources    ResourceRepository
	txManager    TransactionManager
	logger       Logger
}

// NewUseCase creates the close-out use case
func NewUseCase(
	reservations ReservationRepository,
	resources ResourceRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		reservations: reservations,
		resources:    resources,
		txManager:    txManager,
		logger:       logger,
	}
}

// Execute validates the readings and performs the close-out atomically
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CloseReservation: user=%d, reservation=%d", req.Actor.ID, req.ReservationID)

	if !req.Actor.IsAdmin {
		uc.logger.Warn("CloseReservation: user=%d is not an administrator", req.Actor.ID)
		return nil, ErrAccessDenied
	}
	if req.FinalKilometers < 0 {
		return nil, fmt.Errorf("%w: finalKilometers must not be negative", ErrInvalidInput)
	}
	if req.FinalChargePercent < 0 || req.FinalChargePercent > 100 {
		return nil, fmt.Errorf("%w: finalChargePercent must be between 0 and 100", ErrInvalidInput)
	}

	res, err := uc.reservations.GetByID(ctx, req.ReservationID)
	if err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			uc.logger.Warn("CloseReservation: reservation id=%d not found", req.ReservationID)
			return nil, ErrReservationNotFound
		}
		uc.logger.Error("CloseReservation: failed to get reservation id=%d: %v", req.ReservationID, err)
		return nil, fmt.Errorf("%w: failed to get reservation: %v", ErrInternal, err)
	}

	if res.ResourceType != domain.ResourceTypeVehicle || res.Vehicle == nil {
		return nil, ErrNotVehicle
	}
	if res.Vehicle.IsClosed {
		return nil, ErrAlreadyClosed
	}
	if res.Status != domain.StatusApproved {
		uc.logger.Warn("CloseReservation: reservation id=%d has status %s", res.ID, res.Status)
		return nil, ErrNotApproved
	}
	if req.FinalKilometers < res.Vehicle.InitialKilometers {
		uc.logger.Warn("CloseReservation: reservation id=%d final km %.1f below initial %.1f",
			res.ID, req.FinalKilometers, res.Vehicle.InitialKilometers)
		return nil, ErrKilometersDecreased
	}

	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		if err := uc.reservations.Close(txCtx, res.ID, req.FinalKilometers, req.FinalChargePercent); err != nil {
			uc.logger.Error("CloseReservation: failed to close reservation id=%d: %v", res.ID, err)
			return fmt.Errorf("%w: failed to close reservation: %v", ErrInternal, err)
		}
		if err := uc.resources.UpdateVehicleState(txCtx, res.ResourceID,
			req.FinalKilometers, req.FinalChargePercent, domain.ResourceAvailable); err != nil {
			uc.logger.Error("CloseReservation: failed to update vehicle id=%d: %v", res.ResourceID, err)
			return fmt.Errorf("%w: failed to update vehicle: %v", ErrInternal, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("CloseReservation: closed reservation id=%d, vehicle id=%d released", res.ID, res.ResourceID)
	return &Response{
		ID:                   res.ID,
		ResourceID:           res.ResourceID,
		Status:               domain.StatusCompleted,
		InitialKilometers:    res.Vehicle.InitialKilometers,
		FinalKilometers:      req.FinalKilometers,
		InitialChargePercent: res.Vehicle.InitialChargePercent,
		FinalChargePercent:   req.FinalChargePercent,
		ClosedAt:             time.Now(),
	}, nil
}
