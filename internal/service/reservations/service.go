package reservations

import (
	"context"
	"errors"
	"fmt"

	"github.com/mobisfm/FM-BookingService/internal/domain"
	reservationRepo "github.com/mobisfm/FM-BookingService/internal/infra/storage/reservation"
	"github.com/mobisfm/FM-BookingService/internal/service/reservations/models"
)

// Service reads reservations and drives their lifecycle transitions.
// Vehicle close-out is a separate use case since it also records readings.
type Service struct {
	reservationRepo ReservationRepository
	resourceRepo    ResourceRepository
	txManager       TransactionManager
	logger          Logger
}

// NewService creates the reservations service
func NewService(
	reservationRepo ReservationRepository,
	resourceRepo ResourceRepository,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		reservationRepo: reservationRepo,
		resourceRepo:    resourceRepo,
		txManager:       txManager,
		logger:          logger,
	}
}

// GetByID fetches a reservation. Owners see their own records, admins any.
func (s *Service) GetByID(ctx context.Context, id int64, actor domain.Actor) (*models.ReservationResponse, error) {
	s.logger.Info("GetByID: fetching reservation id=%d for user=%d", id, actor.ID)

	res, err := s.reservationRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("GetByID: reservation id=%d not found", id)
			return nil, ErrReservationNotFound
		}
		s.logger.Error("GetByID: repository error for reservation id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	if res.UserID != actor.ID && !actor.IsAdmin {
		s.logger.Warn("GetByID: access denied for user=%d to reservation id=%d", actor.ID, id)
		return nil, ErrAccessDenied
	}

	return models.FromDomainReservation(res), nil
}

// GetUserReservations fetches a user's reservation history. Non-admins may
// only list their own.
func (s *Service) GetUserReservations(ctx context.Context, req *models.GetUserReservationsRequest) (*models.ReservationListResponse, error) {
	s.logger.Info("GetUserReservations: fetching reservations for user=%d, requested by user=%d", req.UserID, req.Actor.ID)

	if req.UserID != req.Actor.ID && !req.Actor.IsAdmin {
		s.logger.Warn("GetUserReservations: access denied for user=%d to history of user=%d", req.Actor.ID, req.UserID)
		return nil, ErrAccessDenied
	}

	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("GetUserReservations: invalid filter for user=%d: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: invalid filter", ErrInvalidInput)
	}

	list, err := s.reservationRepo.GetWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("GetUserReservations: repository error for user=%d: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: GetUserReservations - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetUserReservations: fetched %d reservations for user=%d", len(list), req.UserID)
	return models.FromDomainReservationList(list), nil
}

// Transition moves a reservation to the requested status. Approve and
// reject are admin operations; cancel is open to the owner while the
// reservation is pending. Approving a vehicle reservation puts the vehicle
// in use; cancelling an approved one releases it again.
func (s *Service) Transition(ctx context.Context, reservationID int64, req *models.TransitionRequest) (*models.ReservationResponse, error) {
	s.logger.Info("Transition: moving reservation id=%d to status=%s by user=%d", reservationID, req.Status, req.Actor.ID)

	target, err := models.ToDomainStatus(req.Status)
	if err != nil {
		s.logger.Warn("Transition: invalid status=%s for reservation id=%d", req.Status, reservationID)
		return nil, ErrInvalidStatus
	}

	res, err := s.reservationRepo.GetByID(ctx, reservationID)
	if err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("Transition: reservation id=%d not found", reservationID)
			return nil, ErrReservationNotFound
		}
		s.logger.Error("Transition: repository error for reservation id=%d: %v", reservationID, err)
		return nil, fmt.Errorf("%w: Transition - repository error: %v", ErrInternal, err)
	}

	if !domain.CanTransition(res.Status, target) {
		s.logger.Warn("Transition: reservation id=%d cannot move %s -> %s", reservationID, res.Status, target)
		return nil, ErrInvalidTransition
	}
	if err := s.checkTransitionAccess(res, target, req.Actor); err != nil {
		s.logger.Warn("Transition: access denied for user=%d on reservation id=%d", req.Actor.ID, reservationID)
		return nil, err
	}

	err = s.txManager.Do(ctx, func(txCtx context.Context) error {
		if target == domain.StatusCancelled {
			if err := s.reservationRepo.Cancel(txCtx, res.ID, req.Reason); err != nil {
				return fmt.Errorf("%w: Transition - cancel error: %v", ErrInternal, err)
			}
		} else {
			if err := s.reservationRepo.UpdateStatus(txCtx, res.ID, target); err != nil {
				return fmt.Errorf("%w: Transition - update error: %v", ErrInternal, err)
			}
		}
		return s.applyVehicleSideEffect(txCtx, res, target)
	})
	if err != nil {
		s.logger.Error("Transition: failed to move reservation id=%d to %s: %v", reservationID, target, err)
		return nil, err
	}

	res.Status = target
	if target == domain.StatusCancelled && req.Reason != "" {
		res.CancellationReason = &req.Reason
	}

	s.logger.Info("Transition: reservation id=%d moved to status=%s", reservationID, target)
	return models.FromDomainReservation(res), nil
}

func (s *Service) checkTransitionAccess(res *domain.Reservation, target domain.ReservationStatus, actor domain.Actor) error {
	switch target {
	case domain.StatusCancelled:
		if !res.CanBeCancelledBy(actor) {
			return ErrAccessDenied
		}
	case domain.StatusCompleted:
		// Vehicle reservations complete through close-out only, the
		// completion needs the final readings
		if res.ResourceType == domain.ResourceTypeVehicle {
			return ErrInvalidTransition
		}
		if !actor.IsAdmin {
			return ErrAccessDenied
		}
	default:
		if !actor.IsAdmin {
			return ErrAccessDenied
		}
	}
	return nil
}

// applyVehicleSideEffect keeps the vehicle status in step with the
// reservation lifecycle
func (s *Service) applyVehicleSideEffect(ctx context.Context, res *domain.Reservation, target domain.ReservationStatus) error {
	if res.ResourceType != domain.ResourceTypeVehicle {
		return nil
	}

	switch {
	case target == domain.StatusApproved:
		if err := s.resourceRepo.UpdateVehicleStatus(ctx, res.ResourceID, domain.ResourceInUse); err != nil {
			return fmt.Errorf("%w: Transition - vehicle status error: %v", ErrInternal, err)
		}
	case target == domain.StatusCancelled && res.Status == domain.StatusApproved:
		if err := s.resourceRepo.UpdateVehicleStatus(ctx, res.ResourceID, domain.ResourceAvailable); err != nil {
			return fmt.Errorf("%w: Transition - vehicle status error: %v", ErrInternal, err)
		}
	}
	return nil
}
