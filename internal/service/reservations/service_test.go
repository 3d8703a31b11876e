package reservations

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mobisfm/FM-BookingService/internal/domain"
	reservationRepo "github.com/mobisfm/FM-BookingService/internal/infra/storage/reservation"
	"github.com/mobisfm/FM-BookingService/internal/service/reservations/models"
)

// Test fakes

type fakeReservationRepo struct {
	byID map[int64]*domain.Reservation
	list []*domain.Reservation

	lastFilter      domain.ReservationFilter
	updatedID       int64
	updatedStatus   domain.ReservationStatus
	cancelledID     int64
	cancelledReason string
}

func (f *fakeReservationRepo) GetByID(_ context.Context, id int64) (*domain.Reservation, error) {
	res, ok := f.byID[id]
	if !ok {
		return nil, reservationRepo.ErrReservationNotFound
	}
	copied := *res
	return &copied, nil
}

func (f *fakeReservationRepo) GetWithFilter(_ context.Context, filter domain.ReservationFilter) ([]*domain.Reservation, error) {
	f.lastFilter = filter
	return f.list, nil
}

func (f *fakeReservationRepo) UpdateStatus(_ context.Context, id int64, status domain.ReservationStatus) error {
	f.updatedID = id
	f.updatedStatus = status
	return nil
}

func (f *fakeReservationRepo) Cancel(_ context.Context, id int64, reason string) error {
	f.cancelledID = id
	f.cancelledReason = reason
	return nil
}

type fakeResourceRepo struct {
	vehicleID     int64
	vehicleStatus domain.ResourceStatus
	calls         int
}

func (f *fakeResourceRepo) UpdateVehicleStatus(_ context.Context, id int64, status domain.ResourceStatus) error {
	f.vehicleID = id
	f.vehicleStatus = status
	f.calls++
	return nil
}

type passthroughTxManager struct{}

func (passthroughTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

var (
	owner = domain.Actor{ID: 7, Name: "Ana"}
	admin = domain.Actor{ID: 1, Name: "Rui", IsAdmin: true}
)

func pendingRoomReservation() *domain.Reservation {
	return &domain.Reservation{
		ID:           42,
		ResourceType: domain.ResourceTypeRoom,
		ResourceID:   1,
		UserID:       owner.ID,
		UserName:     owner.Name,
		StartDate:    time.Date(2027, 3, 10, 0, 0, 0, 0, time.UTC),
		EndDate:      time.Date(2027, 3, 10, 0, 0, 0, 0, time.UTC),
		StartTime:    "09:00",
		EndTime:      "10:00",
		Status:       domain.StatusPending,
	}
}

func approvedVehicleReservation() *domain.Reservation {
	return &domain.Reservation{
		ID:           43,
		ResourceType: domain.ResourceTypeVehicle,
		ResourceID:   5,
		UserID:       owner.ID,
		StartDate:    time.Date(2027, 3, 10, 0, 0, 0, 0, time.UTC),
		EndDate:      time.Date(2027, 3, 11, 0, 0, 0, 0, time.UTC),
		Status:       domain.StatusApproved,
		Vehicle:      &domain.VehicleUsage{InitialKilometers: 12500, InitialChargePercent: 80},
	}
}

func newTestService(repo *fakeReservationRepo, resources *fakeResourceRepo) *Service {
	return NewService(repo, resources, passthroughTxManager{}, nopLogger{})
}

func TestGetByID_OwnerAndAdminAccess(t *testing.T) {
	repo := &fakeReservationRepo{byID: map[int64]*domain.Reservation{42: pendingRoomReservation()}}
	svc := newTestService(repo, &fakeResourceRepo{})

	resp, err := svc.GetByID(context.Background(), 42, owner)
	require.NoError(t, err)
	assert.Equal(t, int64(42), resp.ID)
	assert.Equal(t, "pending", resp.Status)

	_, err = svc.GetByID(context.Background(), 42, admin)
	assert.NoError(t, err)

	_, err = svc.GetByID(context.Background(), 42, domain.Actor{ID: 99})
	assert.ErrorIs(t, err, ErrAccessDenied)

	_, err = svc.GetByID(context.Background(), 404, owner)
	assert.ErrorIs(t, err, ErrReservationNotFound)
}

func TestGetUserReservations_OwnOnlyUnlessAdmin(t *testing.T) {
	repo := &fakeReservationRepo{list: []*domain.Reservation{pendingRoomReservation()}}
	svc := newTestService(repo, &fakeResourceRepo{})

	resp, err := svc.GetUserReservations(context.Background(), &models.GetUserReservationsRequest{
		Actor:  owner,
		UserID: owner.ID,
	})
	require.NoError(t, err)
	assert.Len(t, resp.Reservations, 1)
	require.NotNil(t, repo.lastFilter.UserID)
	assert.Equal(t, owner.ID, *repo.lastFilter.UserID)

	_, err = svc.GetUserReservations(context.Background(), &models.GetUserReservationsRequest{
		Actor:  domain.Actor{ID: 99},
		UserID: owner.ID,
	})
	assert.ErrorIs(t, err, ErrAccessDenied)

	_, err = svc.GetUserReservations(context.Background(), &models.GetUserReservationsRequest{
		Actor:  admin,
		UserID: owner.ID,
	})
	assert.NoError(t, err)
}

func TestGetUserReservations_RejectsBadFilter(t *testing.T) {
	repo := &fakeReservationRepo{}
	svc := newTestService(repo, &fakeResourceRepo{})

	bad := "boat"
	_, err := svc.GetUserReservations(context.Background(), &models.GetUserReservationsRequest{
		Actor:        owner,
		UserID:       owner.ID,
		ResourceType: &bad,
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestTransition_AdminApprovesPending(t *testing.T) {
	repo := &fakeReservationRepo{byID: map[int64]*domain.Reservation{42: pendingRoomReservation()}}
	svc := newTestService(repo, &fakeResourceRepo{})

	resp, err := svc.Transition(context.Background(), 42, &models.TransitionRequest{
		Actor:  admin,
		Status: "approved",
	})
	require.NoError(t, err)
	assert.Equal(t, "approved", resp.Status)
	assert.Equal(t, int64(42), repo.updatedID)
	assert.Equal(t, domain.StatusApproved, repo.updatedStatus)
}

func TestTransition_OwnerCannotApprove(t *testing.T) {
	repo := &fakeReservationRepo{byID: map[int64]*domain.Reservation{42: pendingRoomReservation()}}
	svc := newTestService(repo, &fakeResourceRepo{})

	_, err := svc.Transition(context.Background(), 42, &models.TransitionRequest{
		Actor:  owner,
		Status: "approved",
	})
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestTransition_OwnerCancelsPendingWithReason(t *testing.T) {
	repo := &fakeReservationRepo{byID: map[int64]*domain.Reservation{42: pendingRoomReservation()}}
	svc := newTestService(repo, &fakeResourceRepo{})

	resp, err := svc.Transition(context.Background(), 42, &models.TransitionRequest{
		Actor:  owner,
		Status: "cancelled",
		Reason: "meeting moved",
	})
	require.NoError(t, err)
	assert.Equal(t, "cancelled", resp.Status)
	require.NotNil(t, resp.CancellationReason)
	assert.Equal(t, "meeting moved", *resp.CancellationReason)
	assert.Equal(t, int64(42), repo.cancelledID)
	assert.Equal(t, "meeting moved", repo.cancelledReason)
}

func TestTransition_OwnerCannotCancelApproved(t *testing.T) {
	repo := &fakeReservationRepo{byID: map[int64]*domain.Reservation{43: approvedVehicleReservation()}}
	svc := newTestService(repo, &fakeResourceRepo{})

	_, err := svc.Transition(context.Background(), 43, &models.TransitionRequest{
		Actor:  owner,
		Status: "cancelled",
	})
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestTransition_TerminalStatesAreFinal(t *testing.T) {
	for _, status := range []domain.ReservationStatus{domain.StatusRejected, domain.StatusCancelled, domain.StatusCompleted} {
		res := pendingRoomReservation()
		res.Status = status
		repo := &fakeReservationRepo{byID: map[int64]*domain.Reservation{42: res}}
		svc := newTestService(repo, &fakeResourceRepo{})

		_, err := svc.Transition(context.Background(), 42, &models.TransitionRequest{
			Actor:  admin,
			Status: "cancelled",
		})
		assert.ErrorIs(t, err, ErrInvalidTransition, "from %s", status)
	}
}

func TestTransition_UnknownStatus(t *testing.T) {
	repo := &fakeReservationRepo{byID: map[int64]*domain.Reservation{42: pendingRoomReservation()}}
	svc := newTestService(repo, &fakeResourceRepo{})

	_, err := svc.Transition(context.Background(), 42, &models.TransitionRequest{
		Actor:  admin,
		Status: "archived",
	})
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestTransition_ApprovingVehiclePutsItInUse(t *testing.T) {
	res := approvedVehicleReservation()
	res.Status = domain.StatusPending
	repo := &fakeReservationRepo{byID: map[int64]*domain.Reservation{43: res}}
	resources := &fakeResourceRepo{}
	svc := newTestService(repo, resources)

	_, err := svc.Transition(context.Background(), 43, &models.TransitionRequest{
		Actor:  admin,
		Status: "approved",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(5), resources.vehicleID)
	assert.Equal(t, domain.ResourceInUse, resources.vehicleStatus)
}

func TestTransition_CancellingApprovedVehicleReleasesIt(t *testing.T) {
	repo := &fakeReservationRepo{byID: map[int64]*domain.Reservation{43: approvedVehicleReservation()}}
	resources := &fakeResourceRepo{}
	svc := newTestService(repo, resources)

	_, err := svc.Transition(context.Background(), 43, &models.TransitionRequest{
		Actor:  admin,
		Status: "cancelled",
		Reason: "vehicle recalled",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(5), resources.vehicleID)
	assert.Equal(t, domain.ResourceAvailable, resources.vehicleStatus)
}

func TestTransition_CancellingPendingVehicleLeavesItAlone(t *testing.T) {
	res := approvedVehicleReservation()
	res.Status = domain.StatusPending
	repo := &fakeReservationRepo{byID: map[int64]*domain.Reservation{43: res}}
	resources := &fakeResourceRepo{}
	svc := newTestService(repo, resources)

	_, err := svc.Transition(context.Background(), 43, &models.TransitionRequest{
		Actor:  admin,
		Status: "cancelled",
	})
	require.NoError(t, err)
	assert.Zero(t, resources.calls)
}

func TestTransition_VehicleCannotBeCompletedDirectly(t *testing.T) {
	repo := &fakeReservationRepo{byID: map[int64]*domain.Reservation{43: approvedVehicleReservation()}}
	svc := newTestService(repo, &fakeResourceRepo{})

	_, err := svc.Transition(context.Background(), 43, &models.TransitionRequest{
		Actor:  admin,
		Status: "completed",
	})
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestTransition_AdminCompletesRoomReservation(t *testing.T) {
	res := pendingRoomReservation()
	res.Status = domain.StatusApproved
	repo := &fakeReservationRepo{byID: map[int64]*domain.Reservation{42: res}}
	resources := &fakeResourceRepo{}
	svc := newTestService(repo, resources)

	resp, err := svc.Transition(context.Background(), 42, &models.TransitionRequest{
		Actor:  admin,
		Status: "completed",
	})
	require.NoError(t, err)
	assert.Equal(t, "completed", resp.Status)
	assert.Zero(t, resources.calls)
}
