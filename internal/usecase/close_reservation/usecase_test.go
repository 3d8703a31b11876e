package close_reservation

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mobisfm/FM-BookingService/internal/domain"
	reservationRepo "github.com/mobisfm/FM-BookingService/internal/infra/storage/reservation"
)

// Test fakes

type fakeReservationRepo struct {
	byID     map[int64]*domain.Reservation
	closedID int64
	closedKm float64
}

func (f *fakeReservationRepo) GetByID(_ context.Context, id int64) (*domain.Reservation, error) {
	res, ok := f.byID[id]
	if !ok {
		return nil, reservationRepo.ErrReservationNotFound
	}
	return res, nil
}

func (f *fakeReservationRepo) Close(_ context.Context, id int64, finalKilometers, _ float64) error {
	f.closedID = id
	f.closedKm = finalKilometers
	return nil
}

type fakeResourceRepo struct {
	updatedID     int64
	updatedKm     float64
	updatedCharge float64
	updatedStatus domain.ResourceStatus
}

func (f *fakeResourceRepo) GetVehicle(_ context.Context, id int64) (*domain.Vehicle, error) {
	return &domain.Vehicle{ID: id, Status: domain.ResourceInUse}, nil
}

func (f *fakeResourceRepo) UpdateVehicleState(_ context.Context, id int64, kilometers, chargePercent float64, status domain.ResourceStatus) error {
	f.updatedID = id
	f.updatedKm = kilometers
	f.updatedCharge = chargePercent
	f.updatedStatus = status
	return nil
}

type passthroughTxManager struct{}

func (passthroughTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

var admin = domain.Actor{ID: 1, Name: "Rui", IsAdmin: true}

func approvedVehicleReservation() *domain.Reservation {
	return &domain.Reservation{
		ID:           42,
		ResourceType: domain.ResourceTypeVehicle,
		ResourceID:   5,
		UserID:       7,
		StartDate:    time.Date(2027, 3, 10, 0, 0, 0, 0, time.UTC),
		EndDate:      time.Date(2027, 3, 11, 0, 0, 0, 0, time.UTC),
		Status:       domain.StatusApproved,
		Vehicle: &domain.VehicleUsage{
			InitialKilometers:    12500,
			InitialChargePercent: 80,
		},
	}
}

func closeRequest() *Request {
	return &Request{
		Actor:              admin,
		ReservationID:      42,
		FinalKilometers:    12640,
		FinalChargePercent: 35,
	}
}

func TestExecute_ClosesAndReleasesVehicle(t *testing.T) {
	repo := &fakeReservationRepo{byID: map[int64]*domain.Reservation{42: approvedVehicleReservation()}}
	resources := &fakeResourceRepo{}
	uc := NewUseCase(repo, resources, passthroughTxManager{}, nopLogger{})

	resp, err := uc.Execute(context.Background(), closeRequest())
	require.NoError(t, err)

	assert.Equal(t, domain.StatusCompleted, resp.Status)
	assert.Equal(t, float64(12500), resp.InitialKilometers)
	assert.Equal(t, float64(12640), resp.FinalKilometers)
	assert.Equal(t, float64(35), resp.FinalChargePercent)
	assert.False(t, resp.ClosedAt.IsZero())

	assert.Equal(t, int64(42), repo.closedID)
	assert.Equal(t, int64(5), resources.updatedID)
	assert.Equal(t, float64(12640), resources.updatedKm)
	assert.Equal(t, domain.ResourceAvailable, resources.updatedStatus)
}

func TestExecute_RequiresAdmin(t *testing.T) {
	repo := &fakeReservationRepo{byID: map[int64]*domain.Reservation{42: approvedVehicleReservation()}}
	uc := NewUseCase(repo, &fakeResourceRepo{}, passthroughTxManager{}, nopLogger{})

	req := closeRequest()
	req.Actor = domain.Actor{ID: 7, Name: "Ana"} // the reservation owner, still not enough

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestExecute_ValidatesReadings(t *testing.T) {
	repo := &fakeReservationRepo{byID: map[int64]*domain.Reservation{42: approvedVehicleReservation()}}
	uc := NewUseCase(repo, &fakeResourceRepo{}, passthroughTxManager{}, nopLogger{})

	req := closeRequest()
	req.FinalKilometers = -1
	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidInput)

	req = closeRequest()
	req.FinalChargePercent = 101
	_, err = uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecute_KilometersCannotDecrease(t *testing.T) {
	repo := &fakeReservationRepo{byID: map[int64]*domain.Reservation{42: approvedVehicleReservation()}}
	resources := &fakeResourceRepo{}
	uc := NewUseCase(repo, resources, passthroughTxManager{}, nopLogger{})

	req := closeRequest()
	req.FinalKilometers = 12400 // below the 12500 snapshot

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrKilometersDecreased)
	assert.Zero(t, resources.updatedID)
}

func TestExecute_EqualKilometersAllowed(t *testing.T) {
	repo := &fakeReservationRepo{byID: map[int64]*domain.Reservation{42: approvedVehicleReservation()}}
	uc := NewUseCase(repo, &fakeResourceRepo{}, passthroughTxManager{}, nopLogger{})

	req := closeRequest()
	req.FinalKilometers = 12500

	_, err := uc.Execute(context.Background(), req)
	assert.NoError(t, err)
}

func TestExecute_RejectsRoomReservation(t *testing.T) {
	room := approvedVehicleReservation()
	room.ResourceType = domain.ResourceTypeRoom
	room.Vehicle = nil
	repo := &fakeReservationRepo{byID: map[int64]*domain.Reservation{42: room}}
	uc := NewUseCase(repo, &fakeResourceRepo{}, passthroughTxManager{}, nopLogger{})

	_, err := uc.Execute(context.Background(), closeRequest())
	assert.ErrorIs(t, err, ErrNotVehicle)
}

func TestExecute_RejectsSecondCloseOut(t *testing.T) {
	closed := approvedVehicleReservation()
	closed.Status = domain.StatusCompleted
	closed.Vehicle.IsClosed = true
	repo := &fakeReservationRepo{byID: map[int64]*domain.Reservation{42: closed}}
	uc := NewUseCase(repo, &fakeResourceRepo{}, passthroughTxManager{}, nopLogger{})

	_, err := uc.Execute(context.Background(), closeRequest())
	assert.ErrorIs(t, err, ErrAlreadyClosed)
}

func TestExecute_RequiresApprovedStatus(t *testing.T) {
	uc := func(status domain.ReservationStatus) (*UseCase, *fakeResourceRepo) {
		res := approvedVehicleReservation()
		res.Status = status
		resources := &fakeResourceRepo{}
		repo := &fakeReservationRepo{byID: map[int64]*domain.Reservation{42: res}}
		return NewUseCase(repo, resources, passthroughTxManager{}, nopLogger{}), resources
	}

	for _, status := range []domain.ReservationStatus{domain.StatusPending, domain.StatusRejected, domain.StatusCancelled} {
		u, _ := uc(status)
		_, err := u.Execute(context.Background(), closeRequest())
		assert.ErrorIs(t, err, ErrNotApproved, "status %s", status)
	}
}

func TestExecute_UnknownReservation(t *testing.T) {
	repo := &fakeReservationRepo{byID: map[int64]*domain.Reservation{}}
	uc := NewUseCase(repo, &fakeResourceRepo{}, passthroughTxManager{}, nopLogger{})

	req := closeRequest()
	req.ReservationID = 999

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrReservationNotFound)
}
