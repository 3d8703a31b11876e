package get_available_slots

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mobisfm/FM-BookingService/internal/domain"
	scheduleRepo "github.com/mobisfm/FM-BookingService/internal/infra/storage/schedule"
	"github.com/mobisfm/FM-BookingService/pkg/types"
)

// Test fakes

type fakeReservationRepo struct {
	reservations []*domain.Reservation
	err          error
}

func (f *fakeReservationRepo) GetWithFilter(_ context.Context, _ domain.ReservationFilter) ([]*domain.Reservation, error) {
	return f.reservations, f.err
}

type fakeResourceRepo struct {
	room       *domain.Room
	vehicle    *domain.Vehicle
	roomErr    error
	vehicleErr error
}

func (f *fakeResourceRepo) GetRoom(_ context.Context, _ int64) (*domain.Room, error) {
	return f.room, f.roomErr
}

func (f *fakeResourceRepo) GetVehicle(_ context.Context, _ int64) (*domain.Vehicle, error) {
	return f.vehicle, f.vehicleErr
}

type fakeScheduleRepo struct {
	rules      []*domain.ScheduleRule
	rulesErr   error
	holiday    *domain.Holiday
	holidayErr error
}

func (f *fakeScheduleRepo) ListRules(_ context.Context, _ domain.ResourceType) ([]*domain.ScheduleRule, error) {
	return f.rules, f.rulesErr
}

func (f *fakeScheduleRepo) GetHolidayByDate(_ context.Context, _, _, _ int) (*domain.Holiday, error) {
	return f.holiday, f.holidayErr
}

type fixedClock struct{ t time.Time }

func (c fixedClock) Now() time.Time { return c.t }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newTestUseCase(res *fakeReservationRepo, rs *fakeResourceRepo, sch *fakeScheduleRepo, now time.Time) *UseCase {
	uc := NewUseCase(res, rs, sch, nopLogger{})
	uc.timeProvider = fixedClock{t: now}
	return uc
}

func availableRoom() *domain.Room {
	return &domain.Room{ID: 1, Name: "Sala A", MaxCapacity: 10, Status: domain.ResourceAvailable}
}

var noHoliday = &fakeScheduleRepo{holidayErr: scheduleRepo.ErrHolidayNotFound}

func TestExecute_FullDayFree(t *testing.T) {
	// A future March day on defaults: 07:30-17:30 = 41 slots
	date := time.Date(2027, 3, 10, 0, 0, 0, 0, time.UTC)
	now := time.Date(2027, 3, 1, 12, 0, 0, 0, time.UTC)

	uc := newTestUseCase(&fakeReservationRepo{}, &fakeResourceRepo{room: availableRoom()}, noHoliday, now)

	resp, err := uc.Execute(context.Background(), &Request{
		ResourceType: domain.ResourceTypeRoom,
		ResourceID:   1,
		Date:         date,
	})
	require.NoError(t, err)
	assert.Len(t, resp.Slots, 41)
	assert.Equal(t, types.TimeString("07:30"), resp.Slots[0])
	assert.Equal(t, types.TimeString("17:30"), resp.Slots[40])
	assert.Equal(t, domain.SlotGranularityMinutes, resp.GranularityMinutes)
}

func TestExecute_BlockingReservationFreesEndBoundary(t *testing.T) {
	date := time.Date(2027, 3, 10, 0, 0, 0, 0, time.UTC)
	now := time.Date(2027, 3, 1, 12, 0, 0, 0, time.UTC)

	booked := &domain.Reservation{
		ResourceType: domain.ResourceTypeRoom,
		ResourceID:   1,
		StartDate:    date,
		EndDate:      date,
		StartTime:    "09:00",
		EndTime:      "11:00",
		Status:       domain.StatusApproved,
	}
	uc := newTestUseCase(&fakeReservationRepo{reservations: []*domain.Reservation{booked}},
		&fakeResourceRepo{room: availableRoom()}, noHoliday, now)

	resp, err := uc.Execute(context.Background(), &Request{
		ResourceType: domain.ResourceTypeRoom,
		ResourceID:   1,
		Date:         date,
	})
	require.NoError(t, err)

	assert.NotContains(t, resp.Slots, types.TimeString("09:00"))
	assert.NotContains(t, resp.Slots, types.TimeString("10:45"))
	// 11:00 is the reservation's end boundary and stays bookable
	assert.Contains(t, resp.Slots, types.TimeString("11:00"))
	assert.Contains(t, resp.Slots, types.TimeString("08:45"))
}

func TestExecute_PendingBlocksButCancelledDoesNot(t *testing.T) {
	date := time.Date(2027, 3, 10, 0, 0, 0, 0, time.UTC)
	now := time.Date(2027, 3, 1, 12, 0, 0, 0, time.UTC)

	reservations := []*domain.Reservation{
		{ResourceType: domain.ResourceTypeRoom, ResourceID: 1, StartDate: date, EndDate: date,
			StartTime: "09:00", EndTime: "10:00", Status: domain.StatusPending},
		{ResourceType: domain.ResourceTypeRoom, ResourceID: 1, StartDate: date, EndDate: date,
			StartTime: "14:00", EndTime: "15:00", Status: domain.StatusCancelled},
	}
	uc := newTestUseCase(&fakeReservationRepo{reservations: reservations},
		&fakeResourceRepo{room: availableRoom()}, noHoliday, now)

	resp, err := uc.Execute(context.Background(), &Request{
		ResourceType: domain.ResourceTypeRoom,
		ResourceID:   1,
		Date:         date,
	})
	require.NoError(t, err)

	assert.NotContains(t, resp.Slots, types.TimeString("09:30"))
	assert.Contains(t, resp.Slots, types.TimeString("14:30"))
}

func TestExecute_TodayCutsOffPastSlots(t *testing.T) {
	date := time.Date(2027, 3, 10, 0, 0, 0, 0, time.UTC)
	// 10:05 rounds up to 10:15
	now := time.Date(2027, 3, 10, 10, 5, 0, 0, time.UTC)

	uc := newTestUseCase(&fakeReservationRepo{}, &fakeResourceRepo{room: availableRoom()}, noHoliday, now)

	resp, err := uc.Execute(context.Background(), &Request{
		ResourceType: domain.ResourceTypeRoom,
		ResourceID:   1,
		Date:         date,
	})
	require.NoError(t, err)
	assert.Equal(t, types.TimeString("10:15"), resp.Slots[0])
}

func TestExecute_HolidayYieldsNoSlots(t *testing.T) {
	date := time.Date(2027, 12, 25, 0, 0, 0, 0, time.UTC)
	now := time.Date(2027, 12, 1, 12, 0, 0, 0, time.UTC)

	sch := &fakeScheduleRepo{holiday: &domain.Holiday{Day: 25, Month: time.December, Year: 2027}}
	uc := newTestUseCase(&fakeReservationRepo{}, &fakeResourceRepo{room: availableRoom()}, sch, now)

	resp, err := uc.Execute(context.Background(), &Request{
		ResourceType: domain.ResourceTypeRoom,
		ResourceID:   1,
		Date:         date,
	})
	require.NoError(t, err)
	assert.Empty(t, resp.Slots)
}

func TestExecute_DisabledDayYieldsNoSlots(t *testing.T) {
	// 2027-03-13 is a Saturday (dow 5)
	date := time.Date(2027, 3, 13, 0, 0, 0, 0, time.UTC)
	now := time.Date(2027, 3, 1, 12, 0, 0, 0, time.UTC)

	sch := &fakeScheduleRepo{
		holidayErr: scheduleRepo.ErrHolidayNotFound,
		rules: []*domain.ScheduleRule{
			{ResourceType: domain.ResourceTypeRoom, Month: time.March, DayOfWeek: 5, Enabled: false},
		},
	}
	uc := newTestUseCase(&fakeReservationRepo{}, &fakeResourceRepo{room: availableRoom()}, sch, now)

	resp, err := uc.Execute(context.Background(), &Request{
		ResourceType: domain.ResourceTypeRoom,
		ResourceID:   1,
		Date:         date,
	})
	require.NoError(t, err)
	assert.Empty(t, resp.Slots)
}

func TestExecute_MaintenanceResourceYieldsNoSlots(t *testing.T) {
	date := time.Date(2027, 3, 10, 0, 0, 0, 0, time.UTC)
	now := time.Date(2027, 3, 1, 12, 0, 0, 0, time.UTC)

	room := availableRoom()
	room.Status = domain.ResourceMaintenance
	uc := newTestUseCase(&fakeReservationRepo{}, &fakeResourceRepo{room: room}, noHoliday, now)

	resp, err := uc.Execute(context.Background(), &Request{
		ResourceType: domain.ResourceTypeRoom,
		ResourceID:   1,
		Date:         date,
	})
	require.NoError(t, err)
	assert.Empty(t, resp.Slots)
}

func TestExecute_AugustVehicleDay(t *testing.T) {
	// Summer schedule applies to every resource type: 07:00-14:00 = 29 slots
	date := time.Date(2027, 8, 12, 0, 0, 0, 0, time.UTC)
	now := time.Date(2027, 8, 1, 12, 0, 0, 0, time.UTC)

	vehicle := &domain.Vehicle{ID: 3, Name: "Van 1", Status: domain.ResourceAvailable}
	uc := newTestUseCase(&fakeReservationRepo{}, &fakeResourceRepo{vehicle: vehicle}, noHoliday, now)

	resp, err := uc.Execute(context.Background(), &Request{
		ResourceType: domain.ResourceTypeVehicle,
		ResourceID:   3,
		Date:         date,
	})
	require.NoError(t, err)
	assert.Len(t, resp.Slots, 29)
	assert.Equal(t, types.TimeString("07:00"), resp.Slots[0])
	assert.Equal(t, types.TimeString("14:00"), resp.Slots[28])
}

func TestExecute_InvalidInput(t *testing.T) {
	uc := newTestUseCase(&fakeReservationRepo{}, &fakeResourceRepo{}, noHoliday, time.Now())

	_, err := uc.Execute(context.Background(), &Request{
		ResourceType: "boat",
		ResourceID:   1,
		Date:         time.Now(),
	})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{
		ResourceType: domain.ResourceTypeRoom,
		ResourceID:   0,
		Date:         time.Now(),
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
