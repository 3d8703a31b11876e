package schedule

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mobisfm/FM-BookingService/internal/domain"
	scheduleRepo "github.com/mobisfm/FM-BookingService/internal/infra/storage/schedule"
	"github.com/mobisfm/FM-BookingService/internal/service/schedule/models"
)

// Test fakes

type fakeScheduleRepo struct {
	rules    []*domain.ScheduleRule
	holidays []*domain.Holiday

	createErr error
	deleteErr error

	upserted  *domain.ScheduleRule
	deletedID int64
}

func (f *fakeScheduleRepo) ListRules(_ context.Context, _ domain.ResourceType) ([]*domain.ScheduleRule, error) {
	return f.rules, nil
}

func (f *fakeScheduleRepo) UpsertRule(_ context.Context, rule *domain.ScheduleRule) (*domain.ScheduleRule, error) {
	f.upserted = rule
	saved := *rule
	saved.ID = 10
	return &saved, nil
}

func (f *fakeScheduleRepo) ListHolidays(_ context.Context) ([]*domain.Holiday, error) {
	return f.holidays, nil
}

func (f *fakeScheduleRepo) CreateHoliday(_ context.Context, holiday *domain.Holiday) (*domain.Holiday, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	saved := *holiday
	saved.ID = 20
	return &saved, nil
}

func (f *fakeScheduleRepo) DeleteHoliday(_ context.Context, id int64) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.deletedID = id
	return nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

var (
	admin   = domain.Actor{ID: 1, Name: "Rui", IsAdmin: true}
	regular = domain.Actor{ID: 7, Name: "Ana"}
)

func TestGetConfig_FullGridWithDefaults(t *testing.T) {
	repo := &fakeScheduleRepo{}
	svc := NewService(repo, nopLogger{})

	resp, err := svc.GetConfig(context.Background(), domain.ResourceTypeRoom)
	require.NoError(t, err)

	assert.Len(t, resp.Rules, 12*7)
	for _, rule := range resp.Rules {
		assert.True(t, rule.Default)
		assert.True(t, rule.Enabled)
	}
	// August runs the reduced summer window
	var january, august models.RuleResponse
	for _, rule := range resp.Rules {
		if rule.DayOfWeek != 0 {
			continue
		}
		switch rule.Month {
		case 1:
			january = rule
		case 8:
			august = rule
		}
	}
	assert.Equal(t, "07:30", january.StartTime)
	assert.Equal(t, "17:30", january.EndTime)
	assert.Equal(t, "07:00", august.StartTime)
	assert.Equal(t, "14:00", august.EndTime)
}

func TestGetConfig_ExplicitRuleOverlaysDefault(t *testing.T) {
	repo := &fakeScheduleRepo{
		rules: []*domain.ScheduleRule{{
			ID:           10,
			ResourceType: domain.ResourceTypeRoom,
			Month:        time.March,
			DayOfWeek:    4, // Friday
			StartTime:    "09:00",
			EndTime:      "13:00",
			Enabled:      true,
		}},
		holidays: []*domain.Holiday{{ID: 20, Day: 1, Month: time.May, Year: 2027, Comment: "labour day"}},
	}
	svc := NewService(repo, nopLogger{})

	resp, err := svc.GetConfig(context.Background(), domain.ResourceTypeRoom)
	require.NoError(t, err)

	var explicit int
	for _, rule := range resp.Rules {
		if rule.Default {
			continue
		}
		explicit++
		assert.Equal(t, 3, rule.Month)
		assert.Equal(t, 4, rule.DayOfWeek)
		assert.Equal(t, "09:00", rule.StartTime)
		assert.Equal(t, int64(10), rule.ID)
	}
	assert.Equal(t, 1, explicit)

	require.Len(t, resp.Holidays, 1)
	assert.Equal(t, 5, resp.Holidays[0].Month)
}

func TestGetConfig_RejectsUnknownResourceType(t *testing.T) {
	svc := NewService(&fakeScheduleRepo{}, nopLogger{})

	_, err := svc.GetConfig(context.Background(), domain.ResourceType("boat"))
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestUpsertRule_AdminOnly(t *testing.T) {
	repo := &fakeScheduleRepo{}
	svc := NewService(repo, nopLogger{})

	req := &models.UpsertRuleRequest{
		Actor: regular, Month: 3, DayOfWeek: 4,
		StartTime: "09:00", EndTime: "13:00", Enabled: true,
	}
	_, err := svc.UpsertRule(context.Background(), domain.ResourceTypeRoom, req)
	assert.ErrorIs(t, err, ErrAccessDenied)

	req.Actor = admin
	resp, err := svc.UpsertRule(context.Background(), domain.ResourceTypeRoom, req)
	require.NoError(t, err)
	assert.Equal(t, int64(10), resp.ID)
	require.NotNil(t, repo.upserted)
	assert.Equal(t, domain.ResourceTypeRoom, repo.upserted.ResourceType)
	assert.Equal(t, time.March, repo.upserted.Month)
}

func TestUpsertRule_Validation(t *testing.T) {
	svc := NewService(&fakeScheduleRepo{}, nopLogger{})

	cases := []struct {
		name string
		req  models.UpsertRuleRequest
	}{
		{"month out of range", models.UpsertRuleRequest{Month: 13, DayOfWeek: 0, StartTime: "09:00", EndTime: "13:00"}},
		{"day of week out of range", models.UpsertRuleRequest{Month: 3, DayOfWeek: 7, StartTime: "09:00", EndTime: "13:00"}},
		{"malformed start time", models.UpsertRuleRequest{Month: 3, DayOfWeek: 0, StartTime: "9am", EndTime: "13:00"}},
		{"end not after start", models.UpsertRuleRequest{Month: 3, DayOfWeek: 0, StartTime: "13:00", EndTime: "09:00"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := tc.req
			req.Actor = admin
			req.Enabled = true
			_, err := svc.UpsertRule(context.Background(), domain.ResourceTypeRoom, &req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestUpsertRule_ClosedDaySentinel(t *testing.T) {
	repo := &fakeScheduleRepo{}
	svc := NewService(repo, nopLogger{})

	resp, err := svc.UpsertRule(context.Background(), domain.ResourceTypeRoom, &models.UpsertRuleRequest{
		Actor: admin, Month: 8, DayOfWeek: 5,
		StartTime: "00:00", EndTime: "00:00", Enabled: true,
	})
	require.NoError(t, err)
	assert.Equal(t, "00:00", resp.StartTime)
	assert.Equal(t, "00:00", resp.EndTime)
}

func TestCreateHoliday_AdminOnly(t *testing.T) {
	repo := &fakeScheduleRepo{}
	svc := NewService(repo, nopLogger{})

	req := &models.CreateHolidayRequest{Actor: regular, Day: 1, Month: 5, Year: 2027}
	_, err := svc.CreateHoliday(context.Background(), req)
	assert.ErrorIs(t, err, ErrAccessDenied)

	req.Actor = admin
	resp, err := svc.CreateHoliday(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, int64(20), resp.ID)
}

func TestCreateHoliday_RejectsImpossibleDates(t *testing.T) {
	svc := NewService(&fakeScheduleRepo{}, nopLogger{})

	cases := []models.CreateHolidayRequest{
		{Day: 31, Month: 4, Year: 2027}, // April has 30 days
		{Day: 29, Month: 2, Year: 2027}, // not a leap year
		{Day: 0, Month: 5, Year: 2027},
		{Day: 10, Month: 13, Year: 2027},
	}
	for _, tc := range cases {
		tc.Actor = admin
		_, err := svc.CreateHoliday(context.Background(), &tc)
		assert.ErrorIs(t, err, ErrInvalidInput, "%d-%d-%d", tc.Year, tc.Month, tc.Day)
	}
}

func TestCreateHoliday_LeapDayAllowed(t *testing.T) {
	svc := NewService(&fakeScheduleRepo{}, nopLogger{})

	_, err := svc.CreateHoliday(context.Background(), &models.CreateHolidayRequest{
		Actor: admin, Day: 29, Month: 2, Year: 2028,
	})
	assert.NoError(t, err)
}

func TestCreateHoliday_Duplicate(t *testing.T) {
	repo := &fakeScheduleRepo{createErr: scheduleRepo.ErrDuplicateHoliday}
	svc := NewService(repo, nopLogger{})

	_, err := svc.CreateHoliday(context.Background(), &models.CreateHolidayRequest{
		Actor: admin, Day: 1, Month: 5, Year: 2027,
	})
	assert.ErrorIs(t, err, ErrDuplicateHoliday)
}

func TestDeleteHoliday(t *testing.T) {
	repo := &fakeScheduleRepo{}
	svc := NewService(repo, nopLogger{})

	err := svc.DeleteHoliday(context.Background(), 20, regular)
	assert.ErrorIs(t, err, ErrAccessDenied)

	err = svc.DeleteHoliday(context.Background(), 20, admin)
	require.NoError(t, err)
	assert.Equal(t, int64(20), repo.deletedID)

	repo.deleteErr = scheduleRepo.ErrHolidayNotFound
	err = svc.DeleteHoliday(context.Background(), 404, admin)
	assert.ErrorIs(t, err, ErrHolidayNotFound)
}
