package schedule

import (
	"context"

	"github.com/mobisfm/FM-BookingService/internal/domain"
)

// ScheduleRepository is the schedule storage surface
type ScheduleRepository interface {
	ListRules(ctx context.Context, resourceType domain.ResourceType) ([]*domain.ScheduleRule, error)
	UpsertRule(ctx context.Context, rule *domain.ScheduleRule) (*domain.ScheduleRule, error)
	ListHolidays(ctx context.Context) ([]*domain.Holiday, error)
	CreateHoliday(ctx context.Context, holiday *domain.Holiday) (*domain.Holiday, error)
	DeleteHoliday(ctx context.Context, id int64) error
}

// Logger is the logging surface this service needs
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
