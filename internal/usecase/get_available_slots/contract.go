package get_available_slots

import (
	"context"
	"time"

	"github.com/mobisfm/FM-BookingService/internal/domain"
)

// ReservationRepository is the reservation query surface this use case needs
type ReservationRepository interface {
	GetWithFilter(ctx context.Context, filter domain.ReservationFilter) ([]*domain.Reservation, error)
}

// ResourceRepository resolves the booked resource
type ResourceRepository interface {
	GetRoom(ctx context.Context, id int64) (*domain.Room, error)
	GetVehicle(ctx context.Context, id int64) (*domain.Vehicle, error)
}

// ScheduleRepository exposes the open-hours table and holiday list
type ScheduleRepository interface {
	ListRules(ctx context.Context, resourceType domain.ResourceType) ([]*domain.ScheduleRule, error)
	GetHolidayByDate(ctx context.Context, day, month, year int) (*domain.Holiday, error)
}

// TimeProvider supplies the current time (injectable for tests)
type TimeProvider interface {
	Now() time.Time
}

// Logger is the logging surface this use case needs
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider is the production clock
type RealTimeProvider struct{}

// Now returns the current time
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
