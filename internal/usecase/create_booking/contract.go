package create_booking

import (
	"context"

	"github.com/mobisfm/FM-BookingService/internal/domain"
)

// ReservationRepository is the reservation surface this use case needs
type ReservationRepository interface {
	Create(ctx context.Context, res *domain.Reservation) (*domain.Reservation, error)
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

// TransactionManager runs the conflict check and insert atomically
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger is the logging surface this use case needs
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
