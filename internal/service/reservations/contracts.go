package reservations

import (
	"context"

	"github.com/mobisfm/FM-BookingService/internal/domain"
)

// ReservationRepository is the reservation storage surface
type ReservationRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Reservation, error)
	GetWithFilter(ctx context.Context, filter domain.ReservationFilter) ([]*domain.Reservation, error)
	UpdateStatus(ctx context.Context, id int64, status domain.ReservationStatus) error
	Cancel(ctx context.Context, id int64, reason string) error
}

// ResourceRepository flips vehicle statuses on lifecycle transitions
type ResourceRepository interface {
	UpdateVehicleStatus(ctx context.Context, id int64, status domain.ResourceStatus) error
}

// TransactionManager keeps the status write and the vehicle flip atomic
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger is the logging surface this service needs
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
