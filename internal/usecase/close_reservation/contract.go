package close_reservation

import (
	"context"

	"github.com/mobisfm/FM-BookingService/internal/domain"
)

// ReservationRepository is the reservation surface this use case needs
type ReservationRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Reservation, error)
	Close(ctx context.Context, id int64, finalKilometers, finalChargePercent float64) error
}

// ResourceRepository writes the vehicle state back after close-out
type ResourceRepository interface {
	GetVehicle(ctx context.Context, id int64) (*domain.Vehicle, error)
	UpdateVehicleState(ctx context.Context, id int64, kilometers, chargePercent float64, status domain.ResourceStatus) error
}

// TransactionManager runs the reservation and vehicle writes atomically
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger is the logging surface this use case needs
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
