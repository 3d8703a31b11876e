package close_reservation

import (
	"context"

	closeReservation "github.com/mobisfm/FM-BookingService/internal/usecase/close_reservation"
)

type CloseReservationUseCase interface {
	Execute(ctx context.Context, req *closeReservation.Request) (*closeReservation.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
