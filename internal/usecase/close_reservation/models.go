package close_reservation

import (
	"time"

	"github.com/mobisfm/FM-BookingService/internal/domain"
)

// Request carries the end-of-use readings for an approved vehicle reservation
type Request struct {
	Actor              domain.Actor
	ReservationID      int64
	FinalKilometers    float64
	FinalChargePercent float64
}

// Response is the reservation after close-out
type Response struct {
	ID                   int64
	ResourceID           int64
	Status               domain.ReservationStatus
	InitialKilometers    float64
	FinalKilometers      float64
	InitialChargePercent float64
	FinalChargePercent   float64
	ClosedAt             time.Time
}
