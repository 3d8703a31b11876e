package create_booking

import (
	"time"

	"github.com/mobisfm/FM-BookingService/internal/domain"
	"github.com/mobisfm/FM-BookingService/pkg/types"
)

// Request is a candidate reservation. Room bookings carry a single date
// (StartDate == EndDate) with mandatory times and an attendee count;
// vehicle bookings carry a date range with optional boundary times.
type Request struct {
	Actor        domain.Actor
	ResourceType domain.ResourceType
	ResourceID   int64
	StartDate    time.Time
	EndDate      time.Time
	StartTime    types.TimeString
	EndTime      types.TimeString
	Purpose      string
	Attendees    *int
}

// Response is the persisted reservation
type Response struct {
	ID           int64
	ResourceType domain.ResourceType
	ResourceID   int64
	UserID       int64
	UserName     string
	StartDate    time.Time
	EndDate      time.Time
	StartTime    types.TimeString
	EndTime      types.TimeString
	Purpose      string
	Attendees    *int
	Status       domain.ReservationStatus

	InitialKilometers    *float64
	InitialChargePercent *float64

	CreatedAt time.Time
	UpdatedAt time.Time
}

// FromDomain maps a persisted reservation to the response model
func FromDomain(res *domain.Reservation) *Response {
	resp := &Response{
		ID:           res.ID,
		ResourceType: res.ResourceType,
		ResourceID:   res.ResourceID,
		UserID:       res.UserID,
		UserName:     res.UserName,
		StartDate:    res.StartDate,
		EndDate:      res.EndDate,
		StartTime:    res.StartTime,
		EndTime:      res.EndTime,
		Purpose:      res.Purpose,
		Attendees:    res.Attendees,
		Status:       res.Status,
		CreatedAt:    res.CreatedAt,
		UpdatedAt:    res.UpdatedAt,
	}
	if res.Vehicle != nil {
		km := res.Vehicle.InitialKilometers
		charge := res.Vehicle.InitialChargePercent
		resp.InitialKilometers = &km
		resp.InitialChargePercent = &charge
	}
	return resp
}
