package update_booking

import (
	"time"

	"github.com/mobisfm/FM-BookingService/internal/domain"
	"github.com/mobisfm/FM-BookingService/pkg/types"
)

// Request rewrites the editable fields of an existing reservation. The
// resource itself cannot be moved; book anew for a different resource.
type Request struct {
	Actor         domain.Actor
	ReservationID int64
	StartDate     time.Time
	EndDate       time.Time
	StartTime     types.TimeString
	EndTime       types.TimeString
	Purpose       string
	Attendees     *int
}

// Response is the reservation after the edit
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
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// FromDomain maps the updated reservation to the response model
func FromDomain(res *domain.Reservation) *Response {
	return &Response{
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
}
