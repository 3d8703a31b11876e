package create_booking

import (
	"time"

	"github.com/mobisfm/FM-BookingService/internal/domain"
	createBooking "github.com/mobisfm/FM-BookingService/internal/usecase/create_booking"
	"github.com/mobisfm/FM-BookingService/pkg/types"
)

// CreateReservationRequest HTTP request model. Rooms carry a single date
// with mandatory times and attendees; vehicles carry a date range with
// optional boundary times.
type CreateReservationRequest struct {
	ResourceType string `json:"resourceType"` // "room" | "vehicle"
	ResourceID   int64  `json:"resourceId"`
	StartDate    string `json:"startDate"` // "2026-08-15"
	EndDate      string `json:"endDate"`
	StartTime    string `json:"startTime,omitempty"` // "10:00"
	EndTime      string `json:"endTime,omitempty"`
	Purpose      string `json:"purpose"`
	Attendees    *int   `json:"attendees,omitempty"`
}

// ReservationResponse HTTP response model
type ReservationResponse struct {
	ID           int64  `json:"id"`
	ResourceType string `json:"resourceType"`
	ResourceID   int64  `json:"resourceId"`
	UserID       int64  `json:"userId"`
	UserName     string `json:"userName"`
	StartDate    string `json:"startDate"`
	EndDate      string `json:"endDate"`
	StartTime    string `json:"startTime,omitempty"`
	EndTime      string `json:"endTime,omitempty"`
	Purpose      string `json:"purpose"`
	Attendees    *int   `json:"attendees,omitempty"`
	Status       string `json:"status"`

	InitialKilometers    *float64 `json:"initialKilometers,omitempty"`
	InitialChargePercent *float64 `json:"initialChargePercent,omitempty"`

	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

// ToUseCaseRequest converts the HTTP request, parsing dates and times
func (r *CreateReservationRequest) ToUseCaseRequest(actor domain.Actor) (*createBooking.Request, error) {
	startDate, err := time.Parse(domain.DateFormat, r.StartDate)
	if err != nil {
		return nil, err
	}
	endDate, err := time.Parse(domain.DateFormat, r.EndDate)
	if err != nil {
		return nil, err
	}

	var startTime, endTime types.TimeString
	if r.StartTime != "" {
		if startTime, err = types.NewTimeStringFromString(r.StartTime); err != nil {
			return nil, err
		}
	}
	if r.EndTime != "" {
		if endTime, err = types.NewTimeStringFromString(r.EndTime); err != nil {
			return nil, err
		}
	}

	return &createBooking.Request{
		Actor:        actor,
		ResourceType: domain.ResourceType(r.ResourceType),
		ResourceID:   r.ResourceID,
		StartDate:    startDate,
		EndDate:      endDate,
		StartTime:    startTime,
		EndTime:      endTime,
		Purpose:      r.Purpose,
		Attendees:    r.Attendees,
	}, nil
}

// FromUseCaseResponse converts the use case response to the HTTP model
func FromUseCaseResponse(resp *createBooking.Response) *ReservationResponse {
	return &ReservationResponse{
		ID:                   resp.ID,
		ResourceType:         string(resp.ResourceType),
		ResourceID:           resp.ResourceID,
		UserID:               resp.UserID,
		UserName:             resp.UserName,
		StartDate:            resp.StartDate.Format(domain.DateFormat),
		EndDate:              resp.EndDate.Format(domain.DateFormat),
		StartTime:            resp.StartTime.String(),
		EndTime:              resp.EndTime.String(),
		Purpose:              resp.Purpose,
		Attendees:            resp.Attendees,
		Status:               string(resp.Status),
		InitialKilometers:    resp.InitialKilometers,
		InitialChargePercent: resp.InitialChargePercent,
		CreatedAt:            resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:            resp.UpdatedAt.Format(time.RFC3339),
	}
}
