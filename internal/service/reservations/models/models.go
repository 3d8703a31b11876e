package models

import (
	"errors"
	"time"

	"github.com/mobisfm/FM-BookingService/internal/domain"
)

var (
	// ErrInvalidStatus is returned for an unknown status string
	ErrInvalidStatus = errors.New("invalid reservation status")
)

// Request models

// TransitionRequest moves a reservation through its lifecycle
type TransitionRequest struct {
	Actor  domain.Actor
	Status string
	Reason string // cancellations only
}

// GetUserReservationsRequest lists a user's reservation history
type GetUserReservationsRequest struct {
	Actor           domain.Actor
	UserID          int64
	ResourceType    *string
	Status          *string
	IncludeInactive bool
}

// ToDomainFilter converts the request into a repository filter
func (r *GetUserReservationsRequest) ToDomainFilter() (domain.ReservationFilter, error) {
	filter := domain.ReservationFilter{
		UserID:          &r.UserID,
		IncludeInactive: r.IncludeInactive,
	}

	if r.ResourceType != nil {
		rt := domain.ResourceType(*r.ResourceType)
		if !rt.Valid() {
			return filter, errors.New("invalid resource type")
		}
		filter.ResourceType = rt
	}
	if r.Status != nil {
		status, err := ToDomainStatus(*r.Status)
		if err != nil {
			return filter, err
		}
		filter.Status = &status
	}

	return filter, nil
}

// Response models

// VehicleUsageResponse carries the odometer and charge readings of a
// vehicle reservation
type VehicleUsageResponse struct {
	InitialKilometers    float64  `json:"initialKilometers"`
	FinalKilometers      *float64 `json:"finalKilometers,omitempty"`
	InitialChargePercent float64  `json:"initialChargePercent"`
	FinalChargePercent   *float64 `json:"finalChargePercent,omitempty"`
	IsClosed             bool     `json:"isClosed"`
}

// ReservationResponse is the reservation DTO
type ReservationResponse struct {
	ID           int64  `json:"id"`
	ResourceType string `json:"resourceType"`
	ResourceID   int64  `json:"resourceId"`
	UserID       int64  `json:"userId"`
	UserName     string `json:"userName"`
	StartDate    string `json:"startDate"` // "2026-08-15"
	EndDate      string `json:"endDate"`
	StartTime    string `json:"startTime,omitempty"` // "10:00"
	EndTime      string `json:"endTime,omitempty"`
	Purpose      string `json:"purpose"`
	Attendees    *int   `json:"attendees,omitempty"`
	Status       string `json:"status"`

	Vehicle *VehicleUsageResponse `json:"vehicle,omitempty"`

	CancellationReason *string `json:"cancellationReason,omitempty"`
	CancelledAt        *string `json:"cancelledAt,omitempty"` // ISO 8601

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ReservationListResponse is the list DTO
type ReservationListResponse struct {
	Reservations []ReservationResponse `json:"reservations"`
}

// Conversion helpers

// FromDomainReservation converts a domain reservation to its DTO
func FromDomainReservation(r *domain.Reservation) *ReservationResponse {
	if r == nil {
		return nil
	}

	resp := &ReservationResponse{
		ID:                 r.ID,
		ResourceType:       string(r.ResourceType),
		ResourceID:         r.ResourceID,
		UserID:             r.UserID,
		UserName:           r.UserName,
		StartDate:          r.StartDate.Format(domain.DateFormat),
		EndDate:            r.EndDate.Format(domain.DateFormat),
		StartTime:          r.StartTime.String(),
		EndTime:            r.EndTime.String(),
		Purpose:            r.Purpose,
		Attendees:          r.Attendees,
		Status:             string(r.Status),
		CancellationReason: r.CancellationReason,
		CreatedAt:          r.CreatedAt,
		UpdatedAt:          r.UpdatedAt,
	}

	if r.Vehicle != nil {
		resp.Vehicle = &VehicleUsageResponse{
			InitialKilometers:    r.Vehicle.InitialKilometers,
			FinalKilometers:      r.Vehicle.FinalKilometers,
			InitialChargePercent: r.Vehicle.InitialChargePercent,
			FinalChargePercent:   r.Vehicle.FinalChargePercent,
			IsClosed:             r.Vehicle.IsClosed,
		}
	}
	if r.CancelledAt != nil {
		cancelled := r.CancelledAt.Format(time.RFC3339)
		resp.CancelledAt = &cancelled
	}

	return resp
}

// FromDomainReservationList converts a list of domain reservations
func FromDomainReservationList(list []*domain.Reservation) *ReservationListResponse {
	resp := &ReservationListResponse{
		Reservations: make([]ReservationResponse, 0, len(list)),
	}
	for _, r := range list {
		resp.Reservations = append(resp.Reservations, *FromDomainReservation(r))
	}
	return resp
}

// ToDomainStatus parses and validates a status string
func ToDomainStatus(s string) (domain.ReservationStatus, error) {
	status := domain.ReservationStatus(s)
	if !status.Valid() {
		return "", ErrInvalidStatus
	}
	return status, nil
}
