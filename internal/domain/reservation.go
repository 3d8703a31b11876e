package domain

import (
	"time"

	"github.com/mobisfm/FM-BookingService/pkg/types"
)

// ReservationStatus represents the lifecycle state of a reservation
type ReservationStatus string

const (
	StatusPending   ReservationStatus = "pending"
	StatusApproved  ReservationStatus = "approved"
	StatusRejected  ReservationStatus = "rejected"
	StatusCancelled ReservationStatus = "cancelled"
	StatusCompleted ReservationStatus = "completed"
)

// Valid reports whether the value is a known reservation status
func (s ReservationStatus) Valid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected, StatusCancelled, StatusCompleted:
		return true
	}
	return false
}

// IsTerminal reports whether no further transition may leave the status
func (s ReservationStatus) IsTerminal() bool {
	return s == StatusRejected || s == StatusCancelled || s == StatusCompleted
}

// transitions is the single source of truth for the reservation lifecycle
var transitions = map[ReservationStatus][]ReservationStatus{
	StatusPending:  {StatusApproved, StatusRejected, StatusCancelled},
	StatusApproved: {StatusCompleted, StatusCancelled},
}

// CanTransition reports whether from may move to target
func CanTransition(from, target ReservationStatus) bool {
	for _, next := range transitions[from] {
		if next == target {
			return true
		}
	}
	return false
}

// Actor is the authenticated identity acting on the engine, provided by the
// upstream auth layer and trusted as-is.
type Actor struct {
	ID      int64
	Name    string
	IsAdmin bool
}

// VehicleUsage holds the close-out state carried only by vehicle
// reservations. Final readings stay nil until the reservation is closed.
type VehicleUsage struct {
	InitialKilometers    float64
	FinalKilometers      *float64
	InitialChargePercent float64
	FinalChargePercent   *float64
	IsClosed             bool
}

// Reservation is the common reservation record. The ResourceType tag plus
// the optional Vehicle payload make the room/vehicle variants explicit:
// rooms book a single date (StartDate == EndDate) with mandatory times and
// an attendee count, vehicles book a date range with optional boundary
// times and a VehicleUsage payload.
type Reservation struct {
	ID           int64
	ResourceType ResourceType
	ResourceID   int64
	UserID       int64
	UserName     string
	StartDate    time.Time
	EndDate      time.Time
	StartTime    types.TimeString // vehicles: empty means from start of day
	EndTime      types.TimeString // vehicles: empty means until end of day
	Purpose      string
	Attendees    *int // rooms only
	Status       ReservationStatus
	Vehicle      *VehicleUsage // vehicle reservations only

	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsBlocking reports whether the reservation occupies its time range for
// conflict purposes. Everything not rejected or cancelled blocks: pending
// holds the slot provisionally, approved is authoritative, completed
// records an actual occupation.
func (r *Reservation) IsBlocking() bool {
	return r.Status != StatusRejected && r.Status != StatusCancelled
}

// CanBeCancelledBy reports whether the actor may cancel the reservation.
// Owners may cancel their own pending reservations; admins may also cancel
// approved ones.
func (r *Reservation) CanBeCancelledBy(actor Actor) bool {
	if actor.IsAdmin {
		return r.Status == StatusPending || r.Status == StatusApproved
	}
	return r.UserID == actor.ID && r.Status == StatusPending
}

// CanBeEditedBy reports whether the actor may update the reservation
func (r *Reservation) CanBeEditedBy(actor Actor) bool {
	if actor.IsAdmin {
		return r.Status == StatusPending || r.Status == StatusApproved
	}
	return r.UserID == actor.ID && r.Status == StatusPending
}

// DaySpan returns the inclusive number of calendar days the reservation
// covers (1 for a single-date booking)
func (r *Reservation) DaySpan() int {
	start := DateOnly(r.StartDate)
	end := DateOnly(r.EndDate)
	return int(end.Sub(start).Hours()/24) + 1
}

// ReservationFilter narrows repository queries for reservations
type ReservationFilter struct {
	ResourceType    ResourceType
	ResourceID      *int64
	UserID          *int64
	StartDate       *time.Time // reservations ending on/after this date
	EndDate         *time.Time // reservations starting on/before this date
	Status          *ReservationStatus
	IncludeInactive bool // include rejected/cancelled
}

// DateOnly strips the time-of-day part of t
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// SameDay reports whether two instants fall on the same calendar day
func SameDay(a, b time.Time) bool {
	y1, m1, d1 := a.Date()
	y2, m2, d2 := b.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
