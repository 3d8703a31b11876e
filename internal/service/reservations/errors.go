package reservations

import "errors"

var (
	// ErrReservationNotFound is returned when the reservation does not exist
	ErrReservationNotFound = errors.New("service.reservations: reservation not found")

	// ErrAccessDenied is returned when the actor may not act on the reservation
	ErrAccessDenied = errors.New("service.reservations: access denied")

	// ErrInvalidStatus is returned when the target status is not a known value
	ErrInvalidStatus = errors.New("service.reservations: invalid status")

	// ErrInvalidTransition is returned when the lifecycle forbids the move
	ErrInvalidTransition = errors.New("service.reservations: invalid status transition")

	// ErrInvalidInput is returned when a required field is missing or malformed
	ErrInvalidInput = errors.New("service.reservations: invalid input data")

	// ErrInternal is returned on unexpected service failures
	ErrInternal = errors.New("service.reservations: internal error")
)
