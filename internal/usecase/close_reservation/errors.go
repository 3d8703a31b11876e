package close_reservation

import "errors"

var (
	// ErrReservationNotFound is returned when the reservation does not exist
	ErrReservationNotFound = errors.New("close_reservation: reservation not found")

	// ErrAccessDenied is returned when the actor is not an administrator
	ErrAccessDenied = errors.New("close_reservation: access denied")

	// ErrNotVehicle is returned when the reservation is not a vehicle reservation
	ErrNotVehicle = errors.New("close_reservation: not a vehicle reservation")

	// ErrNotApproved is returned when the reservation is not in the approved status
	ErrNotApproved = errors.New("close_reservation: reservation is not approved")

	// ErrAlreadyClosed is returned when the reservation was already closed out
	ErrAlreadyClosed = errors.New("close_reservation: reservation already closed")

	// ErrInvalidInput is returned when a required reading is missing or malformed
	ErrInvalidInput = errors.New("close_reservation: invalid input data")

	// ErrKilometersDecreased is returned when the final odometer reading is
	// below the reading recorded at pick-up
	ErrKilometersDecreased = errors.New("close_reservation: final kilometers below initial")

	// ErrInternal is returned on unexpected use case failures
	ErrInternal = errors.New("close_reservation: internal error")
)
