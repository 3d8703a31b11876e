package update_booking

import "errors"

var (
	// ErrReservationNotFound is returned when the edited reservation does not exist
	ErrReservationNotFound = errors.New("update_booking: reservation not found")

	// ErrAccessDenied is returned when the actor may not edit the reservation
	ErrAccessDenied = errors.New("update_booking: access denied")

	// ErrNotEditable is returned when the reservation status bars editing
	ErrNotEditable = errors.New("update_booking: reservation is not editable")

	// ErrInvalidInput is returned when a required field is missing or malformed
	ErrInvalidInput = errors.New("update_booking: invalid input data")

	// ErrEndBeforeStart is returned when the requested range ends before it starts
	ErrEndBeforeStart = errors.New("update_booking: end before start")

	// ErrResourceUnavailable is returned when the resource status bars reservations
	ErrResourceUnavailable = errors.New("update_booking: resource unavailable")

	// ErrCapacityExceeded is returned when attendees exceed the room capacity
	ErrCapacityExceeded = errors.New("update_booking: capacity exceeded")

	// ErrExceedsMaxDays is returned when a vehicle booking outlasts its day limit
	ErrExceedsMaxDays = errors.New("update_booking: exceeds max days")

	// ErrHoliday is returned when the requested date is a holiday
	ErrHoliday = errors.New("update_booking: date is a holiday")

	// ErrOutsideOpenHours is returned when the requested times leave the open window
	ErrOutsideOpenHours = errors.New("update_booking: outside open hours")

	// ErrConflict is returned when the range overlaps another reservation
	ErrConflict = errors.New("update_booking: conflict with existing reservation")

	// ErrInternal is returned on unexpected use case failures
	ErrInternal = errors.New("update_booking: internal error")
)
