package create_booking

import "errors"

// Each validation failure carries its own sentinel so handlers can surface
// a distinct, actionable message. Checks fail fast: the first failing check
// wins and nothing is persisted.
var (
	// ErrInvalidInput is returned when a required field is missing or malformed
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrEndBeforeStart is returned when the requested range ends before it starts
	ErrEndBeforeStart = errors.New("create_booking: end before start")

	// ErrResourceNotFound is returned when the room or vehicle does not exist
	ErrResourceNotFound = errors.New("create_booking: resource not found")

	// ErrResourceUnavailable is returned when the resource status bars new reservations
	ErrResourceUnavailable = errors.New("create_booking: resource unavailable")

	// ErrCapacityExceeded is returned when attendees exceed the room capacity
	ErrCapacityExceeded = errors.New("create_booking: capacity exceeded")

	// ErrExceedsMaxDays is returned when a vehicle booking outlasts its day limit
	ErrExceedsMaxDays = errors.New("create_booking: exceeds max days")

	// ErrHoliday is returned when the requested date is a holiday
	ErrHoliday = errors.New("create_booking: date is a holiday")

	// ErrOutsideOpenHours is returned when the requested times leave the open window
	ErrOutsideOpenHours = errors.New("create_booking: outside open hours")

	// ErrConflict is returned when the range overlaps an existing reservation
	ErrConflict = errors.New("create_booking: conflict with existing reservation")

	// ErrInternal is returned on unexpected use case failures
	ErrInternal = errors.New("create_booking: internal error")
)
