package schedule

import "errors"

var (
	// ErrAccessDenied is returned when the actor is not an administrator
	ErrAccessDenied = errors.New("service.schedule: access denied")

	// ErrInvalidInput is returned when a field is missing or malformed
	ErrInvalidInput = errors.New("service.schedule: invalid input data")

	// ErrHolidayNotFound is returned when the holiday does not exist
	ErrHolidayNotFound = errors.New("service.schedule: holiday not found")

	// ErrDuplicateHoliday is returned when the date already has a holiday
	ErrDuplicateHoliday = errors.New("service.schedule: holiday already exists")

	// ErrInternal is returned on unexpected service failures
	ErrInternal = errors.New("service.schedule: internal error")
)
