package get_available_slots

import "errors"

var (
	// ErrResourceNotFound is returned when the room or vehicle does not exist
	ErrResourceNotFound = errors.New("get_available_slots: resource not found")

	// ErrInvalidInput is returned on malformed request data
	ErrInvalidInput = errors.New("get_available_slots: invalid input data")

	// ErrInternal is returned on unexpected use case failures
	ErrInternal = errors.New("get_available_slots: internal error")
)
