package resource

import "errors"

var (
	// ErrResourceNotFound is returned when the room or vehicle does not exist
	ErrResourceNotFound = errors.New("resource.repository: resource not found")

	// ErrBuildQuery is returned when a SQL query cannot be built
	ErrBuildQuery = errors.New("resource.repository: failed to build query")

	// ErrExecQuery is returned when a SQL query fails to execute
	ErrExecQuery = errors.New("resource.repository: failed to execute query")

	// ErrScanRow is returned when a result row cannot be scanned
	ErrScanRow = errors.New("resource.repository: failed to scan row")
)
