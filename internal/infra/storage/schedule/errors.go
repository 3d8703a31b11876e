package schedule

import "errors"

var (
	// ErrRuleNotFound is returned when no schedule rule row matches
	ErrRuleNotFound = errors.New("schedule.repository: schedule rule not found")

	// ErrHolidayNotFound is returned when the holiday does not exist
	ErrHolidayNotFound = errors.New("schedule.repository: holiday not found")

	// ErrDuplicateHoliday is returned on a unique violation for (day, month, year)
	ErrDuplicateHoliday = errors.New("schedule.repository: holiday already exists for date")

	// ErrBuildQuery is returned when a SQL query cannot be built
	ErrBuildQuery = errors.New("schedule.repository: failed to build query")

	// ErrExecQuery is returned when a SQL query fails to execute
	ErrExecQuery = errors.New("schedule.repository: failed to execute query")

	// ErrScanRow is returned when a result row cannot be scanned
	ErrScanRow = errors.New("schedule.repository: failed to scan row")
)
