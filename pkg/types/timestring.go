package types

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"time"
)

var (
	// ErrInvalidTimeString is returned when a value is not a valid HH:MM string
	ErrInvalidTimeString = errors.New("invalid time string format, expected HH:MM")

	// ErrTimeOutOfRange is returned when an arithmetic result leaves the 00:00-23:59 range
	ErrTimeOutOfRange = errors.New("time is out of 00:00-23:59 range")
)

// timeLayout is the wire and storage format for times of day
const timeLayout = "15:04"

// TimeString is a wall-clock time of day in fixed zero-padded "HH:MM" format.
// The fixed format makes lexicographic comparison equivalent to chronological
// comparison, which the slot and overlap logic relies on.
type TimeString string

// NewTimeString builds a TimeString from the time-of-day part of t
func NewTimeString(t time.Time) TimeString {
	return TimeString(t.Format(timeLayout))
}

// NewTimeStringFromString parses and validates an "HH:MM" string
func NewTimeStringFromString(s string) (TimeString, error) {
	ts := TimeString(s)
	if err := ts.Validate(); err != nil {
		return "", err
	}
	return ts, nil
}

// NewTimeStringFromMinutes builds a TimeString from minutes since midnight
func NewTimeStringFromMinutes(minutes int) (TimeString, error) {
	if minutes < 0 || minutes >= 24*60 {
		return "", ErrTimeOutOfRange
	}
	return TimeString(fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)), nil
}

// Validate checks the fixed zero-padded HH:MM format
func (t TimeString) Validate() error {
	parsed, err := time.Parse(timeLayout, string(t))
	if err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidTimeString, string(t))
	}
	// time.Parse accepts "7:30"; require the canonical zero-padded form
	if parsed.Format(timeLayout) != string(t) {
		return fmt.Errorf("%w: %q", ErrInvalidTimeString, string(t))
	}
	return nil
}

// IsZero reports whether the value is empty (unset)
func (t TimeString) IsZero() bool {
	return t == ""
}

// String returns the "HH:MM" representation
func (t TimeString) String() string {
	return string(t)
}

// Minutes returns the value as minutes since midnight
func (t TimeString) Minutes() (int, error) {
	if err := t.Validate(); err != nil {
		return 0, err
	}
	parsed, _ := time.Parse(timeLayout, string(t))
	return parsed.Hour()*60 + parsed.Minute(), nil
}

// AddMinutes returns the time shifted forward by m minutes.
// Results crossing midnight are rejected.
func (t TimeString) AddMinutes(m int) (TimeString, error) {
	minutes, err := t.Minutes()
	if err != nil {
		return "", err
	}
	return NewTimeStringFromMinutes(minutes + m)
}

// IsBefore reports whether t is strictly earlier than other
func (t TimeString) IsBefore(other TimeString) bool {
	return string(t) < string(other)
}

// IsAfter reports whether t is strictly later than other
func (t TimeString) IsAfter(other TimeString) bool {
	return string(t) > string(other)
}

// Value implements driver.Valuer for storing as text
func (t TimeString) Value() (driver.Value, error) {
	if t.IsZero() {
		return nil, nil
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return string(t), nil
}

// Scan implements sql.Scanner for text and TIME columns
func (t *TimeString) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*t = ""
		return nil
	case string:
		*t = TimeString(v)
	case []byte:
		*t = TimeString(v)
	case time.Time:
		*t = NewTimeString(v)
	default:
		return fmt.Errorf("%w: unsupported scan type %T", ErrInvalidTimeString, src)
	}
	if *t == "" {
		return nil
	}
	// Postgres TIME values scanned as text carry seconds
	if len(*t) > 5 {
		*t = (*t)[:5]
	}
	return t.Validate()
}
