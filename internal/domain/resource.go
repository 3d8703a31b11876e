package domain

import "time"

// ResourceType discriminates the bookable resource variants
type ResourceType string

const (
	ResourceTypeRoom    ResourceType = "room"
	ResourceTypeVehicle ResourceType = "vehicle"
)

// Valid reports whether the value is a known resource type
func (t ResourceType) Valid() bool {
	return t == ResourceTypeRoom || t == ResourceTypeVehicle
}

// ResourceStatus gates whether a resource can be offered for new reservations
type ResourceStatus string

const (
	ResourceAvailable   ResourceStatus = "available"
	ResourceMaintenance ResourceStatus = "maintenance"
	ResourceUnavailable ResourceStatus = "unavailable"
	ResourceInUse       ResourceStatus = "in_use"
)

// Bookable reports whether new reservations may target the resource
func (s ResourceStatus) Bookable() bool {
	return s == ResourceAvailable
}

// Room is a bookable meeting room
type Room struct {
	ID          int64
	Name        string
	Location    string
	MaxCapacity int
	Status      ResourceStatus
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// PowerSource tells which charge reading a vehicle reports
type PowerSource string

const (
	PowerSourceFuel    PowerSource = "fuel"
	PowerSourceBattery PowerSource = "battery"
)

// Vehicle is a bookable fleet vehicle. CurrentKilometers and ChargePercent
// track the state pushed back by the latest reservation close-out.
type Vehicle struct {
	ID                 int64
	Name               string
	LicensePlate       string
	PowerSource        PowerSource
	Status             ResourceStatus
	MaxReservationDays int // 0 = unlimited
	CurrentKilometers  float64
	ChargePercent      float64
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// HasReservationDayLimit reports whether a duration limit applies
func (v *Vehicle) HasReservationDayLimit() bool {
	return v.MaxReservationDays > 0
}
