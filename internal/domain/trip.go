package domain

// Trip - a dispatched cargo run binding one vehicle and one driver.
// Immutable once Completed except the status itself, which never reverts.
type Trip struct {
	ID          string
	VehicleID   string
	DriverID    string
	CargoWeight int // kg, validated against the vehicle's max load at dispatch
	Revenue     float64
	Status      TripStatus
}
