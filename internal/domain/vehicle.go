package domain

// Vehicle represents a fleet vehicle.
type Vehicle struct {
	ID              string
	Plate           string
	Model           string
	MaxLoad         int // kg
	AcquisitionCost float64
	Status          VehicleStatus
	Odometer        int // km
}
