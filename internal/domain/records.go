package domain

import "time"

// Maintenance is an append-only shop record. Logging one forces the
// vehicle into the In Shop status regardless of its prior state.
type Maintenance struct {
	ID          string
	VehicleID   string
	Description string
	Cost        float64
	Date        time.Time // calendar date, defaults to creation day
}

// Expense is an append-only fuel expense record.
type Expense struct {
	ID         string
	VehicleID  string
	FuelLiters float64
	FuelCost   float64
}
