package domain

// FleetState is the full snapshot of all five entity collections. Every
// mutating operation returns it so the client never merges partial updates.
type FleetState struct {
	Vehicles     []Vehicle
	Drivers      []Driver
	Trips        []Trip
	Maintenances []Maintenance
	Expenses     []Expense
}
