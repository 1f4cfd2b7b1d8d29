package domain

type (
	// VehicleStatus represents the availability status of a vehicle.
	VehicleStatus string
	// DriverStatus represents the duty status of a driver.
	DriverStatus string
	// LicenseStatus represents the validity of a driver's license.
	LicenseStatus string
	// TripStatus represents the lifecycle state of a trip.
	TripStatus string
)

// List of possible vehicle statuses. "In Shop" overrides trip-driven
// availability: a vehicle in the shop is never implicitly released.
const (
	VehicleAvailable VehicleStatus = "Available"
	VehicleOnTrip    VehicleStatus = "On Trip"
	VehicleInShop    VehicleStatus = "In Shop"
)

// List of possible driver statuses
const (
	DriverAvailable DriverStatus = "Available"
	DriverOnDuty    DriverStatus = "On Duty"
)

// List of possible license statuses
const (
	LicenseValid   LicenseStatus = "Valid"
	LicenseExpired LicenseStatus = "Expired"
)

// Trip lifecycle: Dispatched (initial) -> Completed (terminal).
// There is no cancellation or reassignment state.
const (
	TripDispatched TripStatus = "Dispatched"
	TripCompleted  TripStatus = "Completed"
)

var allowedVehicleStatuses = [...]VehicleStatus{
	VehicleAvailable, VehicleOnTrip, VehicleInShop,
}

var allowedDriverStatuses = [...]DriverStatus{
	DriverAvailable, DriverOnDuty,
}

var allowedLicenseStatuses = [...]LicenseStatus{
	LicenseValid, LicenseExpired,
}

var allowedTripStatuses = [...]TripStatus{
	TripDispatched, TripCompleted,
}

// Valid checks if the VehicleStatus is valid
func (s VehicleStatus) Valid() bool {
	for _, v := range allowedVehicleStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// Valid checks if the DriverStatus is valid
func (s DriverStatus) Valid() bool {
	for _, v := range allowedDriverStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// Valid checks if the LicenseStatus is valid
func (s LicenseStatus) Valid() bool {
	for _, v := range allowedLicenseStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// Valid checks if the TripStatus is valid
func (s TripStatus) Valid() bool {
	for _, v := range allowedTripStatuses {
		if s == v {
			return true
		}
	}
	return false
}
