package apperr

import (
	"errors"
	"fmt"
)

// Invalid is returned when the input fails domain validation.
var Invalid = errors.New("invalid input")

// Conflict indicates a uniqueness conflict (e.g. duplicate email or plate).
var Conflict = errors.New("conflict")

// NotFound indicates that the requested resource does not exist.
var NotFound = errors.New("not found")

// Unauthorized indicates a failed credential check.
var Unauthorized = errors.New("invalid credentials")

// BusinessRule is the base error for dispatch rule violations. Concrete
// violations wrap it so handlers can match the whole family at once.
var BusinessRule = errors.New("business rule violation")

// CapacityExceeded - cargo weight is over the vehicle's max load.
var CapacityExceeded = fmt.Errorf("%w: cargo exceeds max capacity", BusinessRule)

// LicenseExpired - the driver's license is expired.
var LicenseExpired = fmt.Errorf("%w: driver license expired", BusinessRule)

// VehicleUnavailable - the vehicle is not in the Available status.
var VehicleUnavailable = fmt.Errorf("%w: selected vehicle is not available", BusinessRule)
