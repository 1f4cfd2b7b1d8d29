package domain

import (
	"strings"

	"github.com/google/uuid"
)

// Entity ID prefixes. IDs keep the "one prefix letter per entity type"
// shape of the legacy data set, so seeded records like "v1" and freshly
// generated ones share a namespace.
const (
	UserIDPrefix        = "u"
	VehicleIDPrefix     = "v"
	DriverIDPrefix      = "d"
	TripIDPrefix        = "t"
	MaintenanceIDPrefix = "m"
	ExpenseIDPrefix     = "x"
)

// NewID returns a collision-resistant prefixed identifier, e.g.
// "v3f1c2a8e...". Random UUIDs replace the millisecond timestamps the
// legacy backend used, which could collide under concurrent requests.
func NewID(prefix string) string {
	return prefix + strings.ReplaceAll(uuid.NewString(), "-", "")
}
