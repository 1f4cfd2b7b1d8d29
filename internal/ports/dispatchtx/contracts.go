package dispatchtx

import (
	"context"

	"fleetflow/internal/domain"
)

// Repository is the transaction-scoped storage surface the dispatch engine
// mutates. Getters return nil (not an error) when the row does not exist.
type Repository interface {
	GetVehicleForUpdate(ctx context.Context, id string) (*domain.Vehicle, error)
	GetDriverForUpdate(ctx context.Context, id string) (*domain.Driver, error)
	GetTrip(ctx context.Context, id string) (*domain.Trip, error)
	InsertTrip(ctx context.Context, t *domain.Trip) error
	UpdateTripStatus(ctx context.Context, id string, status domain.TripStatus) error
	UpdateVehicleStatus(ctx context.Context, id string, status domain.VehicleStatus) error
	UpdateDriverStatus(ctx context.Context, id string, status domain.DriverStatus) error
	InsertMaintenance(ctx context.Context, m *domain.Maintenance) error
}

// Runner is a transaction runner
type Runner interface {
	WithTx(ctx context.Context, fn func(tx Repository) error) error
}
