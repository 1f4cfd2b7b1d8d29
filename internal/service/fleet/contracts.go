package fleet

import (
	"context"

	"fleetflow/internal/domain"
)

// vehicleRepository defines storage operations for vehicle registration.
type vehicleRepository interface {
	Create(ctx context.Context, v *domain.Vehicle) error
}

// expenseRepository defines storage operations for fuel expenses.
type expenseRepository interface {
	Create(ctx context.Context, e *domain.Expense) error
	VehicleExists(ctx context.Context, vehicleID string) (bool, error)
}

// stateRepository reads the full fleet snapshot.
type stateRepository interface {
	State(ctx context.Context) (*domain.FleetState, error)
}
