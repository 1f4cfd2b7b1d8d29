package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"fleetflow/internal/domain"
)

// StateRepo reads the full fleet snapshot. It is the storage side of the
// aggregator: five plain list queries, no filtering or pagination.
type StateRepo struct{ db *pgxpool.Pool }

// NewStateRepo creates a new StateRepo.
func NewStateRepo(db *pgxpool.Pool) *StateRepo { return &StateRepo{db: db} }

// State returns the complete current snapshot of all five collections.
func (r *StateRepo) State(ctx context.Context) (*domain.FleetState, error) {
	vehicles, err := r.listVehicles(ctx)
	if err != nil {
		return nil, err
	}
	drivers, err := r.listDrivers(ctx)
	if err != nil {
		return nil, err
	}
	trips, err := r.listTrips(ctx)
	if err != nil {
		return nil, err
	}
	maintenances, err := r.listMaintenances(ctx)
	if err != nil {
		return nil, err
	}
	expenses, err := r.listExpenses(ctx)
	if err != nil {
		return nil, err
	}
	return &domain.FleetState{
		Vehicles:     vehicles,
		Drivers:      drivers,
		Trips:        trips,
		Maintenances: maintenances,
		Expenses:     expenses,
	}, nil
}

func (r *StateRepo) listVehicles(ctx context.Context) ([]domain.Vehicle, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, plate, model, max_load, acquisition_cost, status, odometer
		 FROM vehicles ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list vehicles: %w", err)
	}
	defer rows.Close()

	out := make([]domain.Vehicle, 0)
	for rows.Next() {
		var v domain.Vehicle
		if err := rows.Scan(&v.ID, &v.Plate, &v.Model, &v.MaxLoad, &v.AcquisitionCost, &v.Status, &v.Odometer); err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, rows.Err()
}

func (r *StateRepo) listDrivers(ctx context.Context) ([]domain.Driver, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, name, license_status, status, safety_score FROM drivers ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list drivers: %w", err)
	}
	defer rows.Close()

	out := make([]domain.Driver, 0)
	for rows.Next() {
		var d domain.Driver
		if err := rows.Scan(&d.ID, &d.Name, &d.LicenseStatus, &d.Status, &d.SafetyScore); err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

func (r *StateRepo) listTrips(ctx context.Context) ([]domain.Trip, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, vehicle_id, driver_id, cargo_weight, revenue, status FROM trips ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list trips: %w", err)
	}
	defer rows.Close()

	out := make([]domain.Trip, 0)
	for rows.Next() {
		var t domain.Trip
		if err := rows.Scan(&t.ID, &t.VehicleID, &t.DriverID, &t.CargoWeight, &t.Revenue, &t.Status); err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

func (r *StateRepo) listMaintenances(ctx context.Context) ([]domain.Maintenance, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, vehicle_id, description, cost, date FROM maintenances ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list maintenances: %w", err)
	}
	defer rows.Close()

	out := make([]domain.Maintenance, 0)
	for rows.Next() {
		var m domain.Maintenance
		if err := rows.Scan(&m.ID, &m.VehicleID, &m.Description, &m.Cost, &m.Date); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

func (r *StateRepo) listExpenses(ctx context.Context) ([]domain.Expense, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, vehicle_id, fuel_liters, fuel_cost FROM expenses ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list expenses: %w", err)
	}
	defer rows.Close()

	out := make([]domain.Expense, 0)
	for rows.Next() {
		var e domain.Expense
		if err := rows.Scan(&e.ID, &e.VehicleID, &e.FuelLiters, &e.FuelCost); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}
