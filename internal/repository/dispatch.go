package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"fleetflow/internal/domain"
	"fleetflow/internal/ports/dispatchtx"
)

// DispatchRepo owns the transactional storage surface of the dispatch
// engine. Every lifecycle operation runs inside a single transaction so the
// multi-step effects (trip + vehicle + driver) are never partially visible.
type DispatchRepo struct {
	db *pgxpool.Pool
}

// NewDispatchRepo creates a new DispatchRepo.
func NewDispatchRepo(db *pgxpool.Pool) *DispatchRepo {
	return &DispatchRepo{db: db}
}

// WithTx opens a transaction and executes fn within it.
func (r *DispatchRepo) WithTx(ctx context.Context, fn func(tx dispatchtx.Repository) error) (err error) {
	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}

	// roll back on panic before re-raising
	defer func() {
		if p := recover(); p != nil {
			err = tx.Rollback(ctx)
			if err != nil {
				panic(err)
			}
			panic(p)
		}
	}()

	wrapped := &TxRepo{tx: tx}

	if err := fn(wrapped); err != nil {
		if rbErr := tx.Rollback(ctx); rbErr != nil {
			return fmt.Errorf("rollback tx: %w (original error: %s)", rbErr, err.Error())
		}
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}

	return nil
}

// TxRepo represents transaction repository.
type TxRepo struct {
	tx pgx.Tx
}

// GetVehicleForUpdate - load a vehicle and lock its row for the transaction.
// The lock is what prevents two concurrent dispatches from double-booking.
func (r *TxRepo) GetVehicleForUpdate(ctx context.Context, id string) (*domain.Vehicle, error) {
	var v domain.Vehicle
	err := r.tx.QueryRow(ctx, `
        SELECT id, plate, model, max_load, acquisition_cost, status, odometer
        FROM vehicles
        WHERE id = $1
        FOR UPDATE
    `, id).Scan(&v.ID, &v.Plate, &v.Model, &v.MaxLoad, &v.AcquisitionCost, &v.Status, &v.Odometer)
	if err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get vehicle %s for update: %w", id, err)
	}
	return &v, nil
}

// GetDriverForUpdate - load a driver and lock its row for the transaction.
func (r *TxRepo) GetDriverForUpdate(ctx context.Context, id string) (*domain.Driver, error) {
	var d domain.Driver
	err := r.tx.QueryRow(ctx, `
        SELECT id, name, license_status, status, safety_score
        FROM drivers
        WHERE id = $1
        FOR UPDATE
    `, id).Scan(&d.ID, &d.Name, &d.LicenseStatus, &d.Status, &d.SafetyScore)
	if err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get driver %s for update: %w", id, err)
	}
	return &d, nil
}

// GetTrip - get trip by ID, nil when absent.
func (r *TxRepo) GetTrip(ctx context.Context, id string) (*domain.Trip, error) {
	var t domain.Trip
	err := r.tx.QueryRow(ctx, `
        SELECT id, vehicle_id, driver_id, cargo_weight, revenue, status
        FROM trips
        WHERE id = $1
    `, id).Scan(&t.ID, &t.VehicleID, &t.DriverID, &t.CargoWeight, &t.Revenue, &t.Status)
	if err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get trip %s: %w", id, err)
	}
	return &t, nil
}

// InsertTrip - insert a new trip.
func (r *TxRepo) InsertTrip(ctx context.Context, t *domain.Trip) error {
	_, err := r.tx.Exec(ctx, `
        INSERT INTO trips (id, vehicle_id, driver_id, cargo_weight, revenue, status)
        VALUES ($1, $2, $3, $4, $5, $6)
    `, t.ID, t.VehicleID, t.DriverID, t.CargoWeight, t.Revenue, string(t.Status))
	if err != nil {
		return fmt.Errorf("insert trip: %w", err)
	}
	return nil
}

// UpdateTripStatus - update trip status.
func (r *TxRepo) UpdateTripStatus(ctx context.Context, id string, status domain.TripStatus) error {
	ct, err := r.tx.Exec(ctx, `UPDATE trips SET status = $2 WHERE id = $1`, id, string(status))
	if err != nil {
		return fmt.Errorf("update trip status %s: %w", id, err)
	}
	if ct.RowsAffected() == 0 {
		return fmt.Errorf("trip %s not found", id)
	}
	return nil
}

// UpdateVehicleStatus - update vehicle status.
func (r *TxRepo) UpdateVehicleStatus(ctx context.Context, id string, status domain.VehicleStatus) error {
	ct, err := r.tx.Exec(ctx, `UPDATE vehicles SET status = $2 WHERE id = $1`, id, string(status))
	if err != nil {
		return fmt.Errorf("update vehicle status %s: %w", id, err)
	}
	if ct.RowsAffected() == 0 {
		return fmt.Errorf("vehicle %s not found", id)
	}
	return nil
}

// UpdateDriverStatus - update driver status.
func (r *TxRepo) UpdateDriverStatus(ctx context.Context, id string, status domain.DriverStatus) error {
	ct, err := r.tx.Exec(ctx, `UPDATE drivers SET status = $2 WHERE id = $1`, id, string(status))
	if err != nil {
		return fmt.Errorf("update driver status %s: %w", id, err)
	}
	if ct.RowsAffected() == 0 {
		return fmt.Errorf("driver %s not found", id)
	}
	return nil
}

// InsertMaintenance - append a maintenance record.
func (r *TxRepo) InsertMaintenance(ctx context.Context, m *domain.Maintenance) error {
	_, err := r.tx.Exec(ctx, `
        INSERT INTO maintenances (id, vehicle_id, description, cost, date)
        VALUES ($1, $2, $3, $4, $5)
    `, m.ID, m.VehicleID, m.Description, m.Cost, m.Date)
	if err != nil {
		return fmt.Errorf("insert maintenance: %w", err)
	}
	return nil
}

var _ dispatchtx.Repository = (*TxRepo)(nil)
var _ dispatchtx.Runner = (*DispatchRepo)(nil)
