package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"fleetflow/internal/apperr"
	"fleetflow/internal/domain"
)

// VehicleRepo represents vehicle repository.
type VehicleRepo struct{ db *pgxpool.Pool }

// NewVehicleRepo creates a new VehicleRepo.
func NewVehicleRepo(db *pgxpool.Pool) *VehicleRepo { return &VehicleRepo{db: db} }

// Get - returns vehicle by its ID, or nil when absent.
func (r *VehicleRepo) Get(ctx context.Context, id string) (*domain.Vehicle, error) {
	var v domain.Vehicle
	err := r.db.QueryRow(ctx,
		`SELECT id, plate, model, max_load, acquisition_cost, status, odometer
		 FROM vehicles WHERE id=$1`, id,
	).Scan(&v.ID, &v.Plate, &v.Model, &v.MaxLoad, &v.AcquisitionCost, &v.Status, &v.Odometer)
	if err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get vehicle %s: %w", id, err)
	}
	return &v, nil
}

// Create - creates a new vehicle.
func (r *VehicleRepo) Create(ctx context.Context, v *domain.Vehicle) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO vehicles (id, plate, model, max_load, acquisition_cost, status, odometer)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		v.ID, v.Plate, v.Model, v.MaxLoad, v.AcquisitionCost, string(v.Status), v.Odometer)
	if err != nil {
		if IsDuplicate(err) {
			return apperr.Conflict
		}
		return fmt.Errorf("create vehicle: %w", err)
	}
	return nil
}
