package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"fleetflow/internal/domain"
)

// ExpenseRepo represents the append-only fuel expense repository.
type ExpenseRepo struct{ db *pgxpool.Pool }

// NewExpenseRepo creates a new ExpenseRepo.
func NewExpenseRepo(db *pgxpool.Pool) *ExpenseRepo { return &ExpenseRepo{db: db} }

// Create - appends a fuel expense record.
func (r *ExpenseRepo) Create(ctx context.Context, e *domain.Expense) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO expenses (id, vehicle_id, fuel_liters, fuel_cost)
		 VALUES ($1, $2, $3, $4)`,
		e.ID, e.VehicleID, e.FuelLiters, e.FuelCost)
	if err != nil {
		return fmt.Errorf("create expense: %w", err)
	}
	return nil
}

// VehicleExists reports whether the referenced vehicle is present.
func (r *ExpenseRepo) VehicleExists(ctx context.Context, vehicleID string) (bool, error) {
	var one int
	err := r.db.QueryRow(ctx, `SELECT 1 FROM vehicles WHERE id=$1`, vehicleID).Scan(&one)
	if err != nil {
		if IsNotFound(err) {
			return false, nil
		}
		return false, fmt.Errorf("check vehicle %s: %w", vehicleID, err)
	}
	return true, nil
}
