package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"fleetflow/internal/domain"
)

// Seed inserts the demo data set when the corresponding tables are empty.
// The records match the legacy backend's seed, including the short IDs.
func Seed(ctx context.Context, pool *pgxpool.Pool) error {
	if err := seedUsers(ctx, pool); err != nil {
		return err
	}
	if err := seedVehicles(ctx, pool); err != nil {
		return err
	}
	return seedDrivers(ctx, pool)
}

func tableEmpty(ctx context.Context, pool *pgxpool.Pool, table string) (bool, error) {
	var count int
	if err := pool.QueryRow(ctx, `SELECT COUNT(*) FROM `+table).Scan(&count); err != nil {
		return false, fmt.Errorf("count %s: %w", table, err)
	}
	return count == 0, nil
}

func seedUsers(ctx context.Context, pool *pgxpool.Pool) error {
	empty, err := tableEmpty(ctx, pool, "users")
	if err != nil || !empty {
		return err
	}
	_, err = pool.Exec(ctx, `
		INSERT INTO users (id, name, email, password, role)
		VALUES ($1, $2, $3, $4, $5)
	`, "u1", "Demo Manager", "fleet.manager@company.com", "password", "Fleet Manager")
	if err != nil {
		return fmt.Errorf("seed users: %w", err)
	}
	return nil
}

func seedVehicles(ctx context.Context, pool *pgxpool.Pool) error {
	empty, err := tableEmpty(ctx, pool, "vehicles")
	if err != nil || !empty {
		return err
	}
	vehicles := []domain.Vehicle{
		{ID: "v1", Plate: "GJ-01-AA-1234", Model: "Volvo FH16", MaxLoad: 25000, AcquisitionCost: 120000, Status: domain.VehicleAvailable, Odometer: 150000},
		{ID: "v2", Plate: "GJ-01-AA-5678", Model: "Tata Prima", MaxLoad: 18000, AcquisitionCost: 90000, Status: domain.VehicleInShop, Odometer: 210000},
		{ID: "v3", Plate: "GJ-01-AA-9999", Model: "Ashok Leyland 3718", MaxLoad: 22000, AcquisitionCost: 100000, Status: domain.VehicleAvailable, Odometer: 95000},
	}
	for _, v := range vehicles {
		_, err := pool.Exec(ctx, `
			INSERT INTO vehicles (id, plate, model, max_load, acquisition_cost, status, odometer)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
		`, v.ID, v.Plate, v.Model, v.MaxLoad, v.AcquisitionCost, string(v.Status), v.Odometer)
		if err != nil {
			return fmt.Errorf("seed vehicle %s: %w", v.ID, err)
		}
	}
	return nil
}

func seedDrivers(ctx context.Context, pool *pgxpool.Pool) error {
	empty, err := tableEmpty(ctx, pool, "drivers")
	if err != nil || !empty {
		return err
	}
	drivers := []domain.Driver{
		{ID: "d1", Name: "Ravi Patel", LicenseStatus: domain.LicenseValid, Status: domain.DriverAvailable, SafetyScore: 92},
		{ID: "d2", Name: "Sanjay Kumar", LicenseStatus: domain.LicenseExpired, Status: domain.DriverAvailable, SafetyScore: 76},
		{ID: "d3", Name: "Meera Shah", LicenseStatus: domain.LicenseValid, Status: domain.DriverAvailable, SafetyScore: 88},
	}
	for _, d := range drivers {
		_, err := pool.Exec(ctx, `
			INSERT INTO drivers (id, name, license_status, status, safety_score)
			VALUES ($1, $2, $3, $4, $5)
		`, d.ID, d.Name, string(d.LicenseStatus), string(d.Status), d.SafetyScore)
		if err != nil {
			return fmt.Errorf("seed driver %s: %w", d.ID, err)
		}
	}
	return nil
}
