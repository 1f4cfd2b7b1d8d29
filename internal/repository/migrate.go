package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Migrate creates the FleetFlow schema if it does not exist yet. The service
// owns its schema the same way the legacy backend did: idempotent DDL at
// startup, no external migration tool.
func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	stmts := []struct {
		name string
		ddl  string
	}{
		{"users", `
			CREATE TABLE IF NOT EXISTS users (
				id       VARCHAR(64) PRIMARY KEY,
				name     TEXT NOT NULL,
				email    TEXT NOT NULL UNIQUE,
				password TEXT NOT NULL,
				role     TEXT NOT NULL
			)`},
		{"vehicles", `
			CREATE TABLE IF NOT EXISTS vehicles (
				id               VARCHAR(64) PRIMARY KEY,
				plate            TEXT NOT NULL UNIQUE,
				model            TEXT NOT NULL,
				max_load         INT NOT NULL,
				acquisition_cost NUMERIC(12,2) NOT NULL,
				status           TEXT NOT NULL,
				odometer         INT NOT NULL
			)`},
		{"drivers", `
			CREATE TABLE IF NOT EXISTS drivers (
				id             VARCHAR(64) PRIMARY KEY,
				name           TEXT NOT NULL,
				license_status TEXT NOT NULL,
				status         TEXT NOT NULL,
				safety_score   INT NOT NULL
			)`},
		{"trips", `
			CREATE TABLE IF NOT EXISTS trips (
				id           VARCHAR(64) PRIMARY KEY,
				vehicle_id   VARCHAR(64) NOT NULL REFERENCES vehicles(id),
				driver_id    VARCHAR(64) NOT NULL REFERENCES drivers(id),
				cargo_weight INT NOT NULL,
				revenue      NUMERIC(12,2) NOT NULL,
				status       TEXT NOT NULL
			)`},
		{"maintenances", `
			CREATE TABLE IF NOT EXISTS maintenances (
				id          VARCHAR(64) PRIMARY KEY,
				vehicle_id  VARCHAR(64) NOT NULL REFERENCES vehicles(id),
				description TEXT NOT NULL,
				cost        NUMERIC(12,2) NOT NULL,
				date        DATE NOT NULL
			)`},
		{"expenses", `
			CREATE TABLE IF NOT EXISTS expenses (
				id          VARCHAR(64) PRIMARY KEY,
				vehicle_id  VARCHAR(64) NOT NULL REFERENCES vehicles(id),
				fuel_liters NUMERIC(12,2) NOT NULL,
				fuel_cost   NUMERIC(12,2) NOT NULL
			)`},
	}

	for _, s := range stmts {
		if _, err := pool.Exec(ctx, s.ddl); err != nil {
			return fmt.Errorf("create %s table: %w", s.name, err)
		}
	}
	return nil
}
