package handlers

import (
	"context"

	"fleetflow/internal/domain"
	"fleetflow/internal/service/auth"
	"fleetflow/internal/service/dispatch"
	"fleetflow/internal/service/fleet"
	"fleetflow/internal/service/reports"
)

type dispatchUsecase interface {
	Dispatch(ctx context.Context, in dispatch.DispatchInput) (*domain.Trip, error)
	Complete(ctx context.Context, tripID string) (*domain.Trip, error)
	ToggleShop(ctx context.Context, vehicleID string) error
	LogMaintenance(ctx context.Context, in dispatch.MaintenanceInput) (*domain.Maintenance, error)
}

// NewDispatchUsecase wires the dispatch engine into a dispatchUsecase.
func NewDispatchUsecase(svc *dispatch.Service) dispatchUsecase {
	return svc
}

type fleetUsecase interface {
	AddVehicle(ctx context.Context, in fleet.VehicleInput) (*domain.Vehicle, error)
	AddExpense(ctx context.Context, in fleet.ExpenseInput) (*domain.Expense, error)
	State(ctx context.Context) (*domain.FleetState, error)
}

// NewFleetUsecase wires a fleet Service into a fleetUsecase.
func NewFleetUsecase(svc *fleet.Service) fleetUsecase {
	return svc
}

type authUsecase interface {
	Register(ctx context.Context, in auth.RegisterInput) (*domain.User, error)
	Login(ctx context.Context, email, password string) (*domain.User, error)
}

// NewAuthUsecase wires an auth Service into an authUsecase.
func NewAuthUsecase(svc *auth.Service) authUsecase {
	return svc
}

type reportsUsecase interface {
	Finance(ctx context.Context) (*reports.FinanceReport, error)
}

// NewReportsUsecase wires a reports Service into a reportsUsecase.
func NewReportsUsecase(svc *reports.Service) reportsUsecase {
	return svc
}
