package fleet

import (
	"context"
	"strings"
	"time"

	"fleetflow/internal/apperr"
	"fleetflow/internal/domain"
)

// Service coordinates plain fleet CRUD: vehicle registration, fuel expense
// logging and the aggregate state read. Anything that touches cross-entity
// status lives in the dispatch engine instead.
type Service struct {
	vehicles         vehicleRepository
	expenses         expenseRepository
	state            stateRepository
	operationTimeout time.Duration
}

// NewService creates and configures a fleet Service.
func NewService(v vehicleRepository, e expenseRepository, st stateRepository, timeout time.Duration) *Service {
	if timeout <= 0 {
		timeout = 3 * time.Second
	}
	return &Service{vehicles: v, expenses: e, state: st, operationTimeout: timeout}
}

func (s *Service) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, s.operationTimeout)
}

// VehicleInput carries a vehicle registration request.
type VehicleInput struct {
	Plate           string
	Model           string
	MaxLoad         int
	Odometer        int
	AcquisitionCost float64
}

func (in *VehicleInput) validate() error {
	in.Plate = strings.TrimSpace(in.Plate)
	in.Model = strings.TrimSpace(in.Model)
	if in.Plate == "" || in.Model == "" {
		return apperr.Invalid
	}
	if in.MaxLoad <= 0 || in.Odometer < 0 || in.AcquisitionCost < 0 {
		return apperr.Invalid
	}
	return nil
}

// AddVehicle registers a new vehicle. New vehicles always start Available.
func (s *Service) AddVehicle(ctx context.Context, in VehicleInput) (*domain.Vehicle, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	v := &domain.Vehicle{
		ID:              domain.NewID(domain.VehicleIDPrefix),
		Plate:           in.Plate,
		Model:           in.Model,
		MaxLoad:         in.MaxLoad,
		AcquisitionCost: in.AcquisitionCost,
		Status:          domain.VehicleAvailable,
		Odometer:        in.Odometer,
	}
	if err := s.vehicles.Create(ctx, v); err != nil {
		return nil, err
	}
	return v, nil
}

// ExpenseInput carries a fuel expense request.
type ExpenseInput struct {
	VehicleID  string
	FuelLiters float64
	FuelCost   float64
}

func (in *ExpenseInput) validate() error {
	in.VehicleID = strings.TrimSpace(in.VehicleID)
	if in.VehicleID == "" || in.FuelLiters <= 0 || in.FuelCost < 0 {
		return apperr.Invalid
	}
	return nil
}

// AddExpense appends a fuel expense for an existing vehicle.
func (s *Service) AddExpense(ctx context.Context, in ExpenseInput) (*domain.Expense, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	ok, err := s.expenses.VehicleExists(ctx, in.VehicleID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apperr.NotFound
	}

	e := &domain.Expense{
		ID:         domain.NewID(domain.ExpenseIDPrefix),
		VehicleID:  in.VehicleID,
		FuelLiters: in.FuelLiters,
		FuelCost:   in.FuelCost,
	}
	if err := s.expenses.Create(ctx, e); err != nil {
		return nil, err
	}
	return e, nil
}

// State returns the complete current snapshot of all five collections.
// Called after every mutation and once at session start, so the snapshot
// returned after a mutation reflects that mutation.
func (s *Service) State(ctx context.Context) (*domain.FleetState, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	return s.state.State(ctx)
}
