package fleet

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"fleetflow/internal/apperr"
	"fleetflow/internal/domain"
)

type mockVehicleRepo struct {
	createFn func(ctx context.Context, v *domain.Vehicle) error
}

func (m *mockVehicleRepo) Create(ctx context.Context, v *domain.Vehicle) error {
	return m.createFn(ctx, v)
}

type mockExpenseRepo struct {
	createFn func(ctx context.Context, e *domain.Expense) error
	existsFn func(ctx context.Context, vehicleID string) (bool, error)
}

func (m *mockExpenseRepo) Create(ctx context.Context, e *domain.Expense) error {
	return m.createFn(ctx, e)
}

func (m *mockExpenseRepo) VehicleExists(ctx context.Context, vehicleID string) (bool, error) {
	return m.existsFn(ctx, vehicleID)
}

type mockStateRepo struct {
	stateFn func(ctx context.Context) (*domain.FleetState, error)
}

func (m *mockStateRepo) State(ctx context.Context) (*domain.FleetState, error) {
	return m.stateFn(ctx)
}

func TestAddVehicle_Success(t *testing.T) {
	t.Parallel()

	var got *domain.Vehicle
	vehicles := &mockVehicleRepo{
		createFn: func(ctx context.Context, v *domain.Vehicle) error {
			got = v
			return nil
		},
	}
	service := NewService(vehicles, nil, nil, time.Second)

	v, err := service.AddVehicle(context.Background(), VehicleInput{
		Plate: "GJ-02-BB-0001", Model: "Volvo FH16",
		MaxLoad: 25000, Odometer: 1000, AcquisitionCost: 120000,
	})
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Equal(t, got, v)
	require.Equal(t, domain.VehicleAvailable, v.Status, "new vehicles start Available")
	require.True(t, strings.HasPrefix(v.ID, domain.VehicleIDPrefix))
}

func TestAddVehicle_Invalid(t *testing.T) {
	t.Parallel()

	vehicles := &mockVehicleRepo{
		createFn: func(ctx context.Context, v *domain.Vehicle) error {
			t.Fatal("Create should not be called on invalid input")
			return nil
		},
	}
	service := NewService(vehicles, nil, nil, time.Second)

	cases := []VehicleInput{
		{Plate: " ", Model: "m", MaxLoad: 1, Odometer: 0, AcquisitionCost: 0},
		{Plate: "p", Model: "", MaxLoad: 1, Odometer: 0, AcquisitionCost: 0},
		{Plate: "p", Model: "m", MaxLoad: 0, Odometer: 0, AcquisitionCost: 0},
		{Plate: "p", Model: "m", MaxLoad: 1, Odometer: -1, AcquisitionCost: 0},
		{Plate: "p", Model: "m", MaxLoad: 1, Odometer: 0, AcquisitionCost: -5},
	}
	for _, in := range cases {
		_, err := service.AddVehicle(context.Background(), in)
		require.ErrorIs(t, err, apperr.Invalid, "input %+v", in)
	}
}

func TestAddVehicle_DuplicatePlate(t *testing.T) {
	t.Parallel()

	vehicles := &mockVehicleRepo{
		createFn: func(ctx context.Context, v *domain.Vehicle) error {
			return apperr.Conflict
		},
	}
	service := NewService(vehicles, nil, nil, time.Second)

	_, err := service.AddVehicle(context.Background(), VehicleInput{
		Plate: "GJ-01-AA-1234", Model: "Volvo FH16", MaxLoad: 25000,
	})
	require.ErrorIs(t, err, apperr.Conflict)
}

func TestAddExpense_Success(t *testing.T) {
	t.Parallel()

	var got *domain.Expense
	expenses := &mockExpenseRepo{
		existsFn: func(ctx context.Context, vehicleID string) (bool, error) {
			require.Equal(t, "v1", vehicleID)
			return true, nil
		},
		createFn: func(ctx context.Context, e *domain.Expense) error {
			got = e
			return nil
		},
	}
	service := NewService(nil, expenses, nil, time.Second)

	e, err := service.AddExpense(context.Background(), ExpenseInput{
		VehicleID: "v1", FuelLiters: 80, FuelCost: 120.5,
	})
	require.NoError(t, err)
	require.Equal(t, got, e)
	require.True(t, strings.HasPrefix(e.ID, domain.ExpenseIDPrefix))
}

func TestAddExpense_UnknownVehicle(t *testing.T) {
	t.Parallel()

	expenses := &mockExpenseRepo{
		existsFn: func(ctx context.Context, vehicleID string) (bool, error) {
			return false, nil
		},
		createFn: func(ctx context.Context, e *domain.Expense) error {
			t.Fatal("Create should not be called for an unknown vehicle")
			return nil
		},
	}
	service := NewService(nil, expenses, nil, time.Second)

	_, err := service.AddExpense(context.Background(), ExpenseInput{
		VehicleID: "v-missing", FuelLiters: 80, FuelCost: 120,
	})
	require.ErrorIs(t, err, apperr.NotFound)
}

func TestAddExpense_Invalid(t *testing.T) {
	t.Parallel()

	service := NewService(nil, &mockExpenseRepo{}, nil, time.Second)

	_, err := service.AddExpense(context.Background(), ExpenseInput{VehicleID: "", FuelLiters: 1, FuelCost: 1})
	require.ErrorIs(t, err, apperr.Invalid)

	_, err = service.AddExpense(context.Background(), ExpenseInput{VehicleID: "v1", FuelLiters: 0, FuelCost: 1})
	require.ErrorIs(t, err, apperr.Invalid)

	_, err = service.AddExpense(context.Background(), ExpenseInput{VehicleID: "v1", FuelLiters: 1, FuelCost: -1})
	require.ErrorIs(t, err, apperr.Invalid)
}

func TestState_PassesThrough(t *testing.T) {
	t.Parallel()

	expected := &domain.FleetState{
		Vehicles: []domain.Vehicle{{ID: "v1"}},
		Drivers:  []domain.Driver{{ID: "d1"}},
	}
	state := &mockStateRepo{
		stateFn: func(ctx context.Context) (*domain.FleetState, error) {
			return expected, nil
		},
	}
	service := NewService(nil, nil, state, time.Second)

	got, err := service.State(context.Background())
	require.NoError(t, err)
	require.Equal(t, expected, got)
}

func TestState_RepoError(t *testing.T) {
	t.Parallel()

	wantErr := errors.New("db down")
	state := &mockStateRepo{
		stateFn: func(ctx context.Context) (*domain.FleetState, error) {
			return nil, wantErr
		},
	}
	service := NewService(nil, nil, state, time.Second)

	_, err := service.State(context.Background())
	require.ErrorIs(t, err, wantErr)
}
