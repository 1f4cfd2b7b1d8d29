package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"fleetflow/internal/domain"
	"fleetflow/internal/service/auth"
	"fleetflow/internal/service/dispatch"
	"fleetflow/internal/service/fleet"
	"fleetflow/internal/service/reports"
)

type stubDispatchUsecase struct {
	dispatchFn       func(ctx context.Context, in dispatch.DispatchInput) (*domain.Trip, error)
	completeFn       func(ctx context.Context, tripID string) (*domain.Trip, error)
	toggleShopFn     func(ctx context.Context, vehicleID string) error
	logMaintenanceFn func(ctx context.Context, in dispatch.MaintenanceInput) (*domain.Maintenance, error)
}

func (s *stubDispatchUsecase) Dispatch(ctx context.Context, in dispatch.DispatchInput) (*domain.Trip, error) {
	if s.dispatchFn == nil {
		panic("Dispatch not expected in this test")
	}
	return s.dispatchFn(ctx, in)
}

func (s *stubDispatchUsecase) Complete(ctx context.Context, tripID string) (*domain.Trip, error) {
	if s.completeFn == nil {
		panic("Complete not expected in this test")
	}
	return s.completeFn(ctx, tripID)
}

func (s *stubDispatchUsecase) ToggleShop(ctx context.Context, vehicleID string) error {
	if s.toggleShopFn == nil {
		panic("ToggleShop not expected in this test")
	}
	return s.toggleShopFn(ctx, vehicleID)
}

func (s *stubDispatchUsecase) LogMaintenance(ctx context.Context, in dispatch.MaintenanceInput) (*domain.Maintenance, error) {
	if s.logMaintenanceFn == nil {
		panic("LogMaintenance not expected in this test")
	}
	return s.logMaintenanceFn(ctx, in)
}

type stubFleetUsecase struct {
	addVehicleFn func(ctx context.Context, in fleet.VehicleInput) (*domain.Vehicle, error)
	addExpenseFn func(ctx context.Context, in fleet.ExpenseInput) (*domain.Expense, error)
	stateFn      func(ctx context.Context) (*domain.FleetState, error)
}

func (s *stubFleetUsecase) AddVehicle(ctx context.Context, in fleet.VehicleInput) (*domain.Vehicle, error) {
	if s.addVehicleFn == nil {
		panic("AddVehicle not expected in this test")
	}
	return s.addVehicleFn(ctx, in)
}

func (s *stubFleetUsecase) AddExpense(ctx context.Context, in fleet.ExpenseInput) (*domain.Expense, error) {
	if s.addExpenseFn == nil {
		panic("AddExpense not expected in this test")
	}
	return s.addExpenseFn(ctx, in)
}

func (s *stubFleetUsecase) State(ctx context.Context) (*domain.FleetState, error) {
	if s.stateFn == nil {
		panic("State not expected in this test")
	}
	return s.stateFn(ctx)
}

type stubAuthUsecase struct {
	registerFn func(ctx context.Context, in auth.RegisterInput) (*domain.User, error)
	loginFn    func(ctx context.Context, email, password string) (*domain.User, error)
}

func (s *stubAuthUsecase) Register(ctx context.Context, in auth.RegisterInput) (*domain.User, error) {
	if s.registerFn == nil {
		panic("Register not expected in this test")
	}
	return s.registerFn(ctx, in)
}

func (s *stubAuthUsecase) Login(ctx context.Context, email, password string) (*domain.User, error) {
	if s.loginFn == nil {
		panic("Login not expected in this test")
	}
	return s.loginFn(ctx, email, password)
}

type stubReportsUsecase struct {
	financeFn func(ctx context.Context) (*reports.FinanceReport, error)
}

func (s *stubReportsUsecase) Finance(ctx context.Context) (*reports.FinanceReport, error) {
	if s.financeFn == nil {
		panic("Finance not expected in this test")
	}
	return s.financeFn(ctx)
}

// emptyStateFleet returns a stub whose State yields an empty snapshot,
// for tests that only care about the mutation outcome.
func emptyStateFleet() *stubFleetUsecase {
	return &stubFleetUsecase{
		stateFn: func(ctx context.Context) (*domain.FleetState, error) {
			return &domain.FleetState{}, nil
		},
	}
}

// withURLParam attaches a chi route parameter to the request context so
// handlers can be tested without mounting a router.
func withURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}
