package dispatch

import (
	"context"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"fleetflow/internal/apperr"
	"fleetflow/internal/domain"
	"fleetflow/internal/logx"
	"fleetflow/internal/ports/dispatchtx"
)

// Service is the trip dispatch and lifecycle engine. It is the only code
// that mutates cross-entity status, and every operation runs inside a single
// transaction: either all of its effects are visible or none are.
type Service struct {
	repo             dispatchRepository
	operationTimeout time.Duration
	logger           logx.Logger
	dispatched       prometheus.Counter
	completed        prometheus.Counter
	now              func() time.Time
}

// NewService creates and configures the dispatch engine. The counters may be
// nil (e.g. in tests).
func NewService(r dispatchRepository, timeout time.Duration, logger logx.Logger, dispatched, completed prometheus.Counter) *Service {
	if timeout <= 0 {
		timeout = 3 * time.Second
	}
	if logger == nil {
		logger = logx.Nop()
	}
	return &Service{
		repo:             r,
		operationTimeout: timeout,
		logger:           logger,
		dispatched:       dispatched,
		completed:        completed,
		now:              func() time.Time { return time.Now().UTC() },
	}
}

func (s *Service) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, s.operationTimeout)
}

// DispatchInput carries the validated request to open a trip.
type DispatchInput struct {
	VehicleID   string
	DriverID    string
	CargoWeight int
	Revenue     float64
}

func (in *DispatchInput) validate() error {
	in.VehicleID = strings.TrimSpace(in.VehicleID)
	in.DriverID = strings.TrimSpace(in.DriverID)
	if in.VehicleID == "" || in.DriverID == "" {
		return apperr.NotFound
	}
	if in.CargoWeight <= 0 || in.Revenue < 0 {
		return apperr.Invalid
	}
	return nil
}

// Dispatch assigns a vehicle and driver to a new trip.
//
// Preconditions, checked in order, first failure wins:
// both records exist; cargo within the vehicle's max load; driver license
// not expired; vehicle Available. Driver availability is deliberately not
// re-checked beyond what the client pre-filters.
func (s *Service) Dispatch(ctx context.Context, in DispatchInput) (*domain.Trip, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	var trip *domain.Trip
	err := s.repo.WithTx(ctx, func(tx dispatchtx.Repository) error {
		vehicle, err := tx.GetVehicleForUpdate(ctx, in.VehicleID)
		if err != nil {
			return err
		}
		driver, err := tx.GetDriverForUpdate(ctx, in.DriverID)
		if err != nil {
			return err
		}
		if vehicle == nil || driver == nil {
			return apperr.NotFound
		}
		if in.CargoWeight > vehicle.MaxLoad {
			return apperr.CapacityExceeded
		}
		if driver.LicenseStatus == domain.LicenseExpired {
			return apperr.LicenseExpired
		}
		if vehicle.Status != domain.VehicleAvailable {
			return apperr.VehicleUnavailable
		}

		t := &domain.Trip{
			ID:          domain.NewID(domain.TripIDPrefix),
			VehicleID:   vehicle.ID,
			DriverID:    driver.ID,
			CargoWeight: in.CargoWeight,
			Revenue:     in.Revenue,
			Status:      domain.TripDispatched,
		}
		if err := tx.InsertTrip(ctx, t); err != nil {
			return err
		}
		if err := tx.UpdateVehicleStatus(ctx, vehicle.ID, domain.VehicleOnTrip); err != nil {
			return err
		}
		if err := tx.UpdateDriverStatus(ctx, driver.ID, domain.DriverOnDuty); err != nil {
			return err
		}

		trip = t
		return nil
	})
	if err != nil {
		return nil, err
	}

	if s.dispatched != nil {
		s.dispatched.Inc()
	}
	s.logger.Info("trip dispatched",
		logx.String("event", "trip_dispatched"),
		logx.String("trip_id", trip.ID),
		logx.String("vehicle_id", trip.VehicleID),
		logx.String("driver_id", trip.DriverID),
		logx.Int("cargo_weight", trip.CargoWeight),
		logx.Float64("revenue", trip.Revenue),
	)

	return trip, nil
}

// Complete marks a trip Completed and releases its driver and vehicle.
//
// The trip's current status is not checked: completing an already-Completed
// trip re-runs the release logic, which is harmless. The vehicle is only
// released when it is not In Shop - a maintenance flag raised while the trip
// was open wins over trip completion. The driver is always released.
func (s *Service) Complete(ctx context.Context, tripID string) (*domain.Trip, error) {
	tripID = strings.TrimSpace(tripID)
	if tripID == "" {
		return nil, apperr.NotFound
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	var trip *domain.Trip
	err := s.repo.WithTx(ctx, func(tx dispatchtx.Repository) error {
		t, err := tx.GetTrip(ctx, tripID)
		if err != nil {
			return err
		}
		if t == nil {
			return apperr.NotFound
		}

		if err := tx.UpdateTripStatus(ctx, t.ID, domain.TripCompleted); err != nil {
			return err
		}

		vehicle, err := tx.GetVehicleForUpdate(ctx, t.VehicleID)
		if err != nil {
			return err
		}
		if vehicle != nil && vehicle.Status != domain.VehicleInShop {
			if err := tx.UpdateVehicleStatus(ctx, vehicle.ID, domain.VehicleAvailable); err != nil {
				return err
			}
		}
		if err := tx.UpdateDriverStatus(ctx, t.DriverID, domain.DriverAvailable); err != nil {
			return err
		}

		t.Status = domain.TripCompleted
		trip = t
		return nil
	})
	if err != nil {
		return nil, err
	}

	if s.completed != nil {
		s.completed.Inc()
	}
	s.logger.Info("trip completed",
		logx.String("event", "trip_completed"),
		logx.String("trip_id", trip.ID),
		logx.String("vehicle_id", trip.VehicleID),
		logx.String("driver_id", trip.DriverID),
	)

	return trip, nil
}

// ToggleShop flips a vehicle between In Shop and Available. A vehicle that
// is On Trip cannot be pulled into the shop administratively: the toggle is
// silently ignored and the current state is kept.
func (s *Service) ToggleShop(ctx context.Context, vehicleID string) error {
	vehicleID = strings.TrimSpace(vehicleID)
	if vehicleID == "" {
		return apperr.NotFound
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	return s.repo.WithTx(ctx, func(tx dispatchtx.Repository) error {
		vehicle, err := tx.GetVehicleForUpdate(ctx, vehicleID)
		if err != nil {
			return err
		}
		if vehicle == nil {
			return apperr.NotFound
		}
		if vehicle.Status == domain.VehicleOnTrip {
			return nil
		}

		next := domain.VehicleInShop
		if vehicle.Status == domain.VehicleInShop {
			next = domain.VehicleAvailable
		}
		return tx.UpdateVehicleStatus(ctx, vehicle.ID, next)
	})
}

// MaintenanceInput carries the validated request to log a maintenance event.
// A zero Date means "today".
type MaintenanceInput struct {
	VehicleID   string
	Description string
	Cost        float64
	Date        time.Time
}

func (in *MaintenanceInput) validate() error {
	in.VehicleID = strings.TrimSpace(in.VehicleID)
	in.Description = strings.TrimSpace(in.Description)
	if in.VehicleID == "" || in.Description == "" || in.Cost < 0 {
		return apperr.Invalid
	}
	return nil
}

// LogMaintenance appends a maintenance record and unconditionally forces the
// vehicle into In Shop - even from On Trip. A maintenance event always takes
// precedence, and the vehicle will not come back automatically when the open
// trip completes.
func (s *Service) LogMaintenance(ctx context.Context, in MaintenanceInput) (*domain.Maintenance, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	if in.Date.IsZero() {
		in.Date = s.now().Truncate(24 * time.Hour)
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	var rec *domain.Maintenance
	err := s.repo.WithTx(ctx, func(tx dispatchtx.Repository) error {
		vehicle, err := tx.GetVehicleForUpdate(ctx, in.VehicleID)
		if err != nil {
			return err
		}
		if vehicle == nil {
			return apperr.NotFound
		}

		m := &domain.Maintenance{
			ID:          domain.NewID(domain.MaintenanceIDPrefix),
			VehicleID:   vehicle.ID,
			Description: in.Description,
			Cost:        in.Cost,
			Date:        in.Date,
		}
		if err := tx.InsertMaintenance(ctx, m); err != nil {
			return err
		}
		if err := tx.UpdateVehicleStatus(ctx, vehicle.ID, domain.VehicleInShop); err != nil {
			return err
		}

		rec = m
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("maintenance logged",
		logx.String("event", "maintenance_logged"),
		logx.String("maintenance_id", rec.ID),
		logx.String("vehicle_id", rec.VehicleID),
		logx.Float64("cost", rec.Cost),
	)

	return rec, nil
}
