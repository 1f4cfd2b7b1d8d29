//go:build integration

package repository_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/suite"

	"fleetflow/internal/domain"
	"fleetflow/internal/ports/dispatchtx"
	"fleetflow/internal/repository"
)

type DispatchRepositorySuite struct {
	suite.Suite
	repo        *repository.DispatchRepo
	vehicleRepo *repository.VehicleRepo
}

func (s *DispatchRepositorySuite) SetupSuite() {
	s.repo = repository.NewDispatchRepo(tcPool)
	s.vehicleRepo = repository.NewVehicleRepo(tcPool)
}

func (s *DispatchRepositorySuite) SetupTest() {
	s.Require().NoError(truncateAll(context.Background(), tcPool))
	s.Require().NoError(repository.Seed(context.Background(), tcPool))
}

func (s *DispatchRepositorySuite) TestWithTx_CommitsTripAndStatusUpdates() {
	ctx := context.Background()

	err := s.repo.WithTx(ctx, func(tx dispatchtx.Repository) error {
		v, err := tx.GetVehicleForUpdate(ctx, "v1")
		s.Require().NoError(err)
		s.Require().NotNil(v)
		s.Equal(domain.VehicleAvailable, v.Status)

		d, err := tx.GetDriverForUpdate(ctx, "d1")
		s.Require().NoError(err)
		s.Require().NotNil(d)

		if err := tx.InsertTrip(ctx, &domain.Trip{
			ID:          "t-int-1",
			VehicleID:   v.ID,
			DriverID:    d.ID,
			CargoWeight: 1000,
			Revenue:     500,
			Status:      domain.TripDispatched,
		}); err != nil {
			return err
		}
		if err := tx.UpdateVehicleStatus(ctx, v.ID, domain.VehicleOnTrip); err != nil {
			return err
		}
		return tx.UpdateDriverStatus(ctx, d.ID, domain.DriverOnDuty)
	})
	s.Require().NoError(err)

	v, err := s.vehicleRepo.Get(ctx, "v1")
	s.Require().NoError(err)
	s.Require().NotNil(v)
	s.Equal(domain.VehicleOnTrip, v.Status)

	var status string
	err = tcPool.QueryRow(ctx, `SELECT status FROM trips WHERE id = 't-int-1'`).Scan(&status)
	s.Require().NoError(err)
	s.Equal("Dispatched", status)
}

func (s *DispatchRepositorySuite) TestWithTx_RollsBackOnError() {
	ctx := context.Background()

	boom := errors.New("boom")
	err := s.repo.WithTx(ctx, func(tx dispatchtx.Repository) error {
		if err := tx.InsertTrip(ctx, &domain.Trip{
			ID:        "t-int-rollback",
			VehicleID: "v1",
			DriverID:  "d1",
			Status:    domain.TripDispatched,
		}); err != nil {
			return err
		}
		if err := tx.UpdateVehicleStatus(ctx, "v1", domain.VehicleOnTrip); err != nil {
			return err
		}
		return boom
	})
	s.Require().ErrorIs(err, boom)

	var count int
	s.Require().NoError(tcPool.QueryRow(ctx, `SELECT COUNT(*) FROM trips`).Scan(&count))
	s.Zero(count)

	v, err := s.vehicleRepo.Get(ctx, "v1")
	s.Require().NoError(err)
	s.Require().NotNil(v)
	s.Equal(domain.VehicleAvailable, v.Status)
}

func (s *DispatchRepositorySuite) TestGetVehicleForUpdate_MissingReturnsNil() {
	ctx := context.Background()

	err := s.repo.WithTx(ctx, func(tx dispatchtx.Repository) error {
		v, err := tx.GetVehicleForUpdate(ctx, "v-missing")
		s.Require().NoError(err)
		s.Nil(v)
		return nil
	})
	s.Require().NoError(err)
}

func (s *DispatchRepositorySuite) TestGetTrip_MissingReturnsNil() {
	ctx := context.Background()

	err := s.repo.WithTx(ctx, func(tx dispatchtx.Repository) error {
		trip, err := tx.GetTrip(ctx, "t-missing")
		s.Require().NoError(err)
		s.Nil(trip)
		return nil
	})
	s.Require().NoError(err)
}

func (s *DispatchRepositorySuite) TestUpdateTripStatus_NotFound() {
	ctx := context.Background()

	err := s.repo.WithTx(ctx, func(tx dispatchtx.Repository) error {
		return tx.UpdateTripStatus(ctx, "t-missing", domain.TripCompleted)
	})
	s.Require().Error(err)
	s.Contains(err.Error(), "not found")
}

func (s *DispatchRepositorySuite) TestInsertMaintenance_Commits() {
	ctx := context.Background()

	err := s.repo.WithTx(ctx, func(tx dispatchtx.Repository) error {
		if err := tx.InsertMaintenance(ctx, &domain.Maintenance{
			ID:          "m-int-1",
			VehicleID:   "v1",
			Description: "Brake pads",
			Cost:        450,
		}); err != nil {
			return err
		}
		return tx.UpdateVehicleStatus(ctx, "v1", domain.VehicleInShop)
	})
	s.Require().NoError(err)

	v, err := s.vehicleRepo.Get(ctx, "v1")
	s.Require().NoError(err)
	s.Require().NotNil(v)
	s.Equal(domain.VehicleInShop, v.Status)
}

func TestDispatchRepositorySuite(t *testing.T) {
	suite.Run(t, new(DispatchRepositorySuite))
}
