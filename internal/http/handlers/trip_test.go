package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fleetflow/internal/apperr"
	"fleetflow/internal/domain"
	"fleetflow/internal/logx"
	"fleetflow/internal/service/dispatch"
)

const emptyStateJSON = `{"vehicles":[],"drivers":[],"trips":[],"maintenances":[],"expenses":[]}`

func TestTripHandler_Create_OK(t *testing.T) {
	t.Parallel()

	body := `{"vehicleId":"v1","driverId":"d1","cargoWeight":1000,"revenue":500}`
	req := httptest.NewRequest(http.MethodPost, "/api/trips", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	rr := httptest.NewRecorder()

	uc := &stubDispatchUsecase{
		dispatchFn: func(ctx context.Context, in dispatch.DispatchInput) (*domain.Trip, error) {
			require.Equal(t, "v1", in.VehicleID)
			require.Equal(t, "d1", in.DriverID)
			require.Equal(t, 1000, in.CargoWeight)
			require.InDelta(t, 500.0, in.Revenue, 1e-9)
			return &domain.Trip{ID: "t-abc", VehicleID: "v1", DriverID: "d1", Status: domain.TripDispatched}, nil
		},
	}

	h := NewTripHandler(logx.Nop(), uc, emptyStateFleet())
	h.Create(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, emptyStateJSON, rr.Body.String())
}

func TestTripHandler_Create_CapacityExceeded(t *testing.T) {
	t.Parallel()

	body := `{"vehicleId":"v1","driverId":"d1","cargoWeight":99999,"revenue":500}`
	req := httptest.NewRequest(http.MethodPost, "/api/trips", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	rr := httptest.NewRecorder()

	uc := &stubDispatchUsecase{
		dispatchFn: func(ctx context.Context, in dispatch.DispatchInput) (*domain.Trip, error) {
			return nil, apperr.CapacityExceeded
		},
	}

	h := NewTripHandler(logx.Nop(), uc, emptyStateFleet())
	h.Create(rr, req)

	require.Equal(t, http.StatusBadRequest, rr.Code)
	assert.JSONEq(t, `{"error": "Cargo exceeds max capacity."}`, rr.Body.String())
}

func TestTripHandler_Create_LicenseExpired(t *testing.T) {
	t.Parallel()

	body := `{"vehicleId":"v1","driverId":"d2","cargoWeight":100,"revenue":50}`
	req := httptest.NewRequest(http.MethodPost, "/api/trips", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	rr := httptest.NewRecorder()

	uc := &stubDispatchUsecase{
		dispatchFn: func(ctx context.Context, in dispatch.DispatchInput) (*domain.Trip, error) {
			return nil, apperr.LicenseExpired
		},
	}

	h := NewTripHandler(logx.Nop(), uc, emptyStateFleet())
	h.Create(rr, req)

	require.Equal(t, http.StatusBadRequest, rr.Code)
	assert.JSONEq(t, `{"error": "Driver license expired."}`, rr.Body.String())
}

func TestTripHandler_Create_VehicleUnavailable(t *testing.T) {
	t.Parallel()

	body := `{"vehicleId":"v2","driverId":"d1","cargoWeight":100,"revenue":50}`
	req := httptest.NewRequest(http.MethodPost, "/api/trips", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	rr := httptest.NewRecorder()

	uc := &stubDispatchUsecase{
		dispatchFn: func(ctx context.Context, in dispatch.DispatchInput) (*domain.Trip, error) {
			return nil, apperr.VehicleUnavailable
		},
	}

	h := NewTripHandler(logx.Nop(), uc, emptyStateFleet())
	h.Create(rr, req)

	require.Equal(t, http.StatusBadRequest, rr.Code)
	assert.JSONEq(t, `{"error": "Selected vehicle is not available."}`, rr.Body.String())
}

func TestTripHandler_Create_UnknownVehicle(t *testing.T) {
	t.Parallel()

	body := `{"vehicleId":"nope","driverId":"d1","cargoWeight":100,"revenue":50}`
	req := httptest.NewRequest(http.MethodPost, "/api/trips", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	rr := httptest.NewRecorder()

	uc := &stubDispatchUsecase{
		dispatchFn: func(ctx context.Context, in dispatch.DispatchInput) (*domain.Trip, error) {
			return nil, apperr.NotFound
		},
	}

	h := NewTripHandler(logx.Nop(), uc, emptyStateFleet())
	h.Create(rr, req)

	require.Equal(t, http.StatusBadRequest, rr.Code)
	assert.JSONEq(t, `{"error": "Select vehicle and driver."}`, rr.Body.String())
}

func TestTripHandler_Create_InvalidJSON(t *testing.T) {
	t.Parallel()

	body := `{"vehicleId":`
	req := httptest.NewRequest(http.MethodPost, "/api/trips", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	rr := httptest.NewRecorder()

	uc := &stubDispatchUsecase{
		dispatchFn: func(ctx context.Context, in dispatch.DispatchInput) (*domain.Trip, error) {
			require.FailNow(t, "usecase.Dispatch must not be called on invalid json")
			return nil, nil
		},
	}

	h := NewTripHandler(logx.Nop(), uc, emptyStateFleet())
	h.Create(rr, req)

	require.Equal(t, http.StatusBadRequest, rr.Code)
	assert.JSONEq(t, `{"error": "invalid json"}`, rr.Body.String())
}

func TestTripHandler_Create_InternalError(t *testing.T) {
	t.Parallel()

	body := `{"vehicleId":"v1","driverId":"d1","cargoWeight":100,"revenue":50}`
	req := httptest.NewRequest(http.MethodPost, "/api/trips", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	rr := httptest.NewRecorder()

	uc := &stubDispatchUsecase{
		dispatchFn: func(ctx context.Context, in dispatch.DispatchInput) (*domain.Trip, error) {
			return nil, errors.New("boom")
		},
	}

	h := NewTripHandler(logx.Nop(), uc, emptyStateFleet())
	h.Create(rr, req)

	require.Equal(t, http.StatusInternalServerError, rr.Code)

	var resp map[string]string
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	require.Contains(t, resp, "error")
	require.NotEmpty(t, resp["error"])
}

func TestTripHandler_Complete_OK(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodPost, "/api/trips/t-abc/complete", nil)
	req = withURLParam(req, "id", "t-abc")

	rr := httptest.NewRecorder()

	uc := &stubDispatchUsecase{
		completeFn: func(ctx context.Context, tripID string) (*domain.Trip, error) {
			require.Equal(t, "t-abc", tripID)
			return &domain.Trip{ID: tripID, Status: domain.TripCompleted}, nil
		},
	}

	h := NewTripHandler(logx.Nop(), uc, emptyStateFleet())
	h.Complete(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, emptyStateJSON, rr.Body.String())
}

func TestTripHandler_Complete_NotFound(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodPost, "/api/trips/t-miss/complete", nil)
	req = withURLParam(req, "id", "t-miss")

	rr := httptest.NewRecorder()

	uc := &stubDispatchUsecase{
		completeFn: func(ctx context.Context, tripID string) (*domain.Trip, error) {
			return nil, apperr.NotFound
		},
	}

	h := NewTripHandler(logx.Nop(), uc, emptyStateFleet())
	h.Complete(rr, req)

	require.Equal(t, http.StatusNotFound, rr.Code)
	assert.JSONEq(t, `{"error": "Trip not found."}`, rr.Body.String())
}
