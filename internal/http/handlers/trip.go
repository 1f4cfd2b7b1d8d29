package handlers

import (
	"errors"
	"net/http"

	"fleetflow/internal/apperr"
	"fleetflow/internal/logx"
	"fleetflow/internal/service/dispatch"
)

// TripHandler serves trip dispatch and completion.
type TripHandler struct {
	dispatch dispatchUsecase
	fleet    fleetUsecase
	logger   logx.Logger
}

// NewTripHandler wires the dispatch and fleet usecases into HTTP handlers.
func NewTripHandler(logger logx.Logger, dispatchUC dispatchUsecase, fleetUC fleetUsecase) *TripHandler {
	return &TripHandler{dispatch: dispatchUC, fleet: fleetUC, logger: logger}
}

// Create handles POST /api/trips.
func (h *TripHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createTripRequest
	if ok := decodeJSON(h.logger, w, r, &req); !ok {
		return
	}

	_, err := h.dispatch.Dispatch(r.Context(), dispatch.DispatchInput{
		VehicleID:   req.VehicleID,
		DriverID:    req.DriverID,
		CargoWeight: req.CargoWeight,
		Revenue:     req.Revenue,
	})
	switch {
	case err == nil:
		respondFullState(h.logger, h.fleet, w, r)
	case errors.Is(err, apperr.CapacityExceeded):
		writeError(h.logger, w, r, http.StatusBadRequest, "Cargo exceeds max capacity.")
	case errors.Is(err, apperr.LicenseExpired):
		writeError(h.logger, w, r, http.StatusBadRequest, "Driver license expired.")
	case errors.Is(err, apperr.VehicleUnavailable):
		writeError(h.logger, w, r, http.StatusBadRequest, "Selected vehicle is not available.")
	case errors.Is(err, apperr.NotFound):
		writeError(h.logger, w, r, http.StatusBadRequest, "Select vehicle and driver.")
	case errors.Is(err, apperr.Invalid):
		writeError(h.logger, w, r, http.StatusBadRequest, "Cargo weight and revenue must be positive.")
	default:
		writeError(h.logger, w, r, http.StatusInternalServerError, "Failed to create trip.")
	}
}

// Complete handles POST /api/trips/{id}/complete.
func (h *TripHandler) Complete(w http.ResponseWriter, r *http.Request) {
	id, err := idFromURL(r, "id")
	if err != nil {
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid id")
		return
	}

	_, err = h.dispatch.Complete(r.Context(), id)
	switch {
	case err == nil:
		respondFullState(h.logger, h.fleet, w, r)
	case errors.Is(err, apperr.NotFound):
		writeError(h.logger, w, r, http.StatusNotFound, "Trip not found.")
	default:
		writeError(h.logger, w, r, http.StatusInternalServerError, "Failed to complete trip.")
	}
}
