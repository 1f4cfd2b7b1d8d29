package handlers

import (
	"errors"
	"net/http"

	"fleetflow/internal/apperr"
	"fleetflow/internal/logx"
	"fleetflow/internal/service/fleet"
)

// VehicleHandler serves vehicle registration and the shop toggle.
type VehicleHandler struct {
	fleet    fleetUsecase
	dispatch dispatchUsecase
	logger   logx.Logger
}

// NewVehicleHandler wires the fleet and dispatch usecases into HTTP handlers.
func NewVehicleHandler(logger logx.Logger, fleetUC fleetUsecase, dispatchUC dispatchUsecase) *VehicleHandler {
	return &VehicleHandler{fleet: fleetUC, dispatch: dispatchUC, logger: logger}
}

// Create handles POST /api/vehicles.
func (h *VehicleHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createVehicleRequest
	if ok := decodeJSON(h.logger, w, r, &req); !ok {
		return
	}

	_, err := h.fleet.AddVehicle(r.Context(), fleet.VehicleInput{
		Plate:           req.Plate,
		Model:           req.Model,
		MaxLoad:         req.MaxLoad,
		Odometer:        req.Odometer,
		AcquisitionCost: req.AcquisitionCost,
	})
	switch {
	case err == nil:
		respondFullState(h.logger, h.fleet, w, r)
	case errors.Is(err, apperr.Invalid):
		writeError(h.logger, w, r, http.StatusBadRequest, "All fields are required.")
	case errors.Is(err, apperr.Conflict):
		writeError(h.logger, w, r, http.StatusBadRequest, "Plate already registered.")
	default:
		writeError(h.logger, w, r, http.StatusInternalServerError, "Failed to add vehicle.")
	}
}

// ToggleShop handles POST /api/vehicles/{id}/toggle-shop.
func (h *VehicleHandler) ToggleShop(w http.ResponseWriter, r *http.Request) {
	id, err := idFromURL(r, "id")
	if err != nil {
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid id")
		return
	}

	err = h.dispatch.ToggleShop(r.Context(), id)
	switch {
	case err == nil:
		respondFullState(h.logger, h.fleet, w, r)
	case errors.Is(err, apperr.NotFound):
		writeError(h.logger, w, r, http.StatusNotFound, "Vehicle not found.")
	default:
		writeError(h.logger, w, r, http.StatusInternalServerError, "Failed to update vehicle.")
	}
}
