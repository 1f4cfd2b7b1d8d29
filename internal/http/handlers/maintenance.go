package handlers

import (
	"errors"
	"net/http"

	"fleetflow/internal/apperr"
	"fleetflow/internal/logx"
	"fleetflow/internal/service/dispatch"
)

// MaintenanceHandler serves maintenance logging.
type MaintenanceHandler struct {
	dispatch dispatchUsecase
	fleet    fleetUsecase
	logger   logx.Logger
}

// NewMaintenanceHandler wires the dispatch and fleet usecases into HTTP handlers.
func NewMaintenanceHandler(logger logx.Logger, dispatchUC dispatchUsecase, fleetUC fleetUsecase) *MaintenanceHandler {
	return &MaintenanceHandler{dispatch: dispatchUC, fleet: fleetUC, logger: logger}
}

// Create handles POST /api/maintenances.
func (h *MaintenanceHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createMaintenanceRequest
	if ok := decodeJSON(h.logger, w, r, &req); !ok {
		return
	}

	date, err := parseDate(req.Date)
	if err != nil {
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid date, want YYYY-MM-DD")
		return
	}

	_, err = h.dispatch.LogMaintenance(r.Context(), dispatch.MaintenanceInput{
		VehicleID:   req.VehicleID,
		Description: req.Description,
		Cost:        req.Cost,
		Date:        date,
	})
	switch {
	case err == nil:
		respondFullState(h.logger, h.fleet, w, r)
	case errors.Is(err, apperr.Invalid):
		writeError(h.logger, w, r, http.StatusBadRequest, "Vehicle, description, and cost required.")
	case errors.Is(err, apperr.NotFound):
		writeError(h.logger, w, r, http.StatusBadRequest, "Vehicle not found.")
	default:
		writeError(h.logger, w, r, http.StatusInternalServerError, "Failed to add maintenance log.")
	}
}
