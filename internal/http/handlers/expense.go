package handlers

import (
	"errors"
	"net/http"

	"fleetflow/internal/apperr"
	"fleetflow/internal/logx"
	"fleetflow/internal/service/fleet"
)

// ExpenseHandler serves fuel expense logging.
type ExpenseHandler struct {
	fleet  fleetUsecase
	logger logx.Logger
}

// NewExpenseHandler wires the fleet usecase into HTTP handlers.
func NewExpenseHandler(logger logx.Logger, fleetUC fleetUsecase) *ExpenseHandler {
	return &ExpenseHandler{fleet: fleetUC, logger: logger}
}

// Create handles POST /api/expenses.
func (h *ExpenseHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createExpenseRequest
	if ok := decodeJSON(h.logger, w, r, &req); !ok {
		return
	}

	_, err := h.fleet.AddExpense(r.Context(), fleet.ExpenseInput{
		VehicleID:  req.VehicleID,
		FuelLiters: req.FuelLiters,
		FuelCost:   req.FuelCost,
	})
	switch {
	case err == nil:
		respondFullState(h.logger, h.fleet, w, r)
	case errors.Is(err, apperr.Invalid):
		writeError(h.logger, w, r, http.StatusBadRequest, "Vehicle, liters, and cost required.")
	case errors.Is(err, apperr.NotFound):
		writeError(h.logger, w, r, http.StatusBadRequest, "Vehicle not found.")
	default:
		writeError(h.logger, w, r, http.StatusInternalServerError, "Failed to add expense.")
	}
}
