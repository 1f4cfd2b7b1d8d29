package handlers

import (
	"net/http"

	"fleetflow/internal/logx"
)

// StateHandler serves the aggregate state read.
type StateHandler struct {
	fleet  fleetUsecase
	logger logx.Logger
}

// NewStateHandler wires the fleet usecase into the state endpoint.
func NewStateHandler(logger logx.Logger, fleet fleetUsecase) *StateHandler {
	return &StateHandler{fleet: fleet, logger: logger}
}

// Get handles GET /api/state.
func (h *StateHandler) Get(w http.ResponseWriter, r *http.Request) {
	respondFullState(h.logger, h.fleet, w, r)
}

// respondFullState loads and writes the complete snapshot of all five
// collections. Every mutating endpoint ends with this call: the client never
// merges partial updates.
func respondFullState(logger logx.Logger, fleet fleetUsecase, w http.ResponseWriter, r *http.Request) {
	st, err := fleet.State(r.Context())
	if err != nil {
		writeError(logger, w, r, http.StatusInternalServerError, "Failed to load fleet state.")
		return
	}
	writeJSON(logger, w, r, http.StatusOK, stateToResponse(st))
}
