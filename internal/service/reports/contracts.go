package reports

import (
	"context"

	"fleetflow/internal/domain"
)

// stateRepository reads the full fleet snapshot the report is derived from.
type stateRepository interface {
	State(ctx context.Context) (*domain.FleetState, error)
}
