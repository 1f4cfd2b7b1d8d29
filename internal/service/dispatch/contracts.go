package dispatch

import (
	"context"

	"fleetflow/internal/ports/dispatchtx"
)

// dispatchRepository is the storage contract of the dispatch engine: a
// transaction runner over the tx-scoped repository the engine mutates.
type dispatchRepository interface {
	WithTx(ctx context.Context, fn func(tx dispatchtx.Repository) error) error
}
