package app

import (
	"errors"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/dig"

	"fleetflow/internal/metrics"
)

type metricsOut struct {
	dig.Out
	RateLimitExceeded prometheus.Counter `name:"rate_limit_exceeded_total"`
	TripsDispatched   prometheus.Counter `name:"trips_dispatched_total"`
	TripsCompleted    prometheus.Counter `name:"trips_completed_total"`
}

func provideMetrics() (metricsOut, error) {
	rl, err := registerCounter("rate_limit_exceeded_total", metrics.NewRateLimitExceededTotal())
	if err != nil {
		return metricsOut{}, err
	}
	td, err := registerCounter("trips_dispatched_total", metrics.NewTripsDispatchedTotal())
	if err != nil {
		return metricsOut{}, err
	}
	tc, err := registerCounter("trips_completed_total", metrics.NewTripsCompletedTotal())
	if err != nil {
		return metricsOut{}, err
	}
	return metricsOut{
		RateLimitExceeded: rl,
		TripsDispatched:   td,
		TripsCompleted:    tc,
	}, nil
}

// registerCounter registers c on the default registry. When a collector with
// the same name already exists (container rebuilt in tests) the existing one
// is reused.
func registerCounter(name string, c prometheus.Counter) (prometheus.Counter, error) {
	if err := prometheus.DefaultRegisterer.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(prometheus.Counter); ok {
				return existing, nil
			}
		}
		return nil, fmt.Errorf("register %s: %w", name, err)
	}
	return c, nil
}
