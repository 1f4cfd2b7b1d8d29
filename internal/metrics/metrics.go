package metrics

import "github.com/prometheus/client_golang/prometheus"

// NewRateLimitExceededTotal returns a Prometheus counter for the number of rejected HTTP requests due to rate limiting
func NewRateLimitExceededTotal() prometheus.Counter {
	return prometheus.NewCounter(prometheus.CounterOpts{
		Name: "rate_limit_exceeded_total",
		Help: "Total number of rejected HTTP requests due to rate limiting",
	})
}

// NewTripsDispatchedTotal returns a Prometheus counter for the number of dispatched trips
func NewTripsDispatchedTotal() prometheus.Counter {
	return prometheus.NewCounter(prometheus.CounterOpts{
		Name: "trips_dispatched_total",
		Help: "Total number of dispatched trips",
	})
}

// NewTripsCompletedTotal returns a Prometheus counter for the number of completed trips
func NewTripsCompletedTotal() prometheus.Counter {
	return prometheus.NewCounter(prometheus.CounterOpts{
		Name: "trips_completed_total",
		Help: "Total number of completed trips",
	})
}
