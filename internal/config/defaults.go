package config

import "time"

const defaultPort = 4000

// The SPA dev server origin the legacy backend allowed.
const defaultCORSOrigin = "http://localhost:5173"

var defaultDB = DB{
	Host: "127.0.0.1",
	Port: "5432",
	User: "fleetflow",
	Pass: "fleetflow",
	Name: "fleetflow",
}

var defaultRateLimit = RateLimit{
	Enabled:    false,
	Rate:       50,
	Burst:      100,
	TTL:        10 * time.Minute,
	MaxBuckets: 10_000,
}

// DefaultPort returns the default port.
func DefaultPort() int {
	return defaultPort
}

// DefaultCORSOrigin returns the default allowed CORS origin.
func DefaultCORSOrigin() string {
	return defaultCORSOrigin
}

// DefaultDB returns the default database settings.
func DefaultDB() DB {
	return defaultDB
}

// DefaultRateLimit returns the default rate limiter settings.
func DefaultRateLimit() RateLimit {
	return defaultRateLimit
}
