package ratelimit

// NopLimiter allows everything. Used when rate limiting is disabled.
type NopLimiter struct{}

// Allow always returns true.
func (NopLimiter) Allow(string) bool { return true }

// NewNopLimiter returns a NopLimiter.
func NewNopLimiter() Limiter { return NopLimiter{} }
