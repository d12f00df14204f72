package ratelimit

// RateLimitConfig holds the per-window limits for one rule. A zero limit
// disables that window.
type RateLimitConfig struct {
	RequestsPerMinute int
	RequestsPerHour   int
	RequestsPerDay    int
}

// RateLimiter decides whether a keyed request may proceed.
type RateLimiter interface {
	Allow(key string, config RateLimitConfig) (bool, error)
}
