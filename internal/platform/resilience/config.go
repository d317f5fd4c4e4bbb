package resilience

import (
	"fmt"
	"time"
)

const (
	DefaultFailureThreshold = 5
	DefaultOpenTimeout      = 15 * time.Second
	DefaultHalfOpenMaxReq   = 2
)

// CircuitBreakerConfig tunes a CircuitBreaker. Zero fields fall back to the
// package defaults.
type CircuitBreakerConfig struct {
	Enabled          bool
	FailureThreshold int
	OpenTimeout      time.Duration
	HalfOpenMaxReq   int
}

func DefaultCircuitBreakerConfig() CircuitBreakerConfig {
	return CircuitBreakerConfig{
		Enabled:          true,
		FailureThreshold: DefaultFailureThreshold,
		OpenTimeout:      DefaultOpenTimeout,
		HalfOpenMaxReq:   DefaultHalfOpenMaxReq,
	}
}

// Validate rejects explicitly configured values the breaker cannot run with.
// A disabled breaker is always valid.
func (c CircuitBreakerConfig) Validate() error {
	if !c.Enabled {
		return nil
	}
	if c.FailureThreshold < 1 {
		return fmt.Errorf("circuit failure threshold must be >= 1, got %d", c.FailureThreshold)
	}
	if c.OpenTimeout <= 0 {
		return fmt.Errorf("circuit open timeout must be > 0, got %s", c.OpenTimeout)
	}
	if c.HalfOpenMaxReq < 1 {
		return fmt.Errorf("circuit half-open probes must be >= 1, got %d", c.HalfOpenMaxReq)
	}
	return nil
}

func NormalizeCircuitBreakerConfig(cfg CircuitBreakerConfig) CircuitBreakerConfig {
	if cfg.FailureThreshold < 1 {
		cfg.FailureThreshold = DefaultFailureThreshold
	}
	if cfg.OpenTimeout <= 0 {
		cfg.OpenTimeout = DefaultOpenTimeout
	}
	if cfg.HalfOpenMaxReq < 1 {
		cfg.HalfOpenMaxReq = DefaultHalfOpenMaxReq
	}
	return cfg
}
