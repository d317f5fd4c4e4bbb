package resilience

import (
	"errors"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
)

func TestCircuitBreaker_BasicTransitions(t *testing.T) {
	clock := clockwork.NewFakeClockAt(time.Date(2026, 2, 11, 12, 0, 0, 0, time.UTC))
	b := NewCircuitBreaker(CircuitBreakerConfig{
		Enabled:          true,
		FailureThreshold: 2,
		OpenTimeout:      5 * time.Second,
		HalfOpenMaxReq:   1,
	}, clock)

	if err := b.Allow(); err != nil {
		t.Fatalf("expected allow in closed state: %v", err)
	}

	b.Record(true)
	if state := b.State(); state != CircuitStateClosed {
		t.Fatalf("expected closed after first failure, got %s", state)
	}

	b.Record(true)
	if state := b.State(); state != CircuitStateOpen {
		t.Fatalf("expected open after threshold failures, got %s", state)
	}

	if err := b.Allow(); !errors.Is(err, ErrCircuitOpen) {
		t.Fatalf("expected circuit open error, got %v", err)
	}

	clock.Advance(6 * time.Second)
	if err := b.Allow(); err != nil {
		t.Fatalf("expected half-open probe to pass, got %v", err)
	}
	if err := b.Allow(); !errors.Is(err, ErrCircuitOpen) {
		t.Fatalf("expected second half-open probe to be rejected, got %v", err)
	}

	b.Record(false)
	if state := b.State(); state != CircuitStateClosed {
		t.Fatalf("expected closed after successful half-open probe, got %s", state)
	}
}

func TestCircuitBreaker_HalfOpenFailureReopens(t *testing.T) {
	clock := clockwork.NewFakeClock()
	b := NewCircuitBreaker(CircuitBreakerConfig{Enabled: true, FailureThreshold: 1, OpenTimeout: time.Second, HalfOpenMaxReq: 1}, clock)

	_ = b.Allow()
	b.Record(true)
	clock.Advance(2 * time.Second)
	if err := b.Allow(); err != nil {
		t.Fatalf("expected probe, got %v", err)
	}
	b.Record(true)

	if state := b.State(); state != CircuitStateOpen {
		t.Fatalf("expected open after failed probe, got %s", state)
	}
}

func TestCircuitBreaker_DisabledAlwaysAllows(t *testing.T) {
	b := NewCircuitBreaker(CircuitBreakerConfig{Enabled: false, FailureThreshold: 1}, nil)
	for i := 0; i < 5; i++ {
		b.Record(true)
	}
	if err := b.Allow(); err != nil {
		t.Fatalf("disabled breaker rejected call: %v", err)
	}
}

func TestCircuitBreakerConfig_ValidateAndNormalize(t *testing.T) {
	if err := DefaultCircuitBreakerConfig().Validate(); err != nil {
		t.Fatalf("defaults should validate: %v", err)
	}
	if err := (CircuitBreakerConfig{Enabled: true, FailureThreshold: 1, OpenTimeout: time.Second}).Validate(); err == nil {
		t.Fatalf("expected error for zero half-open probes")
	}
	if err := (CircuitBreakerConfig{}).Validate(); err != nil {
		t.Fatalf("disabled breaker should validate: %v", err)
	}

	got := NormalizeCircuitBreakerConfig(CircuitBreakerConfig{Enabled: true, HalfOpenMaxReq: 4})
	if got.FailureThreshold != DefaultFailureThreshold || got.OpenTimeout != DefaultOpenTimeout || got.HalfOpenMaxReq != 4 {
		t.Fatalf("unexpected normalized config: %+v", got)
	}
}
