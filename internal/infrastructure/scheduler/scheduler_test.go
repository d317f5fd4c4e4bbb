package scheduler

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/riskibarqy/matchday/internal/platform/logging"
	"github.com/riskibarqy/matchday/internal/usecase"
)

type warmupRunnerFunc func(ctx context.Context) (usecase.WarmupReport, error)

func (f warmupRunnerFunc) Run(ctx context.Context) (usecase.WarmupReport, error) {
	return f(ctx)
}

type recordedWarmups struct {
	mu      sync.Mutex
	results []bool
}

func (r *recordedWarmups) RecordWarmup(success bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.results = append(r.results, success)
}

func (r *recordedWarmups) snapshot() []bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]bool(nil), r.results...)
}

func TestAddCronJob_Validation(t *testing.T) {
	t.Parallel()

	s, err := New(Options{Logger: logging.NewNop()})
	if err != nil {
		t.Fatalf("new scheduler: %v", err)
	}
	defer func() { _ = s.Stop() }()

	noop := func(context.Context) error { return nil }
	if _, err := s.AddCronJob(" ", "*/5 * * * *", 0, false, noop); !errors.Is(err, ErrEmptyJobName) {
		t.Fatalf("expected ErrEmptyJobName, got %v", err)
	}
	if _, err := s.AddCronJob("job", "", 0, false, noop); !errors.Is(err, ErrEmptyCronExpr) {
		t.Fatalf("expected ErrEmptyCronExpr, got %v", err)
	}
	if _, err := s.AddCronJob("job", "not a cron", 0, false, noop); err == nil {
		t.Fatalf("expected invalid cron expression to fail")
	}
}

func TestRegisterWarmup_RunsImmediatelyAndRecords(t *testing.T) {
	t.Parallel()

	s, err := New(Options{Logger: logging.NewNop()})
	if err != nil {
		t.Fatalf("new scheduler: %v", err)
	}
	defer func() { _ = s.Stop() }()

	done := make(chan struct{}, 1)
	runner := warmupRunnerFunc(func(ctx context.Context) (usecase.WarmupReport, error) {
		if _, ok := ctx.Deadline(); !ok {
			t.Errorf("expected warmup context to carry a deadline")
		}
		select {
		case done <- struct{}{}:
		default:
		}
		return usecase.WarmupReport{Fixtures: 1}, nil
	})

	recorder := &recordedWarmups{}
	if err := RegisterWarmup(s, "0 */6 * * *", time.Minute, runner, recorder); err != nil {
		t.Fatalf("register warmup: %v", err)
	}
	s.Start()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatalf("warmup did not run at start")
	}

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if got := recorder.snapshot(); len(got) > 0 {
			if !got[0] {
				t.Fatalf("expected successful warmup to be recorded")
			}
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatalf("warmup result was not recorded")
}
