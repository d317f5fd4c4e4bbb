package scheduler

import (
	"context"
	"time"

	"github.com/riskibarqy/matchday/internal/usecase"
)

const WarmupJobName = "cache-warmup"

type WarmupRunner interface {
	Run(ctx context.Context) (usecase.WarmupReport, error)
}

type WarmupRecorder interface {
	RecordWarmup(success bool)
}

// RegisterWarmup schedules the cache warm-up and runs it once at start.
func RegisterWarmup(s *Scheduler, cronExpr string, timeout time.Duration, runner WarmupRunner, recorder WarmupRecorder) error {
	_, err := s.AddCronJob(WarmupJobName, cronExpr, timeout, true, func(ctx context.Context) error {
		_, err := runner.Run(ctx)
		if recorder != nil {
			recorder.RecordWarmup(err == nil)
		}
		return err
	})
	return err
}
