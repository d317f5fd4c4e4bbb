package scheduler

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"

	"github.com/riskibarqy/matchday/internal/platform/logging"
)

var (
	ErrEmptyJobName  = errors.New("job name is required")
	ErrEmptyCronExpr = errors.New("cron expression is required")
)

// Task is a unit of scheduled work. The context is cancelled when the
// scheduler stops or the job's timeout elapses.
type Task func(ctx context.Context) error

type Options struct {
	Clock    clockwork.Clock
	Location *time.Location
	Logger   *logging.Logger
}

// Scheduler runs cron jobs on top of gocron.
type Scheduler struct {
	scheduler gocron.Scheduler
	logger    *logging.Logger

	ctx    context.Context
	cancel context.CancelFunc

	stopOnce sync.Once
	stopErr  error
}

func New(opts Options) (*Scheduler, error) {
	logger := opts.Logger
	if logger == nil {
		logger = logging.Default()
	}
	schedOpts := []gocron.SchedulerOption{
		gocron.WithGlobalJobOptions(
			gocron.WithEventListeners(
				gocron.AfterJobRunsWithPanic(func(jobID uuid.UUID, jobName string, recoverData any) {
					logger.Error("scheduler job panicked",
						"job_id", jobID.String(),
						"job_name", jobName,
						"panic", recoverData,
					)
				}),
			),
		),
	}
	if opts.Clock != nil {
		schedOpts = append(schedOpts, gocron.WithClock(opts.Clock))
	}
	if opts.Location != nil {
		schedOpts = append(schedOpts, gocron.WithLocation(opts.Location))
	}

	sched, err := gocron.NewScheduler(schedOpts...)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithCancel(context.Background())
	return &Scheduler{scheduler: sched, logger: logger, ctx: ctx, cancel: cancel}, nil
}

// AddCronJob registers task under name. Overlapping runs are skipped rather
// than queued. With runNow the first run starts as soon as the scheduler does.
func (s *Scheduler) AddCronJob(name, cronExpr string, timeout time.Duration, runNow bool, task Task) (uuid.UUID, error) {
	if strings.TrimSpace(name) == "" {
		return uuid.Nil, ErrEmptyJobName
	}
	if strings.TrimSpace(cronExpr) == "" {
		return uuid.Nil, ErrEmptyCronExpr
	}

	jobLogger := s.logger.With("job_name", name, "cron", cronExpr)
	run := func() {
		ctx := s.ctx
		if timeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, timeout)
			defer cancel()
		}

		startedAt := time.Now()
		if err := task(ctx); err != nil {
			jobLogger.WarnContext(ctx, "scheduler job failed", "error", err, "duration", time.Since(startedAt))
			return
		}
		jobLogger.DebugContext(ctx, "scheduler job completed", "duration", time.Since(startedAt))
	}

	jobOpts := []gocron.JobOption{
		gocron.WithName(name),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	}
	if runNow {
		jobOpts = append(jobOpts, gocron.WithStartAt(gocron.WithStartImmediately()))
	}

	job, err := s.scheduler.NewJob(gocron.CronJob(cronExpr, false), gocron.NewTask(run), jobOpts...)
	if err != nil {
		jobLogger.Error("register scheduler job failed", "error", err)
		return uuid.Nil, err
	}
	jobLogger.Info("scheduler job registered", "job_id", job.ID().String())
	return job.ID(), nil
}

func (s *Scheduler) Start() {
	s.logger.Info("scheduler starting", "jobs", len(s.scheduler.Jobs()))
	s.scheduler.Start()
}

// Stop cancels running tasks and waits for them to return.
func (s *Scheduler) Stop() error {
	s.stopOnce.Do(func() {
		s.logger.Info("scheduler stopping")
		s.cancel()
		s.stopErr = s.scheduler.Shutdown()
	})
	return s.stopErr
}
