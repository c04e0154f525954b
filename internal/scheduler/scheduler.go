package scheduler

import (
	"context"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"
)

const (
	Timezone              = "UTC"
	TimezoneOffsetSeconds = 0

	defaultRunTimeout = 15 * time.Minute
)

// Scheduler triggers pipeline runs on a cron spec. A failed run is logged
// and the schedule keeps going.
type Scheduler struct {
	ctx        context.Context
	cron       *cron.Cron
	spec       string
	runTimeout time.Duration
	job        func(ctx context.Context) error
	log        *slog.Logger
}

func New(
	ctx context.Context,
	spec string,
	job func(ctx context.Context) error,
	log *slog.Logger,
) *Scheduler {
	c := cron.New(cron.WithLocation(time.FixedZone(Timezone, TimezoneOffsetSeconds)))

	return &Scheduler{
		ctx:        ctx,
		cron:       c,
		spec:       spec,
		runTimeout: defaultRunTimeout,
		job:        job,
		log:        log,
	}
}

func (s *Scheduler) Start() error {
	if _, err := s.cron.AddFunc(s.spec, s.runOnce); err != nil {
		return err
	}

	s.cron.Start()

	return nil
}

func (s *Scheduler) Stop() {
	s.cron.Stop()
}

func (s *Scheduler) runOnce() {
	ctx, cancel := context.WithTimeout(s.ctx, s.runTimeout)
	defer cancel()

	select {
	case <-ctx.Done():
		s.log.InfoContext(ctx, "Scheduler context is done",
			"error", ctx.Err())

		return
	default:
	}

	start := time.Now()
	if err := s.job(ctx); err != nil {
		s.log.ErrorContext(ctx, "Scheduled run failed",
			"error", err,
			"spec", s.spec,
			"elapsedSeconds", time.Since(start).Seconds())

		return
	}

	s.log.InfoContext(ctx, "Scheduled run finished",
		"spec", s.spec,
		"elapsedSeconds", time.Since(start).Seconds())
}
