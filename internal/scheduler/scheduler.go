// Package scheduler runs the sync on a cron schedule.
package scheduler

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/phrazzld/lcsync/internal/config"
	"github.com/phrazzld/lcsync/internal/redact"
	"github.com/phrazzld/lcsync/internal/service"
)

// Scheduler manages the recurring sync job.
type Scheduler struct {
	scheduler *gocron.Scheduler
	job       *gocron.Job
	syncer    service.SyncService
	logger    *slog.Logger

	// ctx is set by Start and passed to every run.
	ctx context.Context
}

// New creates a scheduler that runs syncer on cfg.Schedule, evaluated in
// cfg.Timezone. Runs never overlap: a tick that fires while a run is still
// active is skipped.
func New(syncer service.SyncService, cfg config.SyncConfig, logger *slog.Logger) (*Scheduler, error) {
	if syncer == nil {
		return nil, errors.New("sync service cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", cfg.Timezone, err)
	}

	s := &Scheduler{
		scheduler: gocron.NewScheduler(loc),
		syncer:    syncer,
		logger:    logger.With(slog.String("component", "scheduler")),
		ctx:       context.Background(),
	}
	s.scheduler.SingletonModeAll()

	job, err := s.scheduler.Cron(cfg.Schedule).Do(s.runOnce)
	if err != nil {
		return nil, fmt.Errorf("invalid schedule %q: %w", cfg.Schedule, err)
	}
	s.job = job

	return s, nil
}

// Start begins running the job in the background. Runs receive ctx, so
// cancelling it interrupts an active run.
func (s *Scheduler) Start(ctx context.Context) {
	s.ctx = ctx
	s.scheduler.StartAsync()
	s.logger.Info("scheduler started", slog.Time("next_run", s.job.NextRun()))
}

// RunNow triggers the job immediately, outside the schedule.
func (s *Scheduler) RunNow() {
	s.scheduler.RunAll()
}

// NextRun returns when the job fires next.
func (s *Scheduler) NextRun() time.Time {
	return s.job.NextRun()
}

// Stop terminates the scheduler, waiting for an active run to finish.
func (s *Scheduler) Stop() {
	s.scheduler.Stop()
	s.logger.Info("scheduler stopped")
}

func (s *Scheduler) runOnce() {
	result, err := s.syncer.Run(s.ctx)
	switch {
	case errors.Is(err, service.ErrSyncInProgress):
		s.logger.Warn("skipping scheduled sync, previous run still active")
	case err != nil:
		s.logger.Error("scheduled sync failed", slog.String("error", redact.Error(err)))
	default:
		s.logger.Info("scheduled sync finished",
			slog.String("run_id", result.RunID.String()),
			slog.Int("created", len(result.Created)),
			slog.Int("updated", len(result.Updated)))
	}
}
