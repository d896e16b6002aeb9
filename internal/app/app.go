package app

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"

	"finpulse/internal/domain/ports"
)

const (
	scheduledRunTimeout = 2 * time.Minute
	stopGracePeriod     = 5 * time.Second
)

// Job is one artifact-producing unit of work.
type Job interface {
	Run(ctx context.Context) error
}

// App runs a job once, or once and then on a cron schedule.
type App struct {
	name     string
	cron     *cron.Cron
	job      Job
	logger   ports.Logger
	schedule string
}

// New constructs an App instance. An empty schedule means run once and exit.
func New(name string, job Job, logger ports.Logger, schedule string) *App {
	return &App{
		name:     name,
		cron:     cron.New(),
		job:      job,
		logger:   logger,
		schedule: schedule,
	}
}

// Run executes the job immediately. Without a schedule the job's error is returned to
// the caller; with one, failures are logged and the scheduler keeps going until ctx is done.
func (a *App) Run(ctx context.Context) error {
	if a.schedule == "" {
		return a.runOnce(ctx)
	}

	if err := a.scheduleJob(); err != nil {
		return err
	}

	a.logger.Info(ctx, "running first job immediately", "job", a.name)
	if err := a.runOnce(ctx); err != nil {
		a.logger.Error(ctx, "initial run failed", "job", a.name, "error", err)
	}

	a.logger.Info(ctx, "starting scheduler", "job", a.name, "cron", a.schedule)
	a.cron.Start()

	<-ctx.Done()
	stopCtx := a.cron.Stop()
	select {
	case <-stopCtx.Done():
	case <-time.After(stopGracePeriod):
	}
	a.logger.Info(context.Background(), "scheduler stopped", "job", a.name)
	return nil
}

func (a *App) runOnce(ctx context.Context) error {
	runID := uuid.NewString()
	start := time.Now()
	a.logger.Info(ctx, "run started", "job", a.name, "run_id", runID)

	if err := a.job.Run(ctx); err != nil {
		a.logger.Error(ctx, "run failed", "job", a.name, "run_id", runID, "error", err)
		return err
	}

	a.logger.Info(ctx, "run finished", "job", a.name, "run_id", runID, "duration", time.Since(start))
	return nil
}

func (a *App) scheduleJob() error {
	_, err := a.cron.AddFunc(a.schedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), scheduledRunTimeout)
		defer cancel()
		if err := a.runOnce(ctx); err != nil {
			a.logger.Error(ctx, "scheduled run failed", "job", a.name, "error", err)
		}
	})
	return err
}
