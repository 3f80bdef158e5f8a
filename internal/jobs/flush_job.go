package jobs

import (
	"context"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// DefaultFlushSchedule runs the flush every five seconds.
const DefaultFlushSchedule = "*/5 * * * * *"

// Flusher is the part of the order store the flush job drives.
type Flusher interface {
	Dirty() bool
	Flush(ctx context.Context) error
}

// FlushJob retries writing the order collection after a failed persist.
// A clean store is left alone.
type FlushJob struct {
	store    Flusher
	schedule string
	cron     *cron.Cron
	logger   *zap.Logger
}

// NewFlushJob creates the job. An empty schedule means DefaultFlushSchedule.
// The schedule uses the six field cron format with seconds.
func NewFlushJob(store Flusher, schedule string, logger *zap.Logger) *FlushJob {
	if schedule == "" {
		schedule = DefaultFlushSchedule
	}

	return &FlushJob{
		store:    store,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With(zap.String("component", "flush_job")),
	}
}

// Start registers the job on its schedule and starts the scheduler.
func (j *FlushJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, func() { j.Run(context.Background()) }); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.Info("flush job started", zap.String("schedule", j.schedule))
	return nil
}

// Run performs one flush attempt.
func (j *FlushJob) Run(ctx context.Context) {
	if !j.store.Dirty() {
		return
	}

	if err := j.store.Flush(ctx); err != nil {
		j.logger.Error("flush job failed", zap.Error(err))
		return
	}
	j.logger.Info("orders persisted after earlier failure")
}

// Stop stops the scheduler and waits for a running flush to finish.
func (j *FlushJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.Info("flush job stopped")
}
