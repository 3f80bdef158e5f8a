package jobs

import (
	"context"
	"fmt"

	"go.uber.org/zap"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	flushJob *FlushJob
	store    Flusher
	logger   *zap.Logger
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(store Flusher, flushSchedule string, logger *zap.Logger) *JobManager {
	return &JobManager{
		flushJob: NewFlushJob(store, flushSchedule, logger),
		store:    store,
		logger:   logger.With(zap.String("component", "job_manager")),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.flushJob.Start(); err != nil {
		return fmt.Errorf("failed to start flush job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs and makes a last flush attempt so a
// pending write is not lost on shutdown.
func (jm *JobManager) StopAll(ctx context.Context) {
	jm.flushJob.Stop()

	if !jm.store.Dirty() {
		return
	}
	if err := jm.store.Flush(ctx); err != nil {
		jm.logger.Error("final flush failed, unsaved orders are lost", zap.Error(err))
	}
}
