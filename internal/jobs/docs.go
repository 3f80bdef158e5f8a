// Package jobs provides scheduled background tasks for the order service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
//
// # Available Jobs
//
// 1. FlushJob - retries persisting the order collection while the store is dirty
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(store, cfg.FlushRetrySchedule, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		logger.Fatal("failed to start jobs", zap.Error(err))
//	}
//
//	defer jobManager.StopAll(ctx)
//
// # Scheduling
//
// Schedules use the six field cron format with a leading seconds field.
// The default "*/5 * * * * *" fires every five seconds.
//
// # Error Handling
//
// A failed flush is logged and retried on the next tick. The in-memory
// collection stays authoritative until a flush succeeds.
package jobs
