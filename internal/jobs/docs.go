// Package jobs provides scheduled background tasks for the restaurant service.
//
// Jobs are cron-based (github.com/robfig/cron/v3) and log through zap.
//
// # Available Jobs
//
// 1. DigitalMenuSyncJob - polls the digital-menu feed on a fixed interval,
// imports new customer orders as kitchen orders and mirrors later status
// changes onto the imported order's items.
//
// # Usage
//
//	jobManager := jobs.NewJobManager(syncJob)
//
//	if err := jobManager.StartAll(ctx); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Scheduling
//
// The sync job is scheduled with "@every <interval>" and wrapped in
// cron.SkipIfStillRunning, so a tick that fires while the previous cycle is
// still running is skipped rather than queued.
//
// # Error Handling
//
// - A failing cycle is logged and retried on the next tick
// - Failing to rebuild the sync cache at start-up is logged; imports stay
// idempotent through the order's external reference
package jobs
