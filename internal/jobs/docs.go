// Package jobs provides scheduled background tasks for FastFeet.
//
// Jobs are cron-based (github.com/robfig/cron/v3) and log through log/slog.
//
// # Available Jobs
//
// 1. DeliveryBacklogJob - logs the pending (not finished, not canceled)
// delivery count of every deliveryman, plus the overall total
//
// # Usage
//
//	jobManager := jobs.NewJobManager(backlogHandler, "@every 1m", logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Scheduling
//
// Schedules use the standard five-field cron syntax or descriptors such as
// "@every 30s" and "@hourly". An invalid schedule makes StartAll fail.
//
// # Error Handling
//
// Query failures inside a run are logged and the next run proceeds normally.
package jobs
