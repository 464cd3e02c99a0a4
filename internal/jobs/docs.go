// Package jobs provides scheduled background tasks for the delivery system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for the delivery service.
//
// # Available Jobs
//
// 1. DeliveryReminderJob - Runs every minute to text customers about pending
// deliveries scheduled within the next 24 hours
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(remindersHandler, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Scheduling
//
// The reminder job uses the cron expression "* * * * *" which means it runs
// every minute. Each run is a full sweep, so a restart never loses reminders.
//
// # Error Handling
//
// - Sweep failures are logged and retried on the next tick
// - Failed job starts will stop any already running jobs
package jobs
