// Package jobs runs the background work of the service on top of
// github.com/robfig/cron/v3.
//
// # Available Jobs
//
//  1. StatusScheduler - one-shot cron entries that move each order to in-flight
//     and then to delivered at fixed offsets from its creation
//  2. FleetReportJob - periodic log line with drone and order counts
//
// # Usage
//
//	scheduler := jobs.NewStatusScheduler(advanceHandler, logger)
//	report := jobs.NewFleetReportJob(dronesHandler, ordersHandler, "@every 1m", logger)
//
//	jobManager := jobs.NewJobManager(scheduler, report)
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Error Handling
//
//   - A transition for an order that no longer exists is logged as a warning
//   - Any other transition failure is logged as an error
//   - Panics inside jobs are recovered by the cron chain and logged
//   - Failed job starts stop any already running jobs
package jobs
