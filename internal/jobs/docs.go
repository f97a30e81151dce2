// Package jobs provides scheduled background tasks for the marketplace.
//
// Jobs run on github.com/robfig/cron/v3 schedules and are coordinated by
// JobManager:
//
//	jobManager := jobs.NewJobManager(completeTransfersHandler, delay, spec, logger)
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Available Jobs
//
// SettlementTransferJob sweeps settled orders whose payout legs are still
// processing and completes them once the settlement delay has elapsed. The
// sweep is idempotent: completed legs drop out of the due set, so a run that
// fails halfway is finished by the next one.
package jobs
