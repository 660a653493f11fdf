// Package jobs provides scheduled background tasks for the restaurant service.
//
// Jobs are cron-based, using github.com/robfig/cron/v3 with the seconds
// field enabled.
//
// # Available Jobs
//
// OrderBacklogJob counts orders per status on BACKLOG_SCHEDULE (default
// "@every 1m") and exports the counts as the restaurant_orders{status}
// gauge, plus one log line per run.
//
// # Usage
//
//	jobManager, err := jobs.NewJobManager(countHandler, cfg.BacklogSchedule, registry, logger)
//	if err != nil {
//		return err
//	}
//
//	if err := jobManager.StartAll(); err != nil {
//		return err
//	}
//	defer jobManager.StopAll()
//
// # Error Handling
//
// A failed run is logged and leaves the gauge at its previous values; the
// next scheduled run tries again. An invalid schedule fails StartAll.
package jobs
