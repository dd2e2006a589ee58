// Package jobs runs scheduled background work with github.com/robfig/cron/v3.
//
// # Available Jobs
//
// DraftSweepJob deletes draft orders whose updated_at is older than the draft TTL.
// Their items and status history go with them through the store's cascading
// foreign keys. Placed orders are never touched.
//
// # Usage
//
//	jobManager := jobs.NewJobManager(deleteStaleDraftsHandler, jobs.DefaultSweepSchedule, 6*time.Hour, logger)
//	if err := jobManager.StartAll(); err != nil {
//		return err
//	}
//	defer jobManager.StopAll()
//
// # Scheduling
//
// Schedules are cron expressions with a leading seconds field, so the default
// "0 */15 * * * *" fires at second zero of every fifteenth minute.
package jobs
