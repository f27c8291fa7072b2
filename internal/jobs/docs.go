// Package jobs runs the marketplace's periodic maintenance on robfig/cron.
//
// The only job today is CategorySyncJob. Order status changes never touch a
// category's open-job counter, so the counter drifts until the job rewrites
// it from a live count of open orders.
//
// Wiring:
//
//	jm := jobs.NewJobManager(syncHandler, cfg.SyncSchedule(), logger)
//	if err := jm.StartAll(); err != nil {
//		return err
//	}
//	defer jm.StopAll()
//
// Schedules take six fields, seconds first ("0 */15 * * * *" is every quarter
// hour). A failed run is logged and counted in workify_category_sync_total and
// is simply retried at the next tick.
package jobs
