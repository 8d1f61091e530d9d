// Package jobs provides scheduled background tasks for the order import service.
//
// Jobs are cron-based (github.com/robfig/cron/v3, six-field specs with seconds).
//
// # Available Jobs
//
//  1. DirectoryRefreshJob - reloads the cached customer directory from the database
//
// # Usage
//
//	jobManager := jobs.NewJobManager(refreshHandler, cfg.DirectoryRefreshSpec, logger)
//	if err := jobManager.StartAll(ctx); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Error Handling
//
// A failing scheduled refresh is logged and the previous snapshot stays in use.
package jobs
