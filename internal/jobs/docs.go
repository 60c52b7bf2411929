// Package jobs provides scheduled background tasks for the ordering engine.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic maintenance the request path never performs.
//
// # Available Jobs
//
// 1. CartJanitorJob - Runs hourly to purge carts untouched past their TTL
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(purgeStaleCartsHandler, cartTTL, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Error Handling
//
// The janitor logs every failure; there are no expected business errors, so
// any error indicates a storage issue.
package jobs
