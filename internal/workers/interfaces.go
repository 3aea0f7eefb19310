// Package workers runs the background jobs of the server on cron schedules.
// It defines the Worker interface and a Workers aggregate that schedules
// every worker with robfig/cron and stops them together.
package workers

import "context"

// Worker is the interface that must be implemented by any background worker.
//
// Run performs one pass of the job and returns. The scheduler never starts a
// pass while the previous one of the same worker is still running.
//
// Example implementation:
//
//	type MyWorker struct{}
//
//	func (w *MyWorker) Name() string     { return "my-worker" }
//	func (w *MyWorker) Schedule() string { return "@every 1m" }
//	func (w *MyWorker) Run(ctx context.Context) {
//	    // one pass of background processing
//	}
type Worker interface {
	Name() string
	// Schedule returns a cron spec, including descriptors like "@every 1s".
	Schedule() string
	Run(ctx context.Context)
}
