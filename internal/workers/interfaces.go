// Package workers runs background jobs next to the HTTP server. Each worker
// blocks in Run until its context is cancelled.
package workers

import "context"

// Worker is a background job.
//
// Example implementation:
//
//	type MyWorker struct{}
//
//	func (w *MyWorker) Run(ctx context.Context) {
//	    <-ctx.Done()
//	}
type Worker interface {
	Run(ctx context.Context)
}

// Sweeper drops expired state and reports how many entries were removed.
type Sweeper interface {
	Sweep(ctx context.Context) int
}
