// Package workers provides abstractions for managing and running
// background workers in the application.
// It defines the Worker interface and a Workers aggregate that allows
// starting and stopping multiple workers in a unified way.
package workers

import "context"

// Worker is the interface that must be implemented by any background worker.
// Start launches the worker's execution and Stop halts it.
//
// Implementations are expected to return from Start quickly and spawn
// goroutines internally; Stop blocks until those goroutines have exited.
//
// Example implementation:
//
//	type MyWorker struct{}
//
//	func (w *MyWorker) Start(ctx context.Context) {
//	    // launch background processing
//	}
//
//	func (w *MyWorker) Stop() {
//	    // halt background processing
//	}
type Worker interface {
	Start(ctx context.Context)
	Stop()
}
