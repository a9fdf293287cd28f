// Package workers provides abstractions for managing and running
// background workers in the agent.
// It defines the Worker interface and a Workers aggregate that allows
// starting and stopping multiple workers in a unified way.
package workers

import "context"

// Worker is the interface that must be implemented by any background worker.
//
// Run starts the worker and must not block: implementations spawn their own
// goroutines bound to ctx. Stop signals the worker to exit and blocks until
// it has fully terminated.
type Worker interface {
	Run(ctx context.Context) error
	Stop()
}
