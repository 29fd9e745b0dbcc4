package driving

import "context"

// Scheduler is a long-lived background loop, such as the index rebuilder
// or the seed file watcher.
type Scheduler interface {
	// Start runs the loop.
	// Blocks until context is cancelled, Stop is called or an error occurs.
	Start(ctx context.Context) error

	// Stop gracefully stops the loop.
	Stop() error
}
