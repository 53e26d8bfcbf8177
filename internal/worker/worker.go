package worker

import (
	"context"
)

// Worker - long-running stream consumer managed by WorkerManager
type Worker interface {
	// Start blocks until ctx is cancelled or Stop is called
	Start(ctx context.Context) error

	// Stop signals Start to return; safe to call more than once
	Stop() error

	Name() string
}
