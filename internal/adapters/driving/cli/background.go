package cli

import (
	"context"
	"sync"

	"github.com/custodia-labs/docsuggest/internal/core/ports/driving"
	"github.com/custodia-labs/docsuggest/internal/logger"
)

// startBackground runs every scheduler in its own goroutine and returns a
// function that stops them and waits for them to exit.
func startBackground(ctx context.Context, loops []driving.Scheduler) func() {
	ctx, cancel := context.WithCancel(ctx)
	var wg sync.WaitGroup

	for _, loop := range loops {
		if loop == nil {
			continue
		}
		wg.Add(1)
		go func(loop driving.Scheduler) {
			defer wg.Done()
			if err := loop.Start(ctx); err != nil {
				// Background loops must not take the command down.
				logger.Warn("background loop stopped: %v", err)
			}
		}(loop)
	}

	return func() {
		for _, loop := range loops {
			if loop == nil {
				continue
			}
			if err := loop.Stop(); err != nil {
				logger.Warn("stopping background loop: %v", err)
			}
		}
		cancel()
		wg.Wait()
	}
}
