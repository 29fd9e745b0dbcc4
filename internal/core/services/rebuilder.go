package services

import (
	"context"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/custodia-labs/docsuggest/internal/core/domain"
	"github.com/custodia-labs/docsuggest/internal/core/ports/driven"
	"github.com/custodia-labs/docsuggest/internal/core/ports/driving"
	"github.com/custodia-labs/docsuggest/internal/logger"
)

// Ensure Rebuilder implements the interface.
var _ driven.RebuildTrigger = (*Rebuilder)(nil)

// Rebuilder runs index rebuilds in the background.
// Triggers that arrive while one is already pending collapse into it, and
// rebuilds are spaced out by a rate limiter.
type Rebuilder struct {
	suggest  driving.SuggestService
	interval time.Duration
	limiter  *rate.Limiter
	pending  chan domain.RebuildReason

	mu      sync.Mutex
	running bool
	stopCh  chan struct{}
	wg      sync.WaitGroup
}

// NewRebuilder creates a rebuilder. perSecond <= 0 disables rate limiting;
// interval <= 0 disables periodic rebuilds.
func NewRebuilder(suggest driving.SuggestService, perSecond float64, interval time.Duration) *Rebuilder {
	limit := rate.Inf
	if perSecond > 0 {
		limit = rate.Limit(perSecond)
	}
	return &Rebuilder{
		suggest:  suggest,
		interval: interval,
		limiter:  rate.NewLimiter(limit, 1),
		pending:  make(chan domain.RebuildReason, 1),
	}
}

// Trigger queues a rebuild and returns immediately.
// If a rebuild is already queued the reason is dropped.
func (r *Rebuilder) Trigger(reason domain.RebuildReason) {
	select {
	case r.pending <- reason:
	default:
		logger.Debug("rebuilder: %s coalesced into pending rebuild", reason)
	}
}

// Start runs the rebuild loop. This method blocks until Stop is called or
// ctx is cancelled.
func (r *Rebuilder) Start(ctx context.Context) error {
	r.mu.Lock()
	if r.running {
		r.mu.Unlock()
		return nil
	}
	r.running = true
	r.stopCh = make(chan struct{})
	stopCh := r.stopCh
	r.wg.Add(1)
	r.mu.Unlock()

	defer r.wg.Done()
	return r.run(ctx, stopCh)
}

// Stop shuts down the loop and waits for an in-flight rebuild to finish.
func (r *Rebuilder) Stop() error {
	r.mu.Lock()
	if !r.running {
		r.mu.Unlock()
		return nil
	}
	r.running = false
	close(r.stopCh)
	r.mu.Unlock()

	r.wg.Wait()
	return nil
}

func (r *Rebuilder) run(ctx context.Context, stopCh <-chan struct{}) error {
	var tick <-chan time.Time
	if r.interval > 0 {
		ticker := time.NewTicker(r.interval)
		defer ticker.Stop()
		tick = ticker.C
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-stopCh:
			return nil
		case <-tick:
			r.rebuild(ctx, domain.RebuildInterval)
		case reason := <-r.pending:
			if err := r.limiter.Wait(ctx); err != nil {
				return ctx.Err()
			}
			r.rebuild(ctx, reason)
		}
	}
}

func (r *Rebuilder) rebuild(ctx context.Context, reason domain.RebuildReason) {
	stats, err := r.suggest.Rebuild(ctx, reason)
	if err != nil {
		logger.Error("rebuilder: %s rebuild failed: %v", reason, err)
		return
	}
	logger.Debug("rebuilder: %s rebuild published generation %d", reason, stats.Generation)
}
