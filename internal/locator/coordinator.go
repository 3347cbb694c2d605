package locator

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"

	"github.com/steviee/mc-locate/internal/config"
)

// Coordinator orchestrates one player lookup across the configured
// servers: one fetch per server, bounded concurrency, all outcomes
// collected before the report is built. Coordinators are safe for
// concurrent use; the slot pool is the only state shared between
// lookups, each lookup owns its outcome storage.
type Coordinator struct {
	fetcher Fetcher
	slots   *semaphore.Weighted
}

// NewCoordinator creates a Coordinator. maxConcurrency bounds the number
// of simultaneously in-flight fetches across all lookups the coordinator
// runs.
func NewCoordinator(fetcher Fetcher, maxConcurrency int) (*Coordinator, error) {
	if fetcher == nil {
		return nil, ErrNilFetcher
	}
	if maxConcurrency <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidConcurrency, maxConcurrency)
	}
	return &Coordinator{
		fetcher: fetcher,
		slots:   semaphore.NewWeighted(int64(maxConcurrency)),
	}, nil
}

// Locate queries every server for the given player and reports which
// ones list them. Servers are queried concurrently up to the configured
// bound; individual failures become Outcome values and never abort the
// lookup. Locate returns an error only for a structurally invalid
// request or when ctx is cancelled before all fetches complete.
//
// Matches in the returned report follow the input server order, not
// completion order, so output is reproducible regardless of network
// timing. Duplicate addresses are queried independently.
func (c *Coordinator) Locate(ctx context.Context, query Query, servers []config.Server) (*Report, error) {
	if query.Raw == "" {
		return nil, ErrEmptyQuery
	}

	started := time.Now()
	outcomes := make([]Outcome, len(servers))

	err := c.ForEachServer(ctx, servers, func(ctx context.Context, i int, srv config.Server) error {
		outcomes[i] = c.fetcher.Fetch(ctx, query, srv.Address)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("lookup for %q: %w", query.Raw, err)
	}

	report := buildReport(query, servers, outcomes)

	slog.Debug("lookup complete",
		"query", query.Raw,
		"checked", report.CheckedCount,
		"matches", len(report.Matches),
		"unreachable", report.UnreachableCount,
		"hidden", report.HiddenCount,
		"elapsed", time.Since(started))

	return &report, nil
}

// ForEachServer runs fn once per server under the coordinator's
// concurrency limit and waits for every invocation to finish. fn
// receives the server's position in the input slice. A task holds its
// slot only while fn runs; the slot is released even if fn panics out
// through the runtime or ctx is cancelled mid-flight. The first error
// returned by fn, or a cancellation while waiting for a slot, aborts
// the remaining tasks and is returned.
func (c *Coordinator) ForEachServer(ctx context.Context, servers []config.Server, fn func(ctx context.Context, i int, srv config.Server) error) error {
	if len(servers) == 0 {
		return nil
	}

	g, gctx := errgroup.WithContext(ctx)

	for i, srv := range servers {
		i, srv := i, srv
		g.Go(func() error {
			if err := c.slots.Acquire(gctx, 1); err != nil {
				return fmt.Errorf("acquire slot for %s: %w", srv.Name, err)
			}
			defer c.slots.Release(1)

			return fn(gctx, i, srv)
		})
	}

	return g.Wait()
}
