// Package batch runs several search instances side by side: one per
// requested output, sharing exactly one cancellation flag and one progress
// counter, with a reporter goroutine feeding an optional progress sink on a
// fixed interval.
package batch

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/tilewave/wavegrid/catalog"
	"github.com/tilewave/wavegrid/search"
)

// Generate runs one search per broadcast row of p and returns the results
// in run order.
//
// All runs share a single Control: cancelling the context (or the supplied
// Control) aborts every instance at its next expansion step, and each
// instance's best-depth advances accumulate into one progress counter that
// the reporter goroutine forwards to the sink every interval.
//
// On cancellation the already collected results are returned together with
// the context error; any result still carries the best-effort grid of its
// run (possibly all undecided).
// Complexity: the sum of the individual searches, MaxParallel at a time.
func Generate(ctx context.Context, cat *catalog.Catalog, p Params, opts ...Option) ([]*search.Result, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	if cat == nil {
		return nil, ErrNilCatalog
	}
	if len(p.Starts) == 0 {
		return nil, ErrNoRuns
	}
	runs := p.runs()
	total := int64(0)
	for i := 0; i < runs; i++ {
		start, _ := broadcast(p.Starts, i)
		if start == nil {
			return nil, ErrNilStart
		}
		total += int64(start.Undecided())
	}

	ctrl := cfg.Control
	if ctrl == nil {
		ctrl = search.NewControl()
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.MaxParallel)

	// Reporter: polls the shared counter on a fixed interval and relays
	// context cancellation into the shared stop flag.
	reporterDone := make(chan struct{})
	go func() {
		defer close(reporterDone)
		ticker := time.NewTicker(cfg.Interval)
		defer ticker.Stop()
		for {
			select {
			case <-gctx.Done():
				// The group context also closes when Wait returns after a
				// clean finish; raise the shared stop flag only for real
				// cancellation, or a caller-owned Control would come back
				// permanently cancelled from every successful batch.
				if ctx.Err() != nil {
					ctrl.Cancel()
				}

				return
			case <-ticker.C:
				if cfg.Progress != nil {
					cfg.Progress(ctrl.Progress(), total)
				}
			}
		}
	}()

	results := make([]*search.Result, runs)
	for i := 0; i < runs; i++ {
		i := i
		g.Go(func() error {
			r, err := search.Search(cat, mustBroadcast(p.Starts, i), runOptions(&p, i, ctrl)...)
			if err != nil {
				return err
			}
			results[i] = r

			return nil
		})
	}

	err := g.Wait()
	<-reporterDone
	if cfg.Progress != nil {
		// One final report so sinks always observe the terminal count.
		cfg.Progress(ctrl.Progress(), total)
	}
	if err != nil {
		return nil, err
	}
	if ctxErr := ctx.Err(); ctxErr != nil {
		batchLog.Debug().Int("runs", runs).Msg("batch cancelled")

		return results, ctxErr
	}

	return results, nil
}

// runOptions assembles the search options for run i from the broadcast
// parameter lists plus the shared control.
func runOptions(p *Params, i int, ctrl *search.Control) []search.Option {
	opts := []search.Option{search.WithControl(ctrl)}
	if v, ok := broadcast(p.Seeds, i); ok {
		opts = append(opts, search.WithSeed(v))
	}
	if v, ok := broadcast(p.Connectivity, i); ok {
		opts = append(opts, search.WithConnectivity(v))
	}
	if v, ok := broadcast(p.FreqAdjust, i); ok {
		opts = append(opts, search.WithFrequencyAdjust(v))
	}
	if v, ok := broadcast(p.PlateauInterval, i); ok {
		opts = append(opts, search.WithPlateauInterval(v))
	}
	if v, ok := broadcast(p.Temperatures, i); ok {
		opts = append(opts, search.WithTemperature(v))
	}
	if v, ok := broadcast(p.Weights, i); ok {
		opts = append(opts, search.WithWeights(v))
	}

	return opts
}

// mustBroadcast is broadcast for lists already validated as non-empty.
func mustBroadcast[T any](list []T, i int) T {
	v, _ := broadcast(list, i)

	return v
}
