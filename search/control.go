package search

import "sync/atomic"

// Control is the only state shared between concurrently running engine
// instances: one cancellation flag and one monotonically increasing
// progress counter. Both need nothing stronger than atomic read/write —
// every other piece of engine state is exclusively owned by its own
// expansion loop, so no locks are involved.
//
// Writer discipline: any holder may set the stop flag; only engines
// increment the progress counter; external reporters only read it.
type Control struct {
	stop     atomic.Bool
	progress atomic.Int64
}

// NewControl returns a Control ready to be shared across runs.
func NewControl() *Control {
	return &Control{}
}

// Cancel sets the stop flag. Every engine polling this Control aborts at
// its next expansion step. Safe to call from any goroutine, idempotent.
func (c *Control) Cancel() {
	if c == nil {
		return
	}
	c.stop.Store(true)
}

// Cancelled reports whether the stop flag is set. Nil-safe.
func (c *Control) Cancelled() bool {
	return c != nil && c.stop.Load()
}

// Progress returns the shared progress counter: the sum of best-depth
// advances across every engine attached to this Control. Nil-safe.
func (c *Control) Progress() int64 {
	if c == nil {
		return 0
	}

	return c.progress.Load()
}

// advance adds n to the progress counter. Called by engines only.
func (c *Control) advance(n int64) {
	if c == nil {
		return
	}
	c.progress.Add(n)
}
