// Package batch defines configuration types and sentinel errors for running
// several generation instances side by side.
package batch

import (
	"errors"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/tilewave/wavegrid/grid"
	"github.com/tilewave/wavegrid/search"
)

// Sentinel errors for batch operations.
var (
	// ErrNilCatalog indicates a nil catalog was passed to Generate.
	ErrNilCatalog = errors.New("batch: catalog is nil")
	// ErrNoRuns indicates Params without a single starting grid.
	ErrNoRuns = errors.New("batch: at least one starting grid is required")
	// ErrNilStart indicates a nil grid inside Params.Starts.
	ErrNilStart = errors.New("batch: starting grid is nil")
	// ErrBadParallel indicates a parallelism limit below 1.
	ErrBadParallel = errors.New("batch: max parallel runs must be positive")
	// ErrBadInterval indicates a non-positive progress interval.
	ErrBadInterval = errors.New("batch: progress interval must be positive")
)

// batchLog is the sub-logger for the batch package, with module=batch field.
var batchLog zerolog.Logger = log.With().Str("module", "batch").Logger()

// Params lists per-run inputs. Starts is required; every other slice is
// optional and broadcast against the longest list: shorter lists repeat
// their last element, absent lists fall back to the search defaults.
// The number of runs is the length of the longest list.
type Params struct {
	Starts          []*grid.Grid
	Seeds           []int64
	Connectivity    []grid.Connectivity
	FreqAdjust      []float64
	PlateauInterval []int
	Temperatures    []search.Temperature
	Weights         []search.Weights
}

// runs returns the broadcast width: the length of the longest list.
func (p *Params) runs() int {
	n := len(p.Starts)
	for _, l := range []int{
		len(p.Seeds), len(p.Connectivity), len(p.FreqAdjust),
		len(p.PlateauInterval), len(p.Temperatures), len(p.Weights),
	} {
		if l > n {
			n = l
		}
	}

	return n
}

// broadcast returns list[i], repeating the last element past the end.
func broadcast[T any](list []T, i int) (T, bool) {
	if len(list) == 0 {
		var zero T

		return zero, false
	}
	if i >= len(list) {
		i = len(list) - 1
	}

	return list[i], true
}

// ProgressFunc receives the shared progress counter and the total number of
// cells to fill across the whole batch. Called from the reporter goroutine,
// never concurrently with itself.
type ProgressFunc func(done, total int64)

// Options configures a batch.
//
// MaxParallel – how many runs execute concurrently (default 4).
// Interval    – how often the progress sink is invoked (default 100ms).
// Progress    – optional progress sink.
// Control     – optional shared control; one is created when absent.
type Options struct {
	MaxParallel int
	Interval    time.Duration
	Progress    ProgressFunc
	Control     *search.Control
}

// Option represents a functional option for configuring Generate.
type Option func(*Options)

// DefaultOptions returns the batch defaults: 4 parallel runs, 100ms
// progress interval, no sink, fresh control.
func DefaultOptions() Options {
	return Options{
		MaxParallel: 4,
		Interval:    100 * time.Millisecond,
	}
}

// WithMaxParallel bounds concurrent runs. Panics with ErrBadParallel for
// values below 1.
func WithMaxParallel(n int) Option {
	return func(o *Options) {
		if n < 1 {
			panic(ErrBadParallel.Error())
		}
		o.MaxParallel = n
	}
}

// WithProgress attaches a progress sink, polled on the configured interval.
func WithProgress(fn ProgressFunc) Option {
	return func(o *Options) {
		o.Progress = fn
	}
}

// WithProgressInterval changes how often the progress sink fires.
// Panics with ErrBadInterval for non-positive durations.
func WithProgressInterval(d time.Duration) Option {
	return func(o *Options) {
		if d <= 0 {
			panic(ErrBadInterval.Error())
		}
		o.Interval = d
	}
}

// WithControl shares an externally owned control (cancellation flag +
// progress counter) with every run in the batch.
func WithControl(c *search.Control) Option {
	return func(o *Options) {
		o.Control = c
	}
}
