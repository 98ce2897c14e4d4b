// Package search defines configuration options, sentinel errors and result
// types for the best-first grid generation engine.
package search

import (
	"errors"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/tilewave/wavegrid/grid"
)

// Sentinel errors returned or panicked by the search engine.
var (
	// ErrNilCatalog indicates a nil *catalog.Catalog was passed to Search.
	ErrNilCatalog = errors.New("search: catalog is nil")
	// ErrEmptyCatalog indicates a catalog without tiles.
	ErrEmptyCatalog = errors.New("search: catalog has no tiles")
	// ErrNilGrid indicates a nil starting grid.
	ErrNilGrid = errors.New("search: starting grid is nil")
	// ErrBadFreqAdjust indicates a frequency-adjustment strength outside [0,1].
	ErrBadFreqAdjust = errors.New("search: frequency-adjustment strength must be in [0,1]")
	// ErrBadPlateau indicates a plateau interval below -1.
	ErrBadPlateau = errors.New("search: plateau interval must be -1 (auto), 0 (off) or positive")
	// ErrBadTemperature indicates a temperature bound outside [0,100).
	ErrBadTemperature = errors.New("search: temperature bounds must be in [0,100)")
	// ErrBadWeights indicates a negative valuation weight.
	ErrBadWeights = errors.New("search: valuation weights must be non-negative")
)

// searchLog is the sub-logger for the search package, with module=search field.
var searchLog zerolog.Logger = log.With().Str("module", "search").Logger()

// Outcome classifies how a run ended. All non-cancellation outcomes still
// carry the best grid found.
type Outcome int

const (
	// OutcomeComplete means every undecided cell was filled.
	OutcomeComplete Outcome = iota
	// OutcomePlateau means the best depth stopped improving between two
	// plateau checks; the result is the deepest partial fill.
	OutcomePlateau
	// OutcomeExhausted means the tree ran out of nodes before completion;
	// informational, not an error.
	OutcomeExhausted
	// OutcomeCancelled means the external stop flag was observed.
	OutcomeCancelled
)

// String implements fmt.Stringer for Outcome.
func (o Outcome) String() string {
	switch o {
	case OutcomeComplete:
		return "complete"
	case OutcomePlateau:
		return "plateau"
	case OutcomeExhausted:
		return "exhausted"
	case OutcomeCancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

// Result is the outcome of one generation run.
type Result struct {
	// Grid is the best grid reached: the starting grid with every action
	// along the best node's path applied. Cells never reached stay
	// grid.Undecided — never a default tile.
	Grid *grid.Grid
	// Outcome classifies the stop reason.
	Outcome Outcome
	// Depth is the number of cells decided along the best path.
	Depth int
	// Expanded is the number of nodes expanded before stopping.
	Expanded int
}

// Weights are the three node-valuation coefficients. The engine explores
// the node minimizing
//
//	Depth*(1+T−depth) + Cost*nodeCost + Entropy*(pathEntropy/(1+depth))
//
// where T is the total number of cells to fill. Depth progress is favored,
// but local cost or path entropy can override it — this is not a pure
// depth-first search.
type Weights struct {
	Depth   float64
	Cost    float64
	Entropy float64
}

// Temperature bounds the annealing signal consumed by the cost model.
// Start is the initial minimum temperature; MinFloor and MaxFloor are the
// targets blended in when advancing or backtracking. All values live in
// [0,100).
type Temperature struct {
	Start    float64
	MinFloor float64
	MaxFloor float64
}

// Options configures a single search run.
//
// Seed            – RNG seed; identical seeds reproduce identical grids.
// Conn            – neighborhood connectivity for the frontier (Conn4/Conn8).
// FreqAdjust      – frequency-adjustment strength in [0,1]; 0 ignores
// learned frequencies entirely.
// PlateauInterval – expansions between plateau checks; -1 auto-selects half
// the grid's cell count, 0 disables plateau detection.
// Temp            – temperature bounds, see Temperature.
// Weights         – node valuation coefficients, see Weights.
// Control         – optional shared cancellation flag + progress counter.
type Options struct {
	Seed            int64
	Conn            grid.Connectivity
	FreqAdjust      float64
	PlateauInterval int
	Temp            Temperature
	Weights         Weights
	Control         *Control
}

// Option represents a functional option for configuring Search.
type Option func(*Options)

// DefaultOptions returns Options with the engine's defaults: Conn4,
// full frequency adjustment, automatic plateau interval, temperature
// 50/0/80, weights 1/1/0, no shared control.
func DefaultOptions() Options {
	return Options{
		Seed:            0,
		Conn:            grid.Conn4,
		FreqAdjust:      1,
		PlateauInterval: -1,
		Temp:            Temperature{Start: 50, MinFloor: 0, MaxFloor: 80},
		Weights:         Weights{Depth: 1, Cost: 1, Entropy: 0},
	}
}

// WithSeed fixes the RNG seed. Seed 0 maps to a stable default stream.
func WithSeed(seed int64) Option {
	return func(o *Options) {
		o.Seed = seed
	}
}

// WithConnectivity selects 4- or 8-neighbor frontier connectivity.
func WithConnectivity(c grid.Connectivity) Option {
	return func(o *Options) {
		o.Conn = c
	}
}

// WithFrequencyAdjust scales how strongly the learned-vs-current frequency
// deviation bends candidate costs. Zero disables the adjustment.
// Panics with ErrBadFreqAdjust outside [0,1].
func WithFrequencyAdjust(strength float64) Option {
	return func(o *Options) {
		if strength < 0 || strength > 1 {
			panic(ErrBadFreqAdjust.Error())
		}
		o.FreqAdjust = strength
	}
}

// WithPlateauInterval sets the number of expansions between plateau checks.
// -1 auto-selects half the grid's cell count; 0 disables the check.
// Panics with ErrBadPlateau below -1.
func WithPlateauInterval(n int) Option {
	return func(o *Options) {
		if n < -1 {
			panic(ErrBadPlateau.Error())
		}
		o.PlateauInterval = n
	}
}

// WithTemperature sets the annealing bounds. Each bound must be in [0,100).
// Panics with ErrBadTemperature otherwise.
func WithTemperature(t Temperature) Option {
	return func(o *Options) {
		for _, v := range [3]float64{t.Start, t.MinFloor, t.MaxFloor} {
			if v < 0 || v >= 100 {
				panic(ErrBadTemperature.Error())
			}
		}
		o.Temp = t
	}
}

// WithWeights sets the three valuation coefficients.
// Panics with ErrBadWeights when any is negative.
func WithWeights(w Weights) Option {
	return func(o *Options) {
		if w.Depth < 0 || w.Cost < 0 || w.Entropy < 0 {
			panic(ErrBadWeights.Error())
		}
		o.Weights = w
	}
}

// WithControl attaches a shared Control, letting several runs share one
// cancellation flag and one progress counter.
func WithControl(c *Control) Option {
	return func(o *Options) {
		o.Control = c
	}
}
