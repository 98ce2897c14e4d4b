// Package search implements the best-first tree search that fills an
// undecided grid with catalog tiles. See doc.go for the full design notes.
package search

import (
	"container/heap"
	"math"

	"github.com/tilewave/wavegrid/catalog"
	"github.com/tilewave/wavegrid/grid"
)

// inf marks expanded nodes that turned out to be dead ends.
var inf = math.Inf(1)

// Search fills the undecided cells of start with tiles from cat, steering
// by the catalog's 3x3 neighborhood statistics. Cells already decided in
// start are fixed and excluded from the total to fill.
//
// The run stops on completion, plateau, tree exhaustion, or when the
// attached Control's stop flag is observed; every outcome still returns
// the best grid reached (cells never decided stay grid.Undecided).
//
// Given a fixed seed, a run is fully deterministic. A single call is
// single-threaded; run several Searches concurrently — one per requested
// output — sharing at most a Control.
//
// Returns ErrNilCatalog, ErrEmptyCatalog or ErrNilGrid on invalid input;
// option constructors panic on out-of-range values.
func Search(cat *catalog.Catalog, start *grid.Grid, opts ...Option) (*Result, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	if cat == nil {
		return nil, ErrNilCatalog
	}
	if cat.Len() == 0 {
		return nil, ErrEmptyCatalog
	}
	if start == nil {
		return nil, ErrNilGrid
	}

	e := newEngine(cat, start, cfg)

	return e.run(), nil
}

// engine holds the mutable state of one search run. Everything here is
// exclusively owned by the expansion loop; only cfg.Control is shared.
type engine struct {
	cfg   Options
	start *grid.Grid
	total int // undecided cells to fill (T)

	world *world
	cost  *costModel
	temps *temperatures

	open openPQ
	seen map[nodeState]struct{}

	best     *node
	last     *node
	expanded int
	orderSeq uint64

	plateauEvery int
	plateauTick  int
	plateauBase  int
	plateauArmed bool // has a baseline depth been recorded yet
	stop         bool
	outcome      Outcome
}

func newEngine(cat *catalog.Catalog, start *grid.Grid, cfg Options) *engine {
	total := start.Undecided()
	adj := newAdjacency(cat, cfg.Conn)
	e := &engine{
		cfg:   cfg,
		start: start.Clone(),
		total: total,
		world: newWorld(start, cfg.Conn),
		cost: &costModel{
			adj:        adj,
			cat:        cat,
			rng:        rngFromSeed(cfg.Seed),
			freqAdjust: cfg.FreqAdjust,
			total:      total,
		},
		temps: newTemperatures(total, cfg.Temp),
		seen:  make(map[nodeState]struct{}),
	}
	e.plateauEvery = cfg.PlateauInterval
	if e.plateauEvery == -1 {
		e.plateauEvery = start.Width() * start.Height() / 2
	}

	return e
}

// run drives the expansion loop. Each step: poll cancellation, run the
// plateau check, then pop and expand the most promising node. Completion,
// plateau and exhaustion all converge on extracting the best node's grid.
func (e *engine) run() *Result {
	root := &node{state: nodeState{depth: 0, world: 0}}
	e.seen[root.state] = struct{}{}
	heap.Init(&e.open)
	heap.Push(&e.open, &openItem{n: root})

	for {
		// The only suspend/cancel point: the start of an expansion step.
		if e.cfg.Control.Cancelled() {
			e.outcome = OutcomeCancelled
			searchLog.Debug().Int("depth", e.bestDepth()).Msg("search cancelled")

			break
		}
		if e.checkPlateau() {
			break
		}
		if e.open.Len() == 0 {
			e.outcome = OutcomeExhausted
			// Like a plateau stop, push the shared counter to this run's
			// end so external reporters converge on done == total.
			e.cfg.Control.advance(int64(e.total - e.bestDepth()))
			searchLog.Debug().Int("depth", e.bestDepth()).
				Msg("exhausted all possibilities without a complete fill")

			break
		}
		e.expand(heap.Pop(&e.open).(*openItem).n)
		if e.stop {
			break
		}
	}

	return &Result{
		Grid:     e.extract(),
		Outcome:  e.outcome,
		Depth:    e.bestDepth(),
		Expanded: e.expanded,
	}
}

// bestDepth returns the deepest depth reached so far, 0 before any
// expansion.
func (e *engine) bestDepth() int {
	if e.best == nil {
		return 0
	}

	return e.best.depth()
}

// checkPlateau increments the step counter and, once it reaches the
// interval, compares the best depth against the depth recorded at the last
// check. The first check only records a baseline; an unchanged depth on a
// later check stops the search. Returns true to stop.
func (e *engine) checkPlateau() bool {
	if e.plateauEvery <= 0 {
		return false
	}
	e.plateauTick++
	if e.plateauTick < e.plateauEvery {
		return false
	}
	if e.plateauArmed && e.plateauBase == e.bestDepth() {
		e.outcome = OutcomePlateau
		// Push the shared progress counter to this run's end so external
		// reporters do not stall on a best-effort finish.
		e.cfg.Control.advance(int64(e.total - e.bestDepth()))
		searchLog.Debug().Int("depth", e.bestDepth()).Msg("stopped on depth plateau")

		return true
	}
	e.plateauTick = 0
	e.plateauBase = e.bestDepth()
	e.plateauArmed = true

	return false
}

// expand performs one expansion of node n, following the successor
// generation scheme:
//
//  1. at depth 0, seed the frontier and treat the shared grid as already
//     representing n; otherwise materialize n against the last expanded
//     node and update the temperature from the two depths;
//  2. update the best-node tracker (strict improvement only, so ties favor
//     the earliest); a best advance bumps the shared progress counter;
//  3. depth == total ⇒ complete, stop, no successors;
//  4. query the cost model for every frontier cell; an empty frontier or
//     any impossible cell is a dead end — mark the node and prune;
//  5. otherwise synthesize one child per (cell, candidate): the child's
//     hash is the grid's hash with that single hypothetical placement,
//     restored before moving on, never committed here.
func (e *engine) expand(n *node) {
	e.expanded++

	if n.depth() == 0 {
		e.best = n
		e.world.initFrontier()
		e.last = n
	} else {
		e.world.materialize(n, e.last)
		e.temps.update(n.depth(), e.last.depth())
		e.last = n
	}

	if n.depth() > e.best.depth() {
		e.best = n
		e.cfg.Control.advance(1)
	}
	if n.depth() >= e.total {
		e.stop = true
		e.outcome = OutcomeComplete
		searchLog.Debug().Int("depth", n.depth()).Msg("search complete, all cells filled")

		return
	}

	cells := e.world.sortedFrontier()
	type collapse struct {
		tiles   []grid.TileHash
		costs   []float64
		entropy float64
	}
	collapses := make([]collapse, len(cells))
	dead := len(cells) == 0
	for i, c := range cells {
		tiles, costs, entropy, ok := e.cost.compute(e.world.g, c, n.depth(), e.world.counts, e.temps.current)
		if !ok {
			dead = true

			break
		}
		collapses[i] = collapse{tiles: tiles, costs: costs, entropy: entropy}
	}
	if dead {
		// Dead end: prune this node only. The cost stays visible for
		// diagnostics when walking the tree afterwards.
		n.cost = inf

		return
	}

	for i, c := range cells {
		for j, t := range collapses[i].tiles {
			e.pushChild(n, c, t, collapses[i].costs[j], collapses[i].entropy)
		}
	}
}

// pushChild synthesizes a successor of n assigning tile t at c, dedupes it
// against previously discovered states, values it and pushes it onto the
// open list. The shared grid is mutated only transiently to hash the
// hypothetical placement.
func (e *engine) pushChild(n *node, c grid.Coord, t grid.TileHash, cost, entropy float64) {
	e.world.g.Set(c.X, c.Y, t)
	h := e.world.g.Hash()
	e.world.g.Set(c.X, c.Y, grid.Undecided)

	st := nodeState{depth: n.depth() + 1, world: h}
	if _, dup := e.seen[st]; dup {
		return
	}
	e.seen[st] = struct{}{}

	e.orderSeq++
	child := &node{
		state:       st,
		parent:      n,
		pos:         c,
		tile:        t,
		cost:        cost,
		pathEntropy: n.pathEntropy + entropy,
		order:       e.orderSeq,
	}
	heap.Push(&e.open, &openItem{n: child, value: e.value(child)})
}

// value computes the exploration priority (minimized):
// w1·(1+T−depth) + w2·cost + w3·(pathEntropy/(1+depth)).
func (e *engine) value(n *node) float64 {
	w := e.cfg.Weights
	revDepth := float64(1 + e.total - n.depth())
	pathAvgEntropy := n.pathEntropy / float64(1+n.depth())

	return w.Depth*revDepth + w.Cost*n.cost + w.Entropy*pathAvgEntropy
}

// extract walks the best node's ancestor chain leaf-to-root, writing each
// action into a grid seeded from the starting grid. Cells never reached
// stay undecided.
func (e *engine) extract() *grid.Grid {
	out := e.start.Clone()
	if e.best == nil {
		return out
	}
	for n := e.best; n.parent != nil; n = n.parent {
		if n.tile != grid.Undecided {
			out.Set(n.pos.X, n.pos.Y, n.tile)
		}
	}

	return out
}
