package search

import (
	"sort"

	"github.com/tilewave/wavegrid/grid"
)

// world is the World State Manager: the single mutable grid buffer shared
// by every branch of the search, plus the occurrence counters and the
// frontier set. At any instant it reflects exactly the path from the root
// to the last materialized node — not any particular node — and must be
// resynchronized via materialize before it is read during expansion.
//
// Ownership: a world belongs to exactly one engine and is only mutated from
// that engine's expansion loop, so no synchronization is needed.
type world struct {
	g        *grid.Grid
	counts   map[grid.TileHash]int
	frontier map[grid.Coord]struct{}
	conn     grid.Connectivity
}

// newWorld clones the starting grid into the shared buffer. Counters and
// frontier start empty; pre-decided cells never enter the counters, which
// track the materialized path only.
func newWorld(start *grid.Grid, conn grid.Connectivity) *world {
	return &world{
		g:        start.Clone(),
		counts:   make(map[grid.TileHash]int),
		frontier: make(map[grid.Coord]struct{}),
		conn:     conn,
	}
}

// apply sets a cell, bumps the tile's occurrence counter, closes the cell
// in the frontier and opens each still-undecided neighbor. Touches only the
// cell's immediate vicinity — O(1) amortized, no grid rescan.
func (w *world) apply(c grid.Coord, t grid.TileHash) {
	w.g.Set(c.X, c.Y, t)
	w.counts[t]++
	delete(w.frontier, c)
	for _, d := range w.conn.Offsets() {
		nx, ny := c.X+d.X, c.Y+d.Y
		if !w.g.InBounds(nx, ny) {
			continue
		}
		if w.g.At(nx, ny) == grid.Undecided {
			w.frontier[grid.Coord{X: nx, Y: ny}] = struct{}{}
		}
	}
}

// revert is apply's exact inverse: decrement the counter, clear the cell,
// reopen it, and close each neighbor that no longer touches any decided
// cell of its own. apply followed by revert restores grid, counters and
// frontier bit for bit.
func (w *world) revert(c grid.Coord, t grid.TileHash) {
	w.counts[t]--
	if w.counts[t] == 0 {
		delete(w.counts, t)
	}
	w.g.Set(c.X, c.Y, grid.Undecided)
	w.frontier[c] = struct{}{}
	for _, d := range w.conn.Offsets() {
		nx, ny := c.X+d.X, c.Y+d.Y
		if !w.g.InBounds(nx, ny) {
			continue
		}
		nc := grid.Coord{X: nx, Y: ny}
		if _, open := w.frontier[nc]; !open {
			continue
		}
		if w.touchesDecided(nc) {
			continue // still adjacent to a decided cell, stays open
		}
		delete(w.frontier, nc)
	}
}

// touchesDecided reports whether any of c's own neighbors is decided.
func (w *world) touchesDecided(c grid.Coord) bool {
	for _, d := range w.conn.Offsets() {
		nx, ny := c.X+d.X, c.Y+d.Y
		if !w.g.InBounds(nx, ny) {
			continue
		}
		if w.g.At(nx, ny) != grid.Undecided {
			return true
		}
	}

	return false
}

// materialize rewrites the shared grid from representing last's path to
// representing target's path:
//
//  1. depth-align both nodes, reverting last's actions while ascending;
//  2. keep ascending both chains in lockstep, reverting, until the states
//     match (the nearest common ancestor);
//  3. re-apply, root-to-leaf, every action from the ancestor down to target.
//
// materialize(A, A) is a no-op. Only this method and initFrontier mutate
// the world during a run.
func (w *world) materialize(target, last *node) {
	minDepth := target.depth()
	if last.depth() < minDepth {
		minDepth = last.depth()
	}

	p, c := last, target
	for p.depth() > minDepth {
		w.revert(p.pos, p.tile)
		p = p.parent
	}
	for c.depth() > minDepth {
		c = c.parent
	}
	for p.state != c.state {
		w.revert(p.pos, p.tile)
		p = p.parent
		c = c.parent
	}

	// Re-apply in root-to-leaf order; frontier bookkeeping depends on it.
	var pending []*node
	for n := target; n.depth() > c.depth(); n = n.parent {
		pending = append(pending, n)
	}
	for i := len(pending) - 1; i >= 0; i-- {
		w.apply(pending[i].pos, pending[i].tile)
	}
}

// initFrontier seeds the frontier at depth 0: the center cell when the
// starting grid is empty, otherwise every undecided cell adjacent to a
// decided one. This is the only wholesale grid scan the frontier ever does.
func (w *world) initFrontier() {
	if w.g.Decided() == 0 {
		w.frontier[grid.Coord{X: w.g.Width() / 2, Y: w.g.Height() / 2}] = struct{}{}

		return
	}
	for y := 0; y < w.g.Height(); y++ {
		for x := 0; x < w.g.Width(); x++ {
			if w.g.At(x, y) != grid.Undecided {
				continue
			}
			c := grid.Coord{X: x, Y: y}
			if w.touchesDecided(c) {
				w.frontier[c] = struct{}{}
			}
		}
	}
}

// sortedFrontier returns the frontier coordinates ordered by (Y, X) so that
// expansion enumerates cells — and consumes randomness — deterministically.
func (w *world) sortedFrontier() []grid.Coord {
	out := make([]grid.Coord, 0, len(w.frontier))
	for c := range w.frontier {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Y != out[j].Y {
			return out[i].Y < out[j].Y
		}

		return out[i].X < out[j].X
	})

	return out
}
