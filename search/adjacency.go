package search

import (
	"github.com/tilewave/wavegrid/catalog"
	"github.com/tilewave/wavegrid/grid"
)

// adjacency wraps catalog.Query with a per-engine memo. Neighbor tuples
// recur constantly across sibling expansions, and the key space is bounded
// by the finite set of observed 3x3 patterns, so the map never needs
// eviction. Keeping the memo on the engine side (instead of inside the
// shared catalog) preserves the single-owner, lock-free discipline.
type adjacency struct {
	cat  *catalog.Catalog
	conn grid.Connectivity
	memo map[catalog.Pattern]adjacencyResult
}

// adjacencyResult caches one query's candidates with normalized
// probabilities. Slices are shared across lookups and must not be mutated.
type adjacencyResult struct {
	tiles []grid.TileHash
	probs []float64
}

// diagonalIdx lists the pattern positions ignored under Conn4.
var diagonalIdx = [4]int{0, 2, 6, 8}

func newAdjacency(cat *catalog.Catalog, conn grid.Connectivity) *adjacency {
	return &adjacency{
		cat:  cat,
		conn: conn,
		memo: make(map[catalog.Pattern]adjacencyResult),
	}
}

// candidates returns the compatible center tiles for cell c against the
// materialized grid g, with their probabilities (count / total). Undecided
// and out-of-bounds neighbors are wildcards; under Conn4 the diagonal
// positions are wildcarded too. Nil slices mean the cell is currently
// impossible.
func (a *adjacency) candidates(g *grid.Grid, c grid.Coord) ([]grid.TileHash, []float64) {
	var p catalog.Pattern
	i := 0
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if i != catalog.PatternCenter {
				nx, ny := c.X+dx, c.Y+dy
				if g.InBounds(nx, ny) {
					p[i] = g.At(nx, ny)
				}
			}
			i++
		}
	}
	if a.conn == grid.Conn4 {
		for _, idx := range diagonalIdx {
			p[idx] = grid.Undecided
		}
	}

	if r, ok := a.memo[p]; ok {
		return r.tiles, r.probs
	}

	tiles, counts := a.cat.Query(p)
	var probs []float64
	if len(tiles) > 0 {
		var total int64
		for _, n := range counts {
			total += n
		}
		probs = make([]float64, len(counts))
		for i, n := range counts {
			probs[i] = float64(n) / float64(total)
		}
	}
	a.memo[p] = adjacencyResult{tiles: tiles, probs: probs}

	return tiles, probs
}
