package catalog

import (
	"sort"

	"github.com/tilewave/wavegrid/grid"
)

// Query returns the center-tile candidates compatible with a partially
// decided 3x3 neighborhood, with their aggregated occurrence counts.
//
// Positions holding grid.Undecided are wildcards: they match any tile, which
// is how undecided and out-of-bounds neighbors are expressed. A catalog
// pattern is compatible when every non-wildcard position of the query equals
// the pattern's hash at that position; the center position is normally
// wildcarded by callers (a non-zero center further restricts candidates).
//
// Results are sorted by ascending candidate hash so that identical queries
// always enumerate identically. Both slices are nil when nothing matches,
// which signals the cell is currently impossible.
//
// The function is pure; memoization is left to the caller (the search engine
// keeps a per-instance memo so no locking is needed, see the search package).
// Complexity: O(patterns × 9) per call.
func (c *Catalog) Query(p Pattern) ([]grid.TileHash, []int64) {
	agg := make(map[grid.TileHash]int64)
	for i := range c.patterns {
		if matches(p, c.patterns[i].Cells) {
			agg[c.patterns[i].Cells.Center()] += c.patterns[i].Count
		}
	}
	if len(agg) == 0 {
		return nil, nil
	}

	hashes := make([]grid.TileHash, 0, len(agg))
	for h := range agg {
		hashes = append(hashes, h)
	}
	sort.Slice(hashes, func(i, j int) bool { return hashes[i] < hashes[j] })
	counts := make([]int64, len(hashes))
	for i, h := range hashes {
		counts[i] = agg[h]
	}

	return hashes, counts
}

// matches reports whether every non-wildcard position of query equals the
// candidate pattern at that position.
func matches(query, candidate Pattern) bool {
	for i := 0; i < PatternCells; i++ {
		if query[i] == grid.Undecided {
			continue
		}
		if candidate[i] != query[i] {
			return false
		}
	}

	return true
}
