// Package catalog defines core types, sentinel errors and the pattern
// representation for tile catalogs built from sample images.
package catalog

import (
	"errors"
	"image"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/tilewave/wavegrid/grid"
)

// Sentinel errors for catalog operations.
var (
	// ErrNoSamples indicates Build was called without any sample image.
	ErrNoSamples = errors.New("catalog: at least one sample image is required")
	// ErrBadTileSize indicates a non-positive tile width or height.
	ErrBadTileSize = errors.New("catalog: tile width and height must be positive")
	// ErrNilGrid indicates a nil *grid.Grid argument.
	ErrNilGrid = errors.New("catalog: grid is nil")
	// ErrNilImage indicates a nil image argument.
	ErrNilImage = errors.New("catalog: image is nil")
	// ErrBadExport indicates an export payload that cannot be reconstructed
	// into a catalog (wrong tile dimensions, undecodable block, zero hash).
	ErrBadExport = errors.New("catalog: invalid export payload")
)

// catLog is the sub-logger for the catalog package, with module=catalog field.
var catLog zerolog.Logger = log.With().Str("module", "catalog").Logger()

// PatternSize is the side length of a neighborhood pattern.
const PatternSize = 3

// PatternCells is the number of cells in a neighborhood pattern.
const PatternCells = PatternSize * PatternSize

// PatternCenter is the row-major index of the pattern's center cell.
const PatternCenter = PatternCells / 2

// Pattern is a 3x3 block of tile hashes in row-major order; index 4 is the
// center. In queries, grid.Undecided acts as a wildcard that matches any
// tile at that position.
type Pattern [PatternCells]grid.TileHash

// Center returns the pattern's center hash.
func (p Pattern) Center() grid.TileHash { return p[PatternCenter] }

// PatternCount pairs an observed neighborhood pattern with the number of
// times it occurred across all samples.
type PatternCount struct {
	Cells Pattern
	Count int64
}

// Tile is a unique sample tile: its identifying content hash, pixel block,
// and frequency. Frequency is the per-sample fraction of occurrences,
// summed across samples that contain the tile. Immutable once built.
type Tile struct {
	Hash      grid.TileHash
	Block     *image.NRGBA // tight pixel block, tileW×tileH
	Frequency float64
}

// Catalog holds the unique tiles of a sample set together with the observed
// 3x3 tile-hash neighborhoods. It is immutable after Build and safe for
// concurrent readers.
type Catalog struct {
	tileW, tileH int
	tiles        map[grid.TileHash]*Tile
	patterns     []PatternCount
}

// TileWidth returns the tile width in pixels.
func (c *Catalog) TileWidth() int { return c.tileW }

// TileHeight returns the tile height in pixels.
func (c *Catalog) TileHeight() int { return c.tileH }

// Len returns the number of unique tiles.
func (c *Catalog) Len() int { return len(c.tiles) }

// Tile returns the tile identified by h, or nil if unknown.
func (c *Catalog) Tile(h grid.TileHash) *Tile { return c.tiles[h] }

// Frequency returns the learned frequency of h, or 0 for unknown tiles.
func (c *Catalog) Frequency(h grid.TileHash) float64 {
	if t := c.tiles[h]; t != nil {
		return t.Frequency
	}

	return 0
}

// Tiles returns all unique tiles sorted by hash.
// Complexity: O(n log n).
func (c *Catalog) Tiles() []*Tile {
	out := make([]*Tile, 0, len(c.tiles))
	for _, t := range c.tiles {
		out = append(out, t)
	}
	sortTiles(out)

	return out
}

// Patterns returns a copy of the observed neighborhood patterns with their
// occurrence counts, in a deterministic order.
// Complexity: O(m).
func (c *Catalog) Patterns() []PatternCount {
	out := make([]PatternCount, len(c.patterns))
	copy(out, c.patterns)

	return out
}
