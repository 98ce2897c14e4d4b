// Package grid provides the mutable 2D tile-hash field underlying wavegrid:
// construction and validation, cell access, neighbor offsets, and a 4-byte
// BLAKE2b content hash used for node identity during the search.
package grid

import (
	"encoding/binary"

	"golang.org/x/crypto/blake2b"
)

// New returns an all-undecided Grid of the given dimensions.
// Returns ErrEmptyGrid if either dimension is < 1.
// Complexity: O(W×H).
func New(width, height int) (*Grid, error) {
	if width < 1 || height < 1 {
		return nil, ErrEmptyGrid
	}

	return &Grid{
		width:  width,
		height: height,
		cells:  make([]TileHash, width*height),
	}, nil
}

// FromCells constructs a Grid from a non-empty, rectangular 2D slice,
// deep-copying the input. Returns ErrEmptyGrid or ErrNonRectangular on
// invalid shape.
// Complexity: O(W×H).
func FromCells(rows [][]TileHash) (*Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(rows), len(rows[0])
	for _, row := range rows {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	g := &Grid{width: w, height: h, cells: make([]TileHash, w*h)}
	for y := 0; y < h; y++ {
		copy(g.cells[y*w:(y+1)*w], rows[y])
	}

	return g, nil
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// InBounds reports whether (x,y) lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// At returns the tile hash stored at (x,y). The coordinate must be in
// bounds; use InBounds first when unsure.
// Complexity: O(1).
func (g *Grid) At(x, y int) TileHash {
	return g.cells[y*g.width+x]
}

// Set stores a tile hash at (x,y). The coordinate must be in bounds.
// Complexity: O(1).
func (g *Grid) Set(x, y int, t TileHash) {
	g.cells[y*g.width+x] = t
}

// Clone returns a deep copy of the grid.
// Complexity: O(W×H).
func (g *Grid) Clone() *Grid {
	c := &Grid{width: g.width, height: g.height, cells: make([]TileHash, len(g.cells))}
	copy(c.cells, g.cells)

	return c
}

// Equal reports whether two grids have identical dimensions and cells.
// Complexity: O(W×H).
func (g *Grid) Equal(o *Grid) bool {
	if o == nil || g.width != o.width || g.height != o.height {
		return false
	}
	for i, c := range g.cells {
		if o.cells[i] != c {
			return false
		}
	}

	return true
}

// Decided returns the number of cells holding a non-zero tile hash.
// Complexity: O(W×H).
func (g *Grid) Decided() int {
	n := 0
	for _, c := range g.cells {
		if c != Undecided {
			n++
		}
	}

	return n
}

// Undecided returns the number of cells still holding the zero hash.
// Complexity: O(W×H).
func (g *Grid) Undecided() int {
	return len(g.cells) - g.Decided()
}

// Hash returns the 4-byte BLAKE2b digest of the cell buffer, interpreted as
// a big-endian uint32. Two grids with identical dimensions and cells hash
// identically; the search engine uses this value for node identity.
// Complexity: O(W×H).
func (g *Grid) Hash() uint32 {
	buf := make([]byte, len(g.cells)*4)
	for i, c := range g.cells {
		binary.LittleEndian.PutUint32(buf[i*4:], uint32(c))
	}
	h, err := blake2b.New(HashSize, nil)
	if err != nil {
		// blake2b.New only fails on invalid size/key; HashSize is constant.
		panic(err)
	}
	h.Write(buf)

	return binary.BigEndian.Uint32(h.Sum(nil))
}
