// Package grid defines core types and sentinel errors for the 2D tile-hash
// grid shared by the catalog, search and batch subpackages of
// github.com/tilewave/wavegrid.
package grid

import "errors"

// Sentinel errors for grid operations.
var (
	// ErrEmptyGrid indicates a grid with no rows or no columns was requested.
	ErrEmptyGrid = errors.New("grid: grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")
	// ErrBadEncoding indicates a JSON snapshot whose dimensions and cell
	// payload disagree.
	ErrBadEncoding = errors.New("grid: snapshot dimensions do not match cell payload")
)

// TileHash identifies a tile by the 4-byte content hash of its pixel block.
// The zero value is reserved for "undecided".
type TileHash uint32

// Undecided is the reserved hash for a cell that has not been assigned yet.
const Undecided TileHash = 0

// HashSize is the digest size, in bytes, of tile and grid content hashes.
const HashSize = 4

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or
// including diagonals (Conn8). The mode is fixed for the lifetime of a run.
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, W, E, S.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity: the full 3x3 ring.
	Conn8
)

// Coord addresses a single cell. X grows rightwards, Y grows downwards.
type Coord struct {
	X, Y int
}

// Grid is a mutable 2D field of tile hashes stored in row-major order.
// Dimensions are fixed at construction; cells default to Undecided.
type Grid struct {
	width, height int
	cells         []TileHash
}

// offsets8 lists the eight neighbor offsets of the 3x3 ring in row-major
// order. offsets4 is the N/W/E/S subset used under Conn4.
var (
	offsets8 = []Coord{{-1, -1}, {0, -1}, {1, -1}, {-1, 0}, {1, 0}, {-1, 1}, {0, 1}, {1, 1}}
	offsets4 = []Coord{{0, -1}, {-1, 0}, {1, 0}, {0, 1}}
)

// Offsets returns the neighbor offsets for the connectivity mode.
// The returned slice is shared and must be treated as read-only.
// Complexity: O(1).
func (c Connectivity) Offsets() []Coord {
	if c == Conn8 {
		return offsets8
	}

	return offsets4
}

// String implements fmt.Stringer for Connectivity.
func (c Connectivity) String() string {
	if c == Conn8 {
		return "Conn8"
	}

	return "Conn4"
}
