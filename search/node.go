package search

import "github.com/tilewave/wavegrid/grid"

// nodeState is a search node's identity: the path depth and the 4-byte
// content hash of the grid at that depth. Nodes sharing a state are treated
// as one graph node (deduplication); the root's state is (0, 0) regardless
// of the starting grid.
type nodeState struct {
	depth int
	world uint32
}

// node is one partial-assignment vertex of the lazily expanded search tree.
// The grid content itself is NOT stored per node: it is reconstructed on
// demand by replaying actions on the single shared grid (see world.go).
type node struct {
	state  nodeState
	parent *node

	// pos/tile is the action that produced this node from its parent.
	pos  grid.Coord
	tile grid.TileHash

	// cost is the local cost of that action; +Inf marks a node that turned
	// out to be a dead end when expanded (diagnostics only).
	cost float64

	// pathEntropy accumulates the local entropy of every decided cell along
	// the path: parent's value plus the expanded cell's entropy.
	pathEntropy float64

	// order is the discovery sequence number, used as a deterministic
	// tie-break between equal-valued nodes.
	order uint64
}

// depth returns the number of cells decided along this node's path.
func (n *node) depth() int { return n.state.depth }
