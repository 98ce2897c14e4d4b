package search

// openItem pairs a frontier-tree node with its precomputed valuation.
// Lower value = explored sooner; equal values fall back to discovery order,
// which keeps exploration fully deterministic for a fixed seed.
type openItem struct {
	n     *node
	value float64
}

// openPQ is a min-heap (priority queue) of *openItem ordered by value
// ascending, then discovery order ascending. Entries are pushed once and
// never updated (no decrease-key); deduplication happens at generation
// time via the engine's seen-set.
type openPQ []*openItem

// Len returns the number of items in the heap.
func (pq openPQ) Len() int { return len(pq) }

// Less defines the comparison: smaller value → higher priority; ties break
// on earlier discovery.
func (pq openPQ) Less(i, j int) bool {
	if pq[i].value != pq[j].value {
		return pq[i].value < pq[j].value
	}

	return pq[i].n.order < pq[j].n.order
}

// Swap swaps two elements in the heap.
func (pq openPQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap.
// Called by heap.Push; x must be of type *openItem.
func (pq *openPQ) Push(x interface{}) { *pq = append(*pq, x.(*openItem)) }

// Pop removes and returns the smallest element from the heap.
// Called by heap.Pop; returns interface{} that must be cast to *openItem.
func (pq *openPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
