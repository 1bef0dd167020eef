package astar

// frontierItem is one pending (f-score, vertex) pair awaiting expansion.
type frontierItem struct {
	fScore int64 // g(vertex) + h(vertex) at push time
	vertex int
}

// frontier is a min-heap of frontierItem ordered by fScore ascending.
// Equal f-scores break on the smaller vertex id — an artifact of ordering
// the pair lexicographically, not a deliberately chosen tie-break.
// Stale entries for already-finalized vertices are tolerated and discarded
// on pop (lazy deletion), so no decrease-key or remove-from-middle
// operation is needed.
type frontier []frontierItem

// Len returns the number of pending entries.
func (pq frontier) Len() int { return len(pq) }

// Less orders by f-score, then by vertex id.
func (pq frontier) Less(i, j int) bool {
	if pq[i].fScore != pq[j].fScore {
		return pq[i].fScore < pq[j].fScore
	}

	return pq[i].vertex < pq[j].vertex
}

// Swap swaps two entries.
func (pq frontier) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push appends a new entry; called by heap.Push.
func (pq *frontier) Push(x interface{}) { *pq = append(*pq, x.(frontierItem)) }

// Pop removes and returns the last entry; called by heap.Pop.
func (pq *frontier) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
