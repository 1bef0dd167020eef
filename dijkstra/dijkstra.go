// Package dijkstra implements Dijkstra's shortest-path algorithm over an
// index-based adjacency list.
//
// Solve computes the minimum cost from a single source vertex to every
// other vertex of a graph with non-negative arc weights, processing
// vertices in order of increasing distance with a min-heap and relaxing
// arcs as they are extracted.
//
// Complexity:
//
//   - Time:  O((V + E) log V) — each vertex is extracted at most once,
//     each relaxation may push one heap entry ("lazy decrease-key").
//   - Space: O(V + E) — distance/predecessor slices plus worst-case stale
//     heap entries.
package dijkstra

import (
	"container/heap"
	"fmt"
)

// Solve computes shortest distances from source to every vertex of graph.
// graph[u] lists the arcs out of u; an undirected edge must appear in both
// endpoint lists.
//
// Returns:
//
//   - dist: dist[v] is the minimum cost from source to v, or Unreachable.
//   - prev: predecessor slice when WithReturnPath is set, nil otherwise.
//   - err:  ErrEmptyGraph, ErrSourceOutOfRange, ErrVertexOutOfRange, or
//     ErrNegativeWeight on invalid input.
func Solve(graph [][]Arc, source int, opts ...Option) ([]int64, []int, error) {
	// 1) Apply functional options over the defaults.
	cfg := DefaultOptions()
	var opt Option
	for _, opt = range opts {
		opt(&cfg)
	}

	// 2) Validate the graph shape and the source.
	n := len(graph)
	if n == 0 {
		return nil, nil, ErrEmptyGraph
	}
	if source < 0 || source >= n {
		return nil, nil, fmt.Errorf("%w: source=%d", ErrSourceOutOfRange, source)
	}

	// 3) Fail fast on malformed arcs: out-of-range targets or negative
	//    weights are construction mistakes, not "no path" outcomes.
	var u int
	var a Arc
	for u = range graph {
		for _, a = range graph[u] {
			if a.To < 0 || a.To >= n {
				return nil, nil, fmt.Errorf("%w: arc %d→%d", ErrVertexOutOfRange, u, a.To)
			}
			if a.Weight < 0 {
				return nil, nil, fmt.Errorf("%w: arc %d→%d weight=%d", ErrNegativeWeight, u, a.To, a.Weight)
			}
		}
	}

	// 4) Initialize state: every distance at Unreachable except the source.
	dist := make([]int64, n)
	for u = range dist {
		dist[u] = Unreachable
	}
	dist[source] = 0

	var prev []int
	if cfg.ReturnPath {
		prev = make([]int, n)
		for u = range prev {
			prev[u] = -1
		}
	}

	// 5) Seed the min-heap with (0, source).
	pq := make(arcPQ, 0, n)
	heap.Init(&pq)
	heap.Push(&pq, arcItem{dist: 0, vertex: source})

	// 6) Main loop: extract the closest vertex, skip stale entries, relax.
	var cost, next int64
	for pq.Len() > 0 {
		item := heap.Pop(&pq).(arcItem)
		u = item.vertex
		cost = item.dist

		// A popped cost above the recorded best means the entry went stale
		// after a later improvement; discard it.
		if cost > dist[u] {
			continue
		}

		for _, a = range graph[u] {
			next = cost + a.Weight
			if next < dist[a.To] {
				dist[a.To] = next
				if prev != nil {
					prev[a.To] = u
				}
				heap.Push(&pq, arcItem{dist: next, vertex: a.To})
			}
		}
	}

	return dist, prev, nil
}

// arcItem is one pending (distance, vertex) pair in the heap.
type arcItem struct {
	dist   int64
	vertex int
}

// arcPQ is a min-heap of arcItem ordered by dist ascending, used with the
// lazy decrease-key strategy: improved vertices are re-pushed and stale
// entries are ignored when popped.
type arcPQ []arcItem

// Len returns the number of pending entries.
func (pq arcPQ) Len() int { return len(pq) }

// Less defines the comparison: smaller dist → higher priority.
func (pq arcPQ) Less(i, j int) bool { return pq[i].dist < pq[j].dist }

// Swap swaps two entries.
func (pq arcPQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push appends a new entry; called by heap.Push.
func (pq *arcPQ) Push(x interface{}) { *pq = append(*pq, x.(arcItem)) }

// Pop removes and returns the last entry; called by heap.Pop.
func (pq *arcPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
