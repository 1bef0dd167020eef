// Package astar implements the A* shortest-path algorithm on weighted
// undirected graphs whose vertices carry grid coordinates.
//
// A* is best-first search ordered by f(n) = g(n) + h(n), where g(n) is the
// accumulated cost from the source and h(n) is a precomputed admissible
// heuristic (Manhattan distance to the destination's grid cell). With
// non-negative edge weights and an admissible heuristic, the distance is
// final the moment the destination is popped from the frontier.
//
// Complexity:
//
//   - Time:  between O(b^d) and O(E log V) depending on heuristic quality;
//     each vertex is finalized at most once, each relaxation may push one
//     heap entry (lazy decrease-key).
//   - Space: O(V + E) for the adjacency list, plus O(V) per-solve state
//     and up to O(E) stale frontier entries.
//
// Notes on implementation choices:
//
//   - Heuristics are cached once at construction (one full grid scan);
//     Solve never rescans the grid.
//   - The frontier is a min-heap without decrease-key: improved vertices
//     are re-pushed and the stale entries are discarded on pop via the
//     closed check.
//   - Negative edge weights are rejected at construction with a fail-fast
//     scan, mirroring the non-negativity requirement of the f-ordering.
package astar

import (
	"container/heap"
	"fmt"
	"math"
)

// Solver performs A* searches from a fixed source to a fixed destination
// on a fixed graph. It exclusively owns the adjacency structure, the
// heuristic table, and all per-solve search state; it is not safe for
// concurrent use without external synchronization.
type Solver struct {
	graph       [][]arc // adjacency list, both directions per input edge
	heuristic   []int64 // cached h(v) per vertex; 0 for vertices absent from the grid
	source      int
	destination int
	numVertices int

	shortestDistance int64 // DistNotFound until a solve succeeds
	parent           []int // predecessor per vertex from the latest solve; -1 = none
}

// NewSolver builds a Solver from a coordinate grid, an undirected edge
// list, a source vertex, a destination vertex, and the total vertex count.
//
// Validation (in order):
//  1. numVertices must be positive (ErrInvalidVertexCount).
//  2. source and destination must lie in [0, numVertices) (ErrVertexOutOfRange).
//  3. Every edge endpoint must lie in [0, numVertices) (ErrVertexOutOfRange).
//  4. Every edge weight must be non-negative (ErrNegativeWeight).
//  5. destination must appear in the grid (ErrDestinationNotInGrid).
//
// Side effects: builds the adjacency list (each edge inserted in both
// directions) and caches the Manhattan heuristic for every vertex present
// in the grid. Complexity: O(E + rows×cols).
func NewSolver(grid Grid, edges []Edge, source, destination, numVertices int) (*Solver, error) {
	// 1) Reject empty or negative vertex counts up front.
	if numVertices <= 0 {
		return nil, ErrInvalidVertexCount
	}

	// 2) The search endpoints must be real vertices.
	if source < 0 || source >= numVertices {
		return nil, fmt.Errorf("%w: source=%d", ErrVertexOutOfRange, source)
	}
	if destination < 0 || destination >= numVertices {
		return nil, fmt.Errorf("%w: destination=%d", ErrVertexOutOfRange, destination)
	}

	s := &Solver{
		graph:            make([][]arc, numVertices),
		heuristic:        make([]int64, numVertices),
		source:           source,
		destination:      destination,
		numVertices:      numVertices,
		shortestDistance: DistNotFound,
	}

	// 3) + 4) Validate each edge, then insert it in both directions.
	var e Edge
	for _, e = range edges {
		if e.U < 0 || e.U >= numVertices || e.V < 0 || e.V >= numVertices {
			return nil, fmt.Errorf("%w: edge (%d,%d)", ErrVertexOutOfRange, e.U, e.V)
		}
		if e.Weight < 0 {
			return nil, fmt.Errorf("%w: edge (%d,%d) weight=%d", ErrNegativeWeight, e.U, e.V, e.Weight)
		}
		s.graph[e.U] = append(s.graph[e.U], arc{to: e.V, weight: e.Weight})
		s.graph[e.V] = append(s.graph[e.V], arc{to: e.U, weight: e.Weight})
	}

	// 5) Anchor the heuristic table on the destination's coordinates.
	if err := s.initHeuristics(grid); err != nil {
		return nil, err
	}

	return s, nil
}

// Solve runs one best-first search from source toward destination.
// It returns true and records the finalized shortest distance when the
// destination is popped from the frontier, or false when the frontier is
// exhausted first (the distance then stays at DistNotFound).
//
// All search state (dist, closed, parent) is allocated fresh per call;
// re-invoking Solve overwrites the previous search.
func (s *Solver) Solve() bool {
	// 1) Fresh per-solve state: dist[v] = +∞ except the source, no parents,
	//    nothing finalized.
	dist := make([]int64, s.numVertices)
	closed := make([]bool, s.numVertices)
	s.parent = make([]int, s.numVertices)
	var v int
	for v = 0; v < s.numVertices; v++ {
		dist[v] = math.MaxInt64
		s.parent[v] = -1
	}
	dist[s.source] = 0

	// f looks the heuristic up from the cached table; it is never
	// recomputed during the search.
	f := func(v int) int64 { return dist[v] + s.heuristic[v] }

	// 2) Seed the frontier with the source.
	pq := make(frontier, 0, s.numVertices)
	heap.Init(&pq)
	heap.Push(&pq, frontierItem{fScore: f(s.source), vertex: s.source})

	// 3) Main loop: pop the lowest f-score, discard stale entries, expand.
	var u int
	var a arc
	var tentative int64
	for pq.Len() > 0 {
		item := heap.Pop(&pq).(frontierItem)
		u = item.vertex

		// Lazy deletion: a finalized vertex may still have stale entries in
		// the frontier; drop them on pop instead of removing them eagerly.
		if closed[u] {
			continue
		}

		// Success: with an admissible heuristic, popping the destination
		// finalizes its distance.
		if u == s.destination {
			s.shortestDistance = dist[s.destination]

			return true
		}

		closed[u] = true

		// 4) Relax every arc out of u, skipping finalized neighbors.
		for _, a = range s.graph[u] {
			if closed[a.to] {
				continue
			}
			tentative = dist[u] + a.weight
			if tentative < dist[a.to] {
				dist[a.to] = tentative
				s.parent[a.to] = u
				// No decrease-key: push a fresh entry and let the old one go
				// stale in the frontier.
				heap.Push(&pq, frontierItem{fScore: f(a.to), vertex: a.to})
			}
		}
	}

	// 5) Frontier exhausted without reaching the destination.
	return false
}

// ShortestDistance returns the finalized shortest distance from source to
// destination, triggering a solve first if none has succeeded yet.
// It returns DistNotFound when no path exists.
func (s *Solver) ShortestDistance() int64 {
	if s.shortestDistance == DistNotFound {
		s.Solve()
	}

	return s.shortestDistance
}

// ReconstructPath walks parent pointers backward from the destination and
// returns the vertex sequence from source to destination inclusive.
// It returns ErrPathNotSolved when no successful solve has recorded a
// distance yet; call ShortestDistance or Solve first and check the result.
//
// The "not yet solved" check keys off the DistNotFound sentinel, exactly
// as the recorded distance does — see DESIGN.md for the tri-state
// alternative left as future work.
func (s *Solver) ReconstructPath() ([]int, error) {
	if s.shortestDistance == DistNotFound {
		return nil, ErrPathNotSolved
	}

	// Collect destination → source, then reverse in place.
	path := make([]int, 0, s.numVertices)
	u := s.destination
	for u != s.source {
		path = append(path, u)
		u = s.parent[u]
	}
	path = append(path, s.source)
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
