// Package hamilton enumerates Hamiltonian paths and cycles in undirected
// graphs.
//
// A Hamiltonian path visits every vertex exactly once; it is a cycle when
// an edge joins its last vertex back to its first. Deciding existence is
// NP-complete, so both operations here are exponential by nature:
//
//   - Paths enumerates every Hamiltonian path by backtracking DFS from
//     each start vertex — O(V!) worst case, for inspection and verification.
//   - CountPaths counts them with a memoized bitmask dynamic program over
//     (visited set, endpoint) states — O(V² · 2^V) time, O(V · 2^V) memory.
//
// The bitmask state space caps the practical vertex count; constructions
// beyond MaxVertices are rejected outright.
package hamilton

import (
	"errors"
	"fmt"
)

// MaxVertices bounds the vertex count so the 2^V bitmask state table
// stays allocatable. Graphs beyond ~20 vertices are infeasible for exact
// Hamiltonian enumeration anyway.
const MaxVertices = 20

// Sentinel errors returned by the hamilton package.
var (
	// ErrInvalidVertexCount indicates the vertex count was zero or negative.
	ErrInvalidVertexCount = errors.New("hamilton: number of vertices must be > 0")

	// ErrTooManyVertices indicates the vertex count exceeds MaxVertices.
	ErrTooManyVertices = errors.New("hamilton: vertex count exceeds bitmask capacity")

	// ErrVertexOutOfRange indicates an edge endpoint outside [0, V).
	ErrVertexOutOfRange = errors.New("hamilton: edge endpoint outside [0, V)")
)

// Edge is one undirected edge of the input graph.
type Edge struct {
	U, V int
}

// Path is one enumerated Hamiltonian path. IsCycle reports whether an
// edge closes the path back to its first vertex.
type Path struct {
	Vertices []int
	IsCycle  bool
}

// Solver owns the adjacency list for one input graph. The graph is
// immutable after construction.
type Solver struct {
	n     int
	graph [][]int
	full  int // bitmask with every vertex visited
}

// NewSolver builds a Solver from an undirected edge list.
// Returns ErrInvalidVertexCount, ErrTooManyVertices, or
// ErrVertexOutOfRange on malformed input.
func NewSolver(numVertices int, edges []Edge) (*Solver, error) {
	if numVertices <= 0 {
		return nil, ErrInvalidVertexCount
	}
	if numVertices > MaxVertices {
		return nil, fmt.Errorf("%w: %d > %d", ErrTooManyVertices, numVertices, MaxVertices)
	}

	s := &Solver{
		n:     numVertices,
		graph: make([][]int, numVertices),
		full:  1<<numVertices - 1,
	}
	var e Edge
	for _, e = range edges {
		if e.U < 0 || e.U >= numVertices || e.V < 0 || e.V >= numVertices {
			return nil, fmt.Errorf("%w: edge (%d,%d)", ErrVertexOutOfRange, e.U, e.V)
		}
		s.graph[e.U] = append(s.graph[e.U], e.V)
		s.graph[e.V] = append(s.graph[e.V], e.U)
	}

	return s, nil
}

// Paths enumerates every Hamiltonian path by trying each vertex as the
// start. Directed duplicates are distinct: a path and its reversal are
// both reported, matching permutation counting. Worst case O(V!).
func (s *Solver) Paths() []Path {
	var found []Path
	scratch := make([]int, 0, s.n)
	for start := 0; start < s.n; start++ {
		found = s.enumerate(start, 0, scratch, start, found)
	}

	return found
}

// enumerate extends the current partial path by u and backtracks.
// Recursion depth is bounded by the vertex count (≤ MaxVertices).
func (s *Solver) enumerate(u, mask int, path []int, start int, found []Path) []Path {
	mask |= 1 << u
	path = append(path, u)

	if mask == s.full {
		// Complete path; an edge back to the start makes it a cycle.
		isCycle := false
		for _, v := range s.graph[u] {
			if v == start {
				isCycle = true
				break
			}
		}
		found = append(found, Path{
			Vertices: append([]int(nil), path...),
			IsCycle:  isCycle,
		})

		return found
	}

	for _, v := range s.graph[u] {
		if mask&(1<<v) == 0 {
			found = s.enumerate(v, mask, path, start, found)
		}
	}

	return found
}

// CountPaths returns the number of Hamiltonian paths using a memoized
// bitmask DP: dp[mask][u] counts completions of a partial path that has
// visited mask and currently ends at u. Dead-end states are cached, so
// repeated sub-searches collapse. O(V² · 2^V) time.
func (s *Solver) CountPaths() int {
	dp := make([][]int, 1<<s.n)
	for mask := range dp {
		dp[mask] = make([]int, s.n)
		for u := range dp[mask] {
			dp[mask][u] = -1 // unknown
		}
	}

	total := 0
	for u := 0; u < s.n; u++ {
		total += s.countFrom(u, 0, dp)
	}

	return total
}

// countFrom resolves dp[mask|1<<u][u], recursing into unvisited neighbors.
func (s *Solver) countFrom(u, mask int, dp [][]int) int {
	mask |= 1 << u
	if mask == s.full {
		return 1
	}
	if dp[mask][u] != -1 {
		return dp[mask][u]
	}

	count := 0
	for _, v := range s.graph[u] {
		if mask&(1<<v) == 0 {
			count += s.countFrom(v, mask, dp)
		}
	}
	dp[mask][u] = count

	return count
}
