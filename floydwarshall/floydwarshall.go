// Package floydwarshall implements the Floyd–Warshall all-pairs
// shortest-path algorithm on a dense weighted adjacency matrix.
//
// Floyd–Warshall is a dynamic program over intermediate vertices: after
// considering vertex k, dp[i][j] holds the shortest i→j distance using
// only intermediates from {0..k}. It tolerates negative edge weights; a
// negative cycle makes affected pairs undefined, which this solver detects
// and marks with NegInf.
//
// Complexity:
//
//   - Time:  O(V³) for the triple loop (twice, when negative-cycle
//     propagation runs).
//   - Space: O(V²) for the distance and next-hop tables.
package floydwarshall

import "fmt"

// Solver owns the distance and next-hop tables for one input matrix.
// It is immutable after Solve; queries are read-only.
type Solver struct {
	n      int
	dp     [][]int64 // dp[i][j]: shortest i→j distance; Inf = none, NegInf = undefined
	next   [][]int   // next[i][j]: next hop from i toward j, -1 = none
	solved bool
}

// NewSolver copies the square adjacency matrix adj, where adj[i][j] is the
// weight of edge i→j and Inf marks an absent edge. The diagonal should be
// zero for self-distances to behave as expected.
// Returns ErrEmptyMatrix or ErrNonSquare on malformed input.
func NewSolver(adj [][]int64) (*Solver, error) {
	n := len(adj)
	if n == 0 {
		return nil, ErrEmptyMatrix
	}

	s := &Solver{
		n:    n,
		dp:   make([][]int64, n),
		next: make([][]int, n),
	}
	var i, j int
	for i = 0; i < n; i++ {
		if len(adj[i]) != n {
			return nil, fmt.Errorf("%w: row %d has length %d, want %d", ErrNonSquare, i, len(adj[i]), n)
		}
		s.dp[i] = append([]int64(nil), adj[i]...)
		s.next[i] = make([]int, n)
		for j = 0; j < n; j++ {
			if adj[i][j] != Inf {
				s.next[i][j] = j // direct hop i→j
			} else {
				s.next[i][j] = -1 // no path known yet
			}
		}
	}

	return s, nil
}

// Solve runs the dynamic program and then propagates negative cycles,
// marking every pair routed through one with NegInf. Calling Solve more
// than once is a no-op.
func (s *Solver) Solve() {
	if s.solved {
		return
	}
	s.solved = true

	// 1) Standard relaxation over intermediate vertices k.
	var k, i, j int
	for k = 0; k < s.n; k++ {
		for i = 0; i < s.n; i++ {
			if s.dp[i][k] == Inf {
				continue // k unreachable from i; no path via k can improve i→j
			}
			for j = 0; j < s.n; j++ {
				if s.dp[k][j] == Inf {
					continue
				}
				if s.dp[i][k]+s.dp[k][j] < s.dp[i][j] {
					s.dp[i][j] = s.dp[i][k] + s.dp[k][j]
					s.next[i][j] = s.next[i][k]
				}
			}
		}
	}

	// 2) A second pass that still finds an improvement proves the pair is
	//    routed through a negative cycle: no finite shortest path exists.
	for k = 0; k < s.n; k++ {
		for i = 0; i < s.n; i++ {
			if s.dp[i][k] == Inf || s.dp[i][k] == NegInf {
				continue
			}
			for j = 0; j < s.n; j++ {
				if s.dp[k][j] == Inf || s.dp[k][j] == NegInf {
					continue
				}
				if s.dp[i][k]+s.dp[k][j] < s.dp[i][j] {
					s.dp[i][j] = NegInf
					s.next[i][j] = -1
				}
			}
		}
	}
}

// Dist returns the shortest distance from u to v: Inf when no path exists
// and NegInf when the pair runs through a negative cycle. It solves
// lazily on first use. Returns ErrVertexOutOfRange for bad indices.
func (s *Solver) Dist(u, v int) (int64, error) {
	if u < 0 || u >= s.n || v < 0 || v >= s.n {
		return 0, fmt.Errorf("%w: (%d,%d)", ErrVertexOutOfRange, u, v)
	}
	s.Solve()

	return s.dp[u][v], nil
}

// Path reconstructs one shortest path from u to v by following next-hop
// pointers. A missing path is a normal outcome: the returned slice is nil
// with a nil error. A path through a negative cycle yields
// ErrNegativeCycle.
func (s *Solver) Path(u, v int) ([]int, error) {
	if u < 0 || u >= s.n || v < 0 || v >= s.n {
		return nil, fmt.Errorf("%w: (%d,%d)", ErrVertexOutOfRange, u, v)
	}
	s.Solve()

	if s.dp[u][v] == Inf {
		return nil, nil
	}
	if s.dp[u][v] == NegInf {
		return nil, fmt.Errorf("%w: %d→%d", ErrNegativeCycle, u, v)
	}

	path := make([]int, 0, s.n)
	for i := u; i != v; i = s.next[i][v] {
		if s.dp[i][v] == NegInf {
			return nil, fmt.Errorf("%w: %d→%d", ErrNegativeCycle, u, v)
		}
		if s.next[i][v] == -1 {
			return nil, nil // no valid hop forward
		}
		path = append(path, i)
	}
	path = append(path, v)

	return path, nil
}
