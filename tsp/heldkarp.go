// Package tsp solves the Travelling Salesman Problem exactly with the
// Held–Karp dynamic program.
//
// The input is an n×n distance matrix of int64 weights; Inf marks a
// missing edge and the diagonal must be zero. Two entry points share the
// same recurrence:
//
//   - Solve fills the table bottom-up and reconstructs the optimal tour
//     from a parent table.
//   - MinCost resolves only the states the search actually reaches, via
//     top-down memoization, and reports the optimal cost alone.
//
// Both run in O(n² · 2ⁿ) time and O(n · 2ⁿ) memory; subsets are indexed
// by bitmasks with vertex 0 fixed as the tour start.
//
// Errors: ErrEmptyMatrix, ErrNonSquare, ErrBadDiagonal, ErrNegativeWeight
// on malformed input; ErrNoTour when no Hamiltonian cycle exists.
package tsp

// Solve returns an optimal closed tour over every vertex, starting and
// ending at vertex 0.
//
// dp[mask][j] is the cheapest way to start at 0, visit exactly the
// vertices in mask, and stand at j; parent[mask][j] remembers the
// predecessor so the tour can be walked back after the table is full.
func Solve(dist [][]int64) (Result, error) {
	n, err := validate(dist)
	if err != nil {
		return Result{}, err
	}
	if n == 1 {
		return Result{Tour: []int{0, 0}, Cost: 0}, nil
	}

	allMask := 1<<n - 1
	startMask := 1

	// 1) Allocate DP and parent tables, everything unreachable.
	dp := make([][]int64, 1<<n)
	parent := make([][]int, 1<<n)
	for mask := 0; mask <= allMask; mask++ {
		dp[mask] = make([]int64, n)
		parent[mask] = make([]int, n)
		for j := 0; j < n; j++ {
			dp[mask][j] = Inf
			parent[mask][j] = -1
		}
	}
	dp[startMask][0] = 0

	// 2) Fill every subset containing the start vertex.
	for mask := startMask; mask <= allMask; mask++ {
		if mask&startMask == 0 {
			continue
		}
		for j := 1; j < n; j++ {
			if mask&(1<<j) == 0 {
				continue
			}
			prevMask := mask ^ 1<<j
			for k := 0; k < n; k++ {
				if prevMask&(1<<k) == 0 || dp[prevMask][k] == Inf || dist[k][j] == Inf {
					continue
				}
				if cand := dp[prevMask][k] + dist[k][j]; cand < dp[mask][j] {
					dp[mask][j] = cand
					parent[mask][j] = k
				}
			}
		}
	}

	// 3) Close the tour back to vertex 0.
	best, last := Inf, -1
	for j := 1; j < n; j++ {
		if dp[allMask][j] == Inf || dist[j][0] == Inf {
			continue
		}
		if total := dp[allMask][j] + dist[j][0]; total < best {
			best, last = total, j
		}
	}
	if last < 0 {
		return Result{}, ErrNoTour
	}

	// 4) Walk the parent table backwards to recover the tour.
	tour := make([]int, n+1)
	tour[n] = 0
	mask, j := allMask, last
	for i := n - 1; i >= 1; i-- {
		tour[i] = j
		mask, j = mask^1<<j, parent[mask][j]
	}
	tour[0] = 0

	return Result{Tour: tour, Cost: best}, nil
}
