package tsp

// MinCost returns the cost of an optimal closed tour without
// reconstructing it. It resolves the Held–Karp recurrence top-down, so
// only states reachable from the start are ever computed; on sparse
// matrices that can be far fewer than the full 2ⁿ·n table.
func MinCost(dist [][]int64) (int64, error) {
	n, err := validate(dist)
	if err != nil {
		return 0, err
	}
	if n == 1 {
		return 0, nil
	}

	memo := make([][]int64, 1<<n)
	for mask := range memo {
		memo[mask] = make([]int64, n)
		for j := range memo[mask] {
			memo[mask][j] = -1 // unresolved
		}
	}

	best := cheapest(dist, memo, 1, 0, 1<<n-1)
	if best == Inf {
		return 0, ErrNoTour
	}

	return best, nil
}

// cheapest resolves memo[mask][u]: the cost of finishing a tour that has
// visited mask, stands at u, and must still cover the remaining vertices
// before returning to 0. Recursion depth is bounded by the vertex count.
func cheapest(dist [][]int64, memo [][]int64, mask, u, allMask int) int64 {
	if mask == allMask {
		return dist[u][0]
	}
	if memo[mask][u] != -1 {
		return memo[mask][u]
	}

	best := Inf
	for v := 1; v < len(dist); v++ {
		if mask&(1<<v) != 0 || dist[u][v] == Inf {
			continue
		}
		rest := cheapest(dist, memo, mask|1<<v, v, allMask)
		if rest == Inf {
			continue
		}
		if cand := dist[u][v] + rest; cand < best {
			best = cand
		}
	}
	memo[mask][u] = best

	return best
}
