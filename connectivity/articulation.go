package connectivity

// ArticulationPoints returns, in ascending vertex order, every vertex of
// the undirected graph adj whose removal increases the number of connected
// components. adj[u] lists u's neighbors; an undirected edge must appear
// in both lists. Disconnected graphs are handled (every component is
// scanned).
//
// Returns ErrEmptyGraph or ErrVertexOutOfRange on malformed input; an
// empty result slice means the graph has no articulation points.
func ArticulationPoints(adj [][]int) ([]int, error) {
	if err := validate(adj); err != nil {
		return nil, err
	}

	// A vertex can qualify through several children; flag and collect once.
	isCut := make([]bool, len(adj))
	lowlink(adj,
		func(u int) { isCut[u] = true },
		func(int, int) {},
	)

	points := make([]int, 0)
	for u, cut := range isCut {
		if cut {
			points = append(points, u)
		}
	}

	return points, nil
}
