package connectivity

// Bridges returns every bridge of the undirected graph adj, in the order
// the DFS certifies them (deepest subtrees first). adj[u] lists u's
// neighbors; an undirected edge must appear in both lists. Each Bridge
// reports the endpoint discovered first as U.
//
// Note: parallel edges are not modeled — a doubled edge still looks like a
// single tree edge to the parent check, matching the reference semantics.
//
// Returns ErrEmptyGraph or ErrVertexOutOfRange on malformed input; an
// empty result slice means the graph is 2-edge-connected per component.
func Bridges(adj [][]int) ([]Bridge, error) {
	if err := validate(adj); err != nil {
		return nil, err
	}

	bridges := make([]Bridge, 0)
	lowlink(adj,
		func(int) {},
		func(u, v int) { bridges = append(bridges, Bridge{U: u, V: v}) },
	)

	return bridges, nil
}
