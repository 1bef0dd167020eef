package connectivity

// StronglyConnectedComponents partitions the directed graph adj into its
// strongly connected components using Tarjan's algorithm. adj[u] lists the
// targets of u's outgoing edges.
//
// Components are emitted in the order their roots complete (reverse
// topological order of the condensation); within a component, vertices
// appear in stack-pop order. Every vertex belongs to exactly one
// component; isolated vertices form singleton components.
//
// Returns ErrEmptyGraph or ErrVertexOutOfRange on malformed input.
// Complexity: O(V + E) with an explicit frame stack (no recursion).
func StronglyConnectedComponents(adj [][]int) ([][]int, error) {
	if err := validate(adj); err != nil {
		return nil, err
	}

	n := len(adj)
	ids := make([]int, n)  // discovery index, -1 = unvisited
	low := make([]int, n)  // lowest id reachable using stack vertices
	onStack := make([]bool, n)
	for u := range ids {
		ids[u] = -1
	}
	id := 0

	st := make([]int, 0, n) // Tarjan's vertex stack
	var sccs [][]int

	frames := make([]frame, 0, n)
	var root, v int
	var f *frame
	for root = 0; root < n; root++ {
		if ids[root] != -1 {
			continue
		}
		ids[root], low[root] = id, id
		id++
		onStack[root] = true
		st = append(st, root)
		frames = append(frames, frame{u: root})

		for len(frames) > 0 {
			f = &frames[len(frames)-1]

			if f.idx < len(adj[f.u]) {
				v = adj[f.u][f.idx]
				f.idx++
				if ids[v] == -1 {
					// Tree edge: descend.
					ids[v], low[v] = id, id
					id++
					onStack[v] = true
					st = append(st, v)
					frames = append(frames, frame{u: v})
				} else if onStack[v] {
					// Back edge into the current stack: fold v's low-link.
					if low[v] < low[f.u] {
						low[f.u] = low[v]
					}
				}

				continue
			}

			// f.u fully explored. A vertex whose low-link equals its own id
			// roots a component: pop the stack down to it.
			u := f.u
			frames = frames[:len(frames)-1]
			if ids[u] == low[u] {
				var component []int
				for {
					top := st[len(st)-1]
					st = st[:len(st)-1]
					onStack[top] = false
					component = append(component, top)
					if top == u {
						break
					}
				}
				sccs = append(sccs, component)
			}

			// Fold into the caller frame, but only while u still sits on the
			// stack (a popped component root must not leak its low-link).
			if len(frames) > 0 && onStack[u] && low[u] < low[frames[len(frames)-1].u] {
				low[frames[len(frames)-1].u] = low[u]
			}
		}
	}

	return sccs, nil
}
