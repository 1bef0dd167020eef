// Package connectivity analyzes graph connectivity with low-link depth-first
// search: articulation points and bridges on undirected graphs, strongly
// connected components on directed graphs.
//
// All traversals use an explicit frame stack instead of call-stack
// recursion, so graphs with long chains do not hit stack-depth limits.
//
// Complexity: every analysis is O(V + E) time and O(V) extra memory.
package connectivity

// frame is one suspended DFS position: vertex u entered from parent, with
// idx marking the next adjacency entry to explore and children counting
// u's DFS-tree children (needed for the root articulation rule).
type frame struct {
	u        int
	parent   int
	idx      int
	children int
}

// lowlink runs the shared undirected low-link DFS and reports findings
// through the two callbacks: onCut for articulation points (may fire more
// than once per vertex; callers deduplicate) and onBridge for tree edges
// with no back edge over them.
//
// disc[u] is u's discovery time; low[u] is the earliest discovery time
// reachable from u's subtree using at most one back edge. The classic
// rules follow: a non-root u is a cut vertex when some child v has
// low[v] ≥ disc[u]; a root is one when it has two or more tree children;
// the tree edge u—v is a bridge when low[v] > disc[u].
func lowlink(adj [][]int, onCut func(u int), onBridge func(u, v int)) {
	n := len(adj)
	disc := make([]int, n)
	low := make([]int, n)
	for u := range disc {
		disc[u] = -1
	}
	timer := 0

	stack := make([]frame, 0, n)
	var root, v int
	var f *frame
	for root = 0; root < n; root++ {
		if disc[root] != -1 {
			continue
		}
		disc[root], low[root] = timer, timer
		timer++
		stack = append(stack, frame{u: root, parent: -1})

		for len(stack) > 0 {
			f = &stack[len(stack)-1]

			if f.idx < len(adj[f.u]) {
				v = adj[f.u][f.idx]
				f.idx++
				switch {
				case disc[v] == -1:
					// Tree edge: descend.
					f.children++
					disc[v], low[v] = timer, timer
					timer++
					stack = append(stack, frame{u: v, parent: f.u})
				case v != f.parent:
					// Back edge (or forward within the component): u can reach
					// an earlier discovery time without its tree parent.
					if disc[v] < low[f.u] {
						low[f.u] = disc[v]
					}
				}

				continue
			}

			// Subtree of f.u fully explored: pop and fold into the parent.
			done := *f
			stack = stack[:len(stack)-1]
			if len(stack) == 0 {
				// done.u is a DFS root.
				if done.children > 1 {
					onCut(done.u)
				}

				continue
			}

			p := &stack[len(stack)-1]
			if low[done.u] < low[p.u] {
				low[p.u] = low[done.u]
			}
			if p.parent != -1 && low[done.u] >= disc[p.u] {
				onCut(p.u) // no back edge from done.u's subtree above p.u
			}
			if low[done.u] > disc[p.u] {
				onBridge(p.u, done.u)
			}
		}
	}
}
