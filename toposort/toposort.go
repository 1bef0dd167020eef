// Package toposort implements Kahn's algorithm: a queue-driven topological
// sort of a directed acyclic graph with built-in cycle detection.
//
// The algorithm repeatedly removes vertices of in-degree zero and lowers
// the in-degree of their targets. If every vertex gets removed the
// recorded removal order is a valid topological order; leftover vertices
// with positive in-degree prove a cycle.
//
// Complexity: O(V + E) time, O(V) extra memory.
package toposort

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by the toposort package.
var (
	// ErrEmptyGraph indicates the adjacency list has no vertices.
	ErrEmptyGraph = errors.New("toposort: graph must have at least one vertex")

	// ErrVertexOutOfRange indicates an adjacency entry references a vertex
	// outside [0, V).
	ErrVertexOutOfRange = errors.New("toposort: adjacency entry outside [0, V)")

	// ErrCycleDetected indicates the graph contains a directed cycle, so no
	// topological order exists.
	ErrCycleDetected = errors.New("toposort: cycle detected")
)

// Sort returns a topological ordering of the directed graph adj, where
// adj[u] lists the targets of u's outgoing edges. Vertices of equal rank
// come out in ascending id order (the zero-in-degree queue is seeded
// 0..V-1, so the result is deterministic).
//
// Returns ErrCycleDetected when the graph is not acyclic.
func Sort(adj [][]int) ([]int, error) {
	// 1) Validate shape and count in-degrees in one pass.
	n := len(adj)
	if n == 0 {
		return nil, ErrEmptyGraph
	}
	inDegree := make([]int, n)
	var u, v int
	for u = range adj {
		for _, v = range adj[u] {
			if v < 0 || v >= n {
				return nil, fmt.Errorf("%w: %d→%d", ErrVertexOutOfRange, u, v)
			}
			inDegree[v]++
		}
	}

	// 2) Seed the queue with every source vertex.
	queue := make([]int, 0, n)
	for u = 0; u < n; u++ {
		if inDegree[u] == 0 {
			queue = append(queue, u)
		}
	}

	// 3) Peel sources off and release their targets.
	order := make([]int, 0, n)
	for head := 0; head < len(queue); head++ {
		u = queue[head]
		order = append(order, u)
		for _, v = range adj[u] {
			inDegree[v]--
			if inDegree[v] == 0 {
				queue = append(queue, v)
			}
		}
	}

	// 4) Anything left unprocessed sits on a cycle.
	if len(order) != n {
		return nil, fmt.Errorf("%w: %d of %d vertices ordered", ErrCycleDetected, len(order), n)
	}

	return order, nil
}
