// Package connectivity defines shared types and sentinel errors for the
// graph connectivity analyses: articulation points, bridges, and strongly
// connected components.
package connectivity

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by the connectivity package.
var (
	// ErrEmptyGraph indicates the adjacency list has no vertices.
	ErrEmptyGraph = errors.New("connectivity: graph must have at least one vertex")

	// ErrVertexOutOfRange indicates an adjacency entry references a vertex
	// outside [0, V).
	ErrVertexOutOfRange = errors.New("connectivity: adjacency entry outside [0, V)")
)

// Bridge is one bridge edge of an undirected graph: removing it increases
// the number of connected components. U is the vertex discovered first.
type Bridge struct {
	U, V int
}

// validate rejects empty graphs and out-of-range adjacency entries.
func validate(adj [][]int) error {
	n := len(adj)
	if n == 0 {
		return ErrEmptyGraph
	}
	for u := range adj {
		for _, v := range adj[u] {
			if v < 0 || v >= n {
				return fmt.Errorf("%w: %d→%d", ErrVertexOutOfRange, u, v)
			}
		}
	}

	return nil
}
