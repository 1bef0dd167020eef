// Package astar defines core types, sentinel values, and sentinel errors
// for the A* shortest-path solver.
package astar

import "errors"

// NoVertex is the grid sentinel meaning "no vertex occupies this cell".
const NoVertex = -1

// DistNotFound is the distance sentinel reported before any successful
// solve and when the destination is unreachable. Edge weights are
// validated non-negative at construction, so a legitimately computed
// distance can never collide with it.
const DistNotFound int64 = -1

// Sentinel errors returned by the astar package.
var (
	// ErrInvalidVertexCount indicates the vertex count passed to NewSolver
	// was zero or negative.
	ErrInvalidVertexCount = errors.New("astar: number of vertices must be > 0")

	// ErrVertexOutOfRange indicates an edge endpoint, the source, or the
	// destination lies outside [0, V).
	ErrVertexOutOfRange = errors.New("astar: vertex outside [0, V)")

	// ErrNegativeWeight indicates an edge with negative weight. A* relies on
	// non-negative costs for the f-score ordering to be admissible.
	ErrNegativeWeight = errors.New("astar: negative edge weights are not supported")

	// ErrDestinationNotInGrid indicates the destination vertex id does not
	// appear anywhere in the grid, so no heuristic can be anchored.
	ErrDestinationNotInGrid = errors.New("astar: destination vertex not found in the grid")

	// ErrPathNotSolved indicates ReconstructPath was called before any
	// successful solve recorded a finalized shortest distance.
	ErrPathNotSolved = errors.New("astar: shortest path has not been found yet")
)

// Grid is a rectangular 2D map of cell contents. Each cell holds either a
// vertex id in [0, V) or NoVertex. The grid exists solely to give vertices
// coordinates for the Manhattan-distance heuristic; it does not define
// adjacency (the edge list does).
type Grid [][]int

// Edge describes one undirected edge of the input graph.
// Weight must be non-negative.
type Edge struct {
	U, V   int
	Weight int64
}

// arc is one directed half of an undirected Edge, stored in the
// adjacency list.
type arc struct {
	to     int
	weight int64
}
