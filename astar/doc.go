// Package astar provides a reference implementation of the A* shortest-path
// algorithm over a weighted undirected graph with grid-anchored heuristics.
//
// Overview:
//
//   - A* combines Dijkstra's exactness with Best-First Search's guidance:
//     the frontier is ordered by f(n) = g(n) + h(n), where g(n) is the exact
//     accumulated cost from the source and h(n) is a cached admissible
//     estimate of the remaining cost to the destination.
//   - The heuristic here is the Manhattan distance between a vertex's grid
//     cell and the destination's grid cell, precomputed once at
//     construction for every vertex present in the grid.
//   - With non-negative weights and an admissible heuristic, the first pop
//     of the destination yields its true shortest distance.
//
// Construction and lifecycle:
//
//	solver, err := astar.NewSolver(grid, edges, source, destination, numVertices)
//	if err != nil { ... }                  // fatal: invalid configuration
//	dist := solver.ShortestDistance()      // solves on first use
//	if dist == astar.DistNotFound { ... }  // normal negative outcome, not an error
//	path, err := solver.ReconstructPath()  // source → destination, inclusive
//
// Error handling (sentinel errors):
//
//   - ErrInvalidVertexCount:   numVertices ≤ 0 at construction.
//   - ErrVertexOutOfRange:     an edge endpoint, source, or destination outside [0, V).
//   - ErrNegativeWeight:       a negative edge weight (breaks f-score admissibility).
//   - ErrDestinationNotInGrid: the destination id never appears in the grid.
//   - ErrPathNotSolved:        ReconstructPath called before a successful solve.
//
// An unreachable destination is NOT an error: Solve returns false and
// ShortestDistance reports DistNotFound; callers must check.
//
// Key implementation properties:
//
//   - Lazy-deletion frontier: improved vertices are re-pushed rather than
//     decrease-keyed; stale entries are discarded on pop via the closed set.
//   - Heuristic lookups during the search hit the cached table only; the
//     grid is scanned exactly once, at construction.
//   - Per-solve state (dist, closed, parent) is allocated fresh on every
//     Solve call and discarded afterward; only the finalized distance and
//     the parent chain of the latest solve persist for reconstruction.
//
// Concurrency:
//
//   - A Solver is single-threaded and synchronous; Solve runs to success or
//     exhaustion with no suspension points. Share a Solver across
//     goroutines only with external synchronization.
package astar
