// Package astar_test provides runnable examples mirroring the reference
// demonstration driver: build a grid and edge list, solve, print the
// distance and the reconstructed path.
package astar_test

import (
	"fmt"

	"github.com/mkravets/algokit/astar"
)

// ExampleSolver demonstrates the full caller contract on a small map:
// solve first (via ShortestDistance), check the result, then reconstruct.
func ExampleSolver() {
	// 1) Three vertices on one grid row; the heuristic is their horizontal
	//    distance to vertex 2's cell.
	grid := astar.Grid{
		{0, astar.NoVertex, 1, astar.NoVertex, 2},
	}
	// 2) Chain 0—1 (5) and 1—2 (3).
	edges := []astar.Edge{
		{U: 0, V: 1, Weight: 5},
		{U: 1, V: 2, Weight: 3},
	}

	// 3) Construct; all validation happens here.
	solver, err := astar.NewSolver(grid, edges, 0, 2, 3)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	// 4) ShortestDistance solves lazily on first use.
	dist := solver.ShortestDistance()
	if dist == astar.DistNotFound {
		fmt.Println("destination cannot be reached")
		return
	}

	// 5) Reconstruction is only meaningful after a successful solve.
	path, err := solver.ReconstructPath()
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("0 -> 2 = %d via %v\n", dist, path)
	// Output: 0 -> 2 = 8 via [0 1 2]
}

// ExampleSolver_unreachable shows the normal negative outcome: Solve
// returns false and the distance stays at the sentinel.
func ExampleSolver_unreachable() {
	grid := astar.Grid{
		{0, astar.NoVertex, 1, astar.NoVertex, 2},
	}
	// Vertex 2 has no incident edges.
	edges := []astar.Edge{{U: 0, V: 1, Weight: 5}}

	solver, err := astar.NewSolver(grid, edges, 0, 2, 3)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	if !solver.Solve() {
		fmt.Println("destination cannot be found")
	}
	fmt.Println("distance:", solver.ShortestDistance())
	// Output:
	// destination cannot be found
	// distance: -1
}
