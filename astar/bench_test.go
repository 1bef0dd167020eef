package astar_test

import (
	"testing"

	"github.com/mkravets/algokit/astar"
)

// BenchmarkSolver_Grid measures a full solve over an N×N lattice where
// every cell holds a vertex and orthogonal neighbors are joined by
// unit-weight edges. The Manhattan heuristic is exact on such a lattice,
// so this is A*'s best case.
func BenchmarkSolver_Grid(b *testing.B) {
	const n = 64
	grid := make(astar.Grid, n)
	for i := range grid {
		grid[i] = make([]int, n)
		for j := range grid[i] {
			grid[i][j] = i*n + j
		}
	}
	edges := make([]astar.Edge, 0, 2*n*(n-1))
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if j+1 < n {
				edges = append(edges, astar.Edge{U: i*n + j, V: i*n + j + 1, Weight: 1})
			}
			if i+1 < n {
				edges = append(edges, astar.Edge{U: i*n + j, V: (i+1)*n + j, Weight: 1})
			}
		}
	}

	solver, err := astar.NewSolver(grid, edges, 0, n*n-1, n*n)
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if !solver.Solve() {
			b.Fatal("destination should be reachable")
		}
	}
}

// BenchmarkNewSolver_HeuristicInit measures construction cost, dominated
// by the one-time grid scan that caches the heuristic table.
func BenchmarkNewSolver_HeuristicInit(b *testing.B) {
	const n = 128
	grid := make(astar.Grid, n)
	for i := range grid {
		grid[i] = make([]int, n)
		for j := range grid[i] {
			grid[i][j] = i*n + j
		}
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := astar.NewSolver(grid, nil, 0, n*n-1, n*n); err != nil {
			b.Fatal(err)
		}
	}
}
