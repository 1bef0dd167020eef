package hamilton_test

import (
	"fmt"

	"github.com/mkravets/algokit/hamilton"
)

// ExampleSolver enumerates Hamiltonian paths in a 4-cycle.
func ExampleSolver() {
	// Square: 0-1-2-3-0.
	edges := []hamilton.Edge{
		{U: 0, V: 1}, {U: 1, V: 2}, {U: 2, V: 3}, {U: 3, V: 0},
	}
	s, err := hamilton.NewSolver(4, edges)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println("paths:", s.CountPaths())
	for _, p := range s.Paths() {
		if p.Vertices[0] == 0 {
			fmt.Println(p.Vertices, "cycle:", p.IsCycle)
		}
	}
	// Output:
	// paths: 8
	// [0 1 2 3] cycle: true
	// [0 3 2 1] cycle: true
}
