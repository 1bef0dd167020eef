package euler_test

import (
	"fmt"

	"github.com/mkravets/algokit/euler"
)

// ExamplePath walks every directed edge of a triangle exactly once.
func ExamplePath() {
	edges := []euler.Edge{
		{U: 0, V: 1},
		{U: 1, V: 2},
		{U: 2, V: 0},
	}

	path, err := euler.Path(3, edges)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	if path == nil {
		fmt.Println("Eulerian path does not exist")
		return
	}

	fmt.Println("trail:", path)
	if path[0] == path[len(path)-1] {
		fmt.Println("the trail is also a circuit")
	}
	// Output:
	// trail: [2 0 1 2]
	// the trail is also a circuit
}
