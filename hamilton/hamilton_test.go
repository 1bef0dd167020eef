package hamilton_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mkravets/algokit/hamilton"
)

// completeGraph returns the edge list of K_n.
func completeGraph(n int) []hamilton.Edge {
	var edges []hamilton.Edge
	for u := 0; u < n; u++ {
		for v := u + 1; v < n; v++ {
			edges = append(edges, hamilton.Edge{U: u, V: v})
		}
	}
	return edges
}

func TestNewSolver_Validation(t *testing.T) {
	_, err := hamilton.NewSolver(0, nil)
	assert.ErrorIs(t, err, hamilton.ErrInvalidVertexCount)

	_, err = hamilton.NewSolver(hamilton.MaxVertices+1, nil)
	assert.ErrorIs(t, err, hamilton.ErrTooManyVertices)

	_, err = hamilton.NewSolver(3, []hamilton.Edge{{U: 0, V: 3}})
	assert.ErrorIs(t, err, hamilton.ErrVertexOutOfRange)

	_, err = hamilton.NewSolver(3, []hamilton.Edge{{U: -1, V: 2}})
	assert.ErrorIs(t, err, hamilton.ErrVertexOutOfRange)
}

func TestPaths_CompleteGraph(t *testing.T) {
	// Every permutation of K4's vertices is a Hamiltonian path, and the
	// closing edge always exists, so all 4! = 24 paths are cycles.
	s, err := hamilton.NewSolver(4, completeGraph(4))
	require.NoError(t, err)

	paths := s.Paths()
	require.Len(t, paths, 24)
	for _, p := range paths {
		assert.Len(t, p.Vertices, 4)
		assert.True(t, p.IsCycle)
	}
	assert.Equal(t, 24, s.CountPaths())
}

func TestPaths_Triangle(t *testing.T) {
	s, err := hamilton.NewSolver(3, completeGraph(3))
	require.NoError(t, err)

	paths := s.Paths()
	require.Len(t, paths, 6)
	for _, p := range paths {
		assert.True(t, p.IsCycle)
	}
	assert.Equal(t, 6, s.CountPaths())
}

func TestPaths_Line(t *testing.T) {
	// A path graph 0-1-2-3-4 has exactly two Hamiltonian paths: the
	// line itself and its reversal. Neither closes into a cycle.
	edges := []hamilton.Edge{{U: 0, V: 1}, {U: 1, V: 2}, {U: 2, V: 3}, {U: 3, V: 4}}
	s, err := hamilton.NewSolver(5, edges)
	require.NoError(t, err)

	paths := s.Paths()
	require.Len(t, paths, 2)

	seen := map[int]bool{}
	for _, p := range paths {
		assert.False(t, p.IsCycle)
		seen[p.Vertices[0]] = true
	}
	assert.Equal(t, map[int]bool{0: true, 4: true}, seen)
	assert.Equal(t, 2, s.CountPaths())
}

func TestPaths_Disconnected(t *testing.T) {
	s, err := hamilton.NewSolver(4, []hamilton.Edge{{U: 0, V: 1}, {U: 2, V: 3}})
	require.NoError(t, err)

	assert.Empty(t, s.Paths())
	assert.Equal(t, 0, s.CountPaths())
}

func TestPaths_SingleVertex(t *testing.T) {
	s, err := hamilton.NewSolver(1, nil)
	require.NoError(t, err)

	paths := s.Paths()
	require.Len(t, paths, 1)
	assert.Equal(t, []int{0}, paths[0].Vertices)
	assert.False(t, paths[0].IsCycle)
	assert.Equal(t, 1, s.CountPaths())
}

func TestPaths_EveryPathIsValid(t *testing.T) {
	// Petersen-ish check on a cube graph Q3: each reported path must
	// walk real edges and visit each vertex exactly once, and the
	// enumeration count must agree with the DP count.
	edges := []hamilton.Edge{
		{U: 0, V: 1}, {U: 1, V: 2}, {U: 2, V: 3}, {U: 3, V: 0},
		{U: 4, V: 5}, {U: 5, V: 6}, {U: 6, V: 7}, {U: 7, V: 4},
		{U: 0, V: 4}, {U: 1, V: 5}, {U: 2, V: 6}, {U: 3, V: 7},
	}
	s, err := hamilton.NewSolver(8, edges)
	require.NoError(t, err)

	adjacent := map[[2]int]bool{}
	for _, e := range edges {
		adjacent[[2]int{e.U, e.V}] = true
		adjacent[[2]int{e.V, e.U}] = true
	}

	paths := s.Paths()
	require.NotEmpty(t, paths)
	for _, p := range paths {
		require.Len(t, p.Vertices, 8)
		visited := map[int]bool{p.Vertices[0]: true}
		for i := 1; i < len(p.Vertices); i++ {
			assert.True(t, adjacent[[2]int{p.Vertices[i-1], p.Vertices[i]}])
			assert.False(t, visited[p.Vertices[i]])
			visited[p.Vertices[i]] = true
		}
		first, last := p.Vertices[0], p.Vertices[7]
		assert.Equal(t, adjacent[[2]int{last, first}], p.IsCycle)
	}
	assert.Equal(t, len(paths), s.CountPaths())
}
