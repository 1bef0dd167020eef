// Package euler_test verifies feasibility rules, trail validity, circuit
// detection, and input validation for the Eulerian path solver.
package euler_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mkravets/algokit/euler"
)

// assertTrail checks that path traverses each input edge exactly once.
func assertTrail(t *testing.T, edges []euler.Edge, path []int) {
	t.Helper()
	require.Len(t, path, len(edges)+1)

	remaining := make(map[euler.Edge]int, len(edges))
	for _, e := range edges {
		remaining[e]++
	}
	for i := 1; i < len(path); i++ {
		step := euler.Edge{U: path[i-1], V: path[i]}
		require.Greater(t, remaining[step], 0, "step %d→%d is not an unused edge", step.U, step.V)
		remaining[step]--
	}
}

func TestPath_Validation(t *testing.T) {
	_, err := euler.Path(0, nil)
	assert.ErrorIs(t, err, euler.ErrInvalidVertexCount)

	_, err = euler.Path(2, []euler.Edge{{U: 0, V: 5}})
	assert.ErrorIs(t, err, euler.ErrVertexOutOfRange)
}

func TestPath_MultigraphWithForcedStart(t *testing.T) {
	// Seven vertices with parallel edges and a self-loop; vertex 1 has
	// out = in + 1, so the trail must start there.
	edges := []euler.Edge{
		{U: 1, V: 2}, {U: 1, V: 3}, {U: 3, V: 1}, {U: 2, V: 2},
		{U: 2, V: 4}, {U: 2, V: 4}, {U: 4, V: 3}, {U: 3, V: 2},
		{U: 3, V: 5}, {U: 6, V: 3}, {U: 4, V: 6}, {U: 5, V: 6},
	}
	path, err := euler.Path(7, edges)
	require.NoError(t, err)
	require.NotNil(t, path)

	assert.Equal(t, []int{1, 3, 5, 6, 3, 2, 4, 3, 1, 2, 2, 4, 6}, path)
	assertTrail(t, edges, path)
	assert.NotEqual(t, path[0], path[len(path)-1], "open trail, not a circuit")
}

func TestPath_TriangleCircuit(t *testing.T) {
	edges := []euler.Edge{{U: 0, V: 1}, {U: 1, V: 2}, {U: 2, V: 0}}
	path, err := euler.Path(3, edges)
	require.NoError(t, err)
	require.NotNil(t, path)

	assertTrail(t, edges, path)
	assert.Equal(t, path[0], path[len(path)-1], "balanced degrees give a circuit")
}

func TestPath_OpenChain(t *testing.T) {
	// 2→0→1 with an untouched isolated vertex 3.
	edges := []euler.Edge{{U: 0, V: 1}, {U: 2, V: 0}}
	path, err := euler.Path(4, edges)
	require.NoError(t, err)
	assert.Equal(t, []int{2, 0, 1}, path)
}

func TestPath_InfeasibleDegrees(t *testing.T) {
	// Two vertices each overshooting out-degree by one: no Eulerian path.
	edges := []euler.Edge{{U: 0, V: 1}, {U: 2, V: 1}}
	path, err := euler.Path(3, edges)
	require.NoError(t, err)
	assert.Nil(t, path)
}

func TestPath_DisconnectedEdges(t *testing.T) {
	// Degrees balance as two separate open trails, but the edges do not
	// form one trail; the consumed-edge check rejects it.
	edges := []euler.Edge{{U: 0, V: 1}, {U: 2, V: 3}}
	path, err := euler.Path(4, edges)
	require.NoError(t, err)
	assert.Nil(t, path)
}

func TestPath_NoEdges(t *testing.T) {
	path, err := euler.Path(3, nil)
	require.NoError(t, err)
	assert.Equal(t, []int{0}, path)
}
