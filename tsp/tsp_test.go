package tsp_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mkravets/algokit/tsp"
)

// fourCities is the textbook symmetric 4-vertex instance; its optimal
// closed tours cost 80.
func fourCities() [][]int64 {
	return [][]int64{
		{0, 10, 15, 20},
		{10, 0, 35, 25},
		{15, 35, 0, 30},
		{20, 25, 30, 0},
	}
}

func TestSolve_Validation(t *testing.T) {
	_, err := tsp.Solve(nil)
	assert.ErrorIs(t, err, tsp.ErrEmptyMatrix)

	_, err = tsp.Solve([][]int64{{0, 1}, {1}})
	assert.ErrorIs(t, err, tsp.ErrNonSquare)

	_, err = tsp.Solve([][]int64{{0, 1}, {1, 5}})
	assert.ErrorIs(t, err, tsp.ErrBadDiagonal)

	_, err = tsp.Solve([][]int64{{0, -1}, {1, 0}})
	assert.ErrorIs(t, err, tsp.ErrNegativeWeight)
}

func TestSolve_FourCities(t *testing.T) {
	res, err := tsp.Solve(fourCities())
	require.NoError(t, err)

	assert.Equal(t, int64(80), res.Cost)
	assert.Equal(t, []int{0, 2, 3, 1, 0}, res.Tour)
}

func TestSolve_TourCostConsistent(t *testing.T) {
	dist := fourCities()
	res, err := tsp.Solve(dist)
	require.NoError(t, err)

	require.Len(t, res.Tour, len(dist)+1)
	assert.Equal(t, 0, res.Tour[0])
	assert.Equal(t, 0, res.Tour[len(res.Tour)-1])

	visited := map[int]bool{}
	var total int64
	for i := 1; i < len(res.Tour); i++ {
		u, v := res.Tour[i-1], res.Tour[i]
		require.NotEqual(t, tsp.Inf, dist[u][v])
		total += dist[u][v]
		if i < len(res.Tour)-1 {
			assert.False(t, visited[v], "vertex %d visited twice", v)
			visited[v] = true
		}
	}
	assert.Equal(t, res.Cost, total)
}

func TestSolve_DirectedCycle(t *testing.T) {
	// Only the arcs 0→1→2→0 exist, so that triangle is the single tour.
	dist := [][]int64{
		{0, 1, tsp.Inf},
		{tsp.Inf, 0, 1},
		{1, tsp.Inf, 0},
	}
	res, err := tsp.Solve(dist)
	require.NoError(t, err)

	assert.Equal(t, int64(3), res.Cost)
	assert.Equal(t, []int{0, 1, 2, 0}, res.Tour)
}

func TestSolve_NoTour(t *testing.T) {
	// Vertex 2 has no incident edges, so no closed tour can exist.
	dist := [][]int64{
		{0, 1, tsp.Inf},
		{1, 0, tsp.Inf},
		{tsp.Inf, tsp.Inf, 0},
	}
	_, err := tsp.Solve(dist)
	assert.ErrorIs(t, err, tsp.ErrNoTour)

	_, err = tsp.MinCost(dist)
	assert.ErrorIs(t, err, tsp.ErrNoTour)
}

func TestSolve_SingleVertex(t *testing.T) {
	res, err := tsp.Solve([][]int64{{0}})
	require.NoError(t, err)
	assert.Equal(t, int64(0), res.Cost)
	assert.Equal(t, []int{0, 0}, res.Tour)

	cost, err := tsp.MinCost([][]int64{{0}})
	require.NoError(t, err)
	assert.Equal(t, int64(0), cost)
}

func TestMinCost_AgreesWithSolve(t *testing.T) {
	cases := [][][]int64{
		fourCities(),
		{
			{0, 2, 9, 10},
			{1, 0, 6, 4},
			{15, 7, 0, 8},
			{6, 3, 12, 0},
		},
		{
			{0, 1, tsp.Inf},
			{tsp.Inf, 0, 1},
			{1, tsp.Inf, 0},
		},
	}
	for _, dist := range cases {
		res, err := tsp.Solve(dist)
		require.NoError(t, err)

		cost, err := tsp.MinCost(dist)
		require.NoError(t, err)
		assert.Equal(t, res.Cost, cost)
	}
}
