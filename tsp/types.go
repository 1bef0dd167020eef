package tsp

import (
	"errors"
	"fmt"
	"math"
)

// Inf marks a missing edge in the distance matrix.
const Inf int64 = math.MaxInt64

// Sentinel errors returned by the tsp package.
var (
	// ErrEmptyMatrix indicates a nil or zero-length distance matrix.
	ErrEmptyMatrix = errors.New("tsp: distance matrix must be non-empty")

	// ErrNonSquare indicates a row whose length differs from the matrix order.
	ErrNonSquare = errors.New("tsp: distance matrix must be square")

	// ErrBadDiagonal indicates a nonzero self-distance dist[i][i].
	ErrBadDiagonal = errors.New("tsp: self-distance must be 0")

	// ErrNegativeWeight indicates a negative finite entry in the matrix.
	ErrNegativeWeight = errors.New("tsp: edge weight must be >= 0")

	// ErrNoTour indicates the graph admits no Hamiltonian cycle.
	ErrNoTour = errors.New("tsp: no closed tour exists")
)

// Result is an optimal closed tour. Tour has n+1 entries, starting and
// ending at vertex 0; Cost is its total weight.
type Result struct {
	Tour []int
	Cost int64
}

// validate checks that dist is a square matrix of non-negative weights
// (or Inf) with a zero diagonal, returning its order.
func validate(dist [][]int64) (int, error) {
	n := len(dist)
	if n == 0 {
		return 0, ErrEmptyMatrix
	}
	for i, row := range dist {
		if len(row) != n {
			return 0, fmt.Errorf("%w: row %d has length %d, want %d", ErrNonSquare, i, len(row), n)
		}
		if row[i] != 0 {
			return 0, fmt.Errorf("%w: dist[%d][%d]=%d", ErrBadDiagonal, i, i, row[i])
		}
		for j, w := range row {
			if w < 0 {
				return 0, fmt.Errorf("%w: dist[%d][%d]=%d", ErrNegativeWeight, i, j, w)
			}
		}
	}

	return n, nil
}
