// Package floydwarshall defines core types and sentinel values for the
// all-pairs shortest-path solver.
package floydwarshall

import (
	"errors"
	"math"
)

// Inf marks an absent edge in the input matrix and an unreachable pair in
// the result.
const Inf int64 = math.MaxInt64

// NegInf marks a pair whose "shortest" path passes through a negative
// cycle, so no finite shortest distance exists.
const NegInf int64 = math.MinInt64

// Sentinel errors returned by the floydwarshall package.
var (
	// ErrEmptyMatrix indicates the input matrix has no rows.
	ErrEmptyMatrix = errors.New("floydwarshall: matrix must have at least one row")

	// ErrNonSquare indicates a row whose length differs from the vertex count.
	ErrNonSquare = errors.New("floydwarshall: matrix must be square")

	// ErrVertexOutOfRange indicates a queried vertex outside [0, V).
	ErrVertexOutOfRange = errors.New("floydwarshall: vertex outside [0, V)")

	// ErrNegativeCycle indicates a requested path runs through a negative
	// cycle, so no shortest path is defined for that pair.
	ErrNegativeCycle = errors.New("floydwarshall: path contains a negative cycle")
)
