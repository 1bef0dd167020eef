// Package dijkstra defines core types and configuration options for
// Dijkstra's single-source shortest-path algorithm on weighted graphs
// with non-negative edge weights.
package dijkstra

import (
	"errors"
	"math"
)

// Unreachable is the distance reported for vertices the source cannot
// reach. Distances are initialized to it and never updated for vertices
// outside the source's component.
const Unreachable int64 = math.MaxInt64

// Sentinel errors returned by the dijkstra package.
var (
	// ErrEmptyGraph indicates the adjacency list has no vertices.
	ErrEmptyGraph = errors.New("dijkstra: graph must have at least one vertex")

	// ErrSourceOutOfRange indicates the source vertex lies outside [0, V).
	ErrSourceOutOfRange = errors.New("dijkstra: source vertex outside [0, V)")

	// ErrVertexOutOfRange indicates an arc references a vertex outside [0, V).
	ErrVertexOutOfRange = errors.New("dijkstra: arc target outside [0, V)")

	// ErrNegativeWeight indicates a negative arc weight, which Dijkstra's
	// greedy finalization cannot tolerate.
	ErrNegativeWeight = errors.New("dijkstra: negative arc weight encountered")
)

// Arc is one outgoing edge of the adjacency list: a target vertex and a
// non-negative traversal cost. An undirected edge is represented by an Arc
// in each endpoint's list.
type Arc struct {
	To     int
	Weight int64
}

// Options configures a Solve run.
type Options struct {
	// ReturnPath, when true, makes Solve return the predecessor slice for
	// path reconstruction; otherwise it returns nil to save the allocation.
	ReturnPath bool
}

// Option is a functional option for Solve.
type Option func(*Options)

// WithReturnPath enables predecessor recording. prev[v] is the vertex
// preceding v on one shortest path from the source, or -1 for the source
// itself and for unreachable vertices.
func WithReturnPath() Option {
	return func(o *Options) {
		o.ReturnPath = true
	}
}

// DefaultOptions returns the default Solve configuration: no predecessor
// recording.
func DefaultOptions() Options {
	return Options{ReturnPath: false}
}
