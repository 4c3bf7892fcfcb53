package match

import "errors"

// Sentinel errors for match package operations.
var (
	// ErrNilGraph is returned when MaximumMatching is called with a nil Graph.
	ErrNilGraph = errors.New("match: graph is nil")

	// ErrDirectedGraph is returned when the supplied graph reports itself directed.
	ErrDirectedGraph = errors.New("match: directed graphs are not supported")

	// ErrWeightedGraph is returned when the supplied graph reports itself weighted.
	ErrWeightedGraph = errors.New("match: weighted matching is not supported")
)
