// Package dijkstra defines core types and configuration options
// for Dijkstra's shortest-path algorithm on weighted graphs.
//
// Options:
//
//	– MaxDistance:      optional cap on distances to explore; vertices beyond this stay unreachable.
//	– InfEdgeThreshold: edges with weight >= this threshold are treated as impassable.
//
// Errors (sentinel):
//
//	– ErrNilGraph        if the provided graph is nil.
//	– ErrNoPath          if the target vertex cannot be reached from the source.
//	– ErrBadMaxDistance  if MaxDistance < 0 (panic in WithMaxDistance).
//	– ErrBadInfThreshold if InfEdgeThreshold <= 0 (panic in WithInfEdgeThreshold).
//
// Unknown source or target vertices are reported with core.ErrUnknownVertex.
package dijkstra

import (
	"errors"
	"fmt"
	"math"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrNilGraph indicates that a nil graph was passed to Dijkstra.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrNoPath indicates that the target vertex is unreachable from the source.
	ErrNoPath = errors.New("dijkstra: no path exists")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative value,
	// which is not meaningful for a distance threshold.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")

	// ErrBadInfThreshold indicates that InfEdgeThreshold was set to zero or negative,
	// which would treat all edges (including zero-weight edges) as impassable.
	ErrBadInfThreshold = errors.New("dijkstra: InfEdgeThreshold must be positive")
)

// Options configures the behavior of the Dijkstra algorithm.
//
// MaxDistance      – optional cap on distances to explore (vertices beyond are not reached).
//
//	Must be ≥ 0. Default is +Inf (no cap).
//
// InfEdgeThreshold – treat edges with weight ≥ this threshold as impassable obstacles.
//
//	Must be > 0. Default is +Inf (no obstacles).
type Options struct {
	MaxDistance      float64 // Maximum distance to explore
	InfEdgeThreshold float64 // Weight threshold at and above which edges are non-traversable
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// WithMaxDistance sets a maximum distance threshold.
// Vertices whose shortest distance would exceed this value are not explored
// and are reported as unreachable.
// Panics on a negative or NaN value.
func WithMaxDistance(limit float64) Option {
	return func(o *Options) {
		if limit < 0 || math.IsNaN(limit) {
			panic(fmt.Sprintf("%s: got %g", ErrBadMaxDistance.Error(), limit))
		}
		o.MaxDistance = limit
	}
}

// WithInfEdgeThreshold defines a weight threshold above which edges are
// considered non-traversable (treated as infinite weight).
// Edges with weight ≥ threshold are skipped entirely.
// Panics on a zero, negative or NaN value.
func WithInfEdgeThreshold(threshold float64) Option {
	return func(o *Options) {
		if !(threshold > 0) {
			panic(fmt.Sprintf("%s: got %g", ErrBadInfThreshold.Error(), threshold))
		}
		o.InfEdgeThreshold = threshold
	}
}

// DefaultOptions returns an Options struct with no distance cap and no impassable edges.
func DefaultOptions() Options {
	return Options{
		MaxDistance:      math.Inf(1),
		InfEdgeThreshold: math.Inf(1),
	}
}
