// Package prim_kruskal defines configuration options and sentinel errors for MST computation.
// It supports selecting between Kruskal and Prim algorithms via MSTOptions.
package prim_kruskal

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/wgraph/core"
)

// ErrInvalidGraph indicates that a nil graph was passed to an MST algorithm.
var ErrInvalidGraph = errors.New("prim_kruskal: graph is nil")

// ErrDisconnected indicates that Prim could not reach every vertex from its root,
// so no spanning tree exists. Kruskal never returns it; it yields a forest instead.
var ErrDisconnected = errors.New("prim_kruskal: graph is disconnected")

// ErrUnknownMethod indicates MSTOptions.Method is neither MethodKruskal nor MethodPrim.
var ErrUnknownMethod = errors.New("prim_kruskal: unknown MST method")

// MethodPrim selects Prim's algorithm (grow from a root using a min-heap).
const MethodPrim = "prim"

// MethodKruskal selects Kruskal's algorithm (sorted edges and union-find).
const MethodKruskal = "kruskal"

// MSTOptions configures which MST algorithm to run, and for Prim, which starting vertex to use.
// Use DefaultOptions() to get a default setup (Kruskal).
//
// Fields:
//
//	Method string: one of MethodPrim or MethodKruskal.
//	Root   V     : start vertex for Prim; ignored when Method == MethodKruskal.
type MSTOptions[V comparable] struct {
	// Method to use: MethodPrim or MethodKruskal.
	Method string

	// Root is the starting vertex for Prim's algorithm. Unused by Kruskal.
	Root V
}

// DefaultOptions returns MSTOptions initialized for Kruskal.
func DefaultOptions[V comparable]() MSTOptions[V] {
	return MSTOptions[V]{Method: MethodKruskal}
}

// Compute selects and runs the MST algorithm based on opts.Method.
//
//	– MethodKruskal: Kruskal(g); a disconnected graph yields a spanning forest.
//	– MethodPrim:    Prim(g, opts.Root); a disconnected graph yields ErrDisconnected.
//	– otherwise:     ErrUnknownMethod.
func Compute[V comparable, E core.Edge[V]](g core.View[V, E], opts MSTOptions[V]) (*core.Set[E], error) {
	switch opts.Method {
	case MethodKruskal:
		return Kruskal(g)
	case MethodPrim:
		return Prim(g, opts.Root)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownMethod, opts.Method)
	}
}
