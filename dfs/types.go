// Package dfs defines types and options for depth-first search traversal,
// including cancellation, pre-/post-order hooks and full-graph (forest) traversal.
package dfs

import (
	"context"
	"errors"
)

// VertexState represents the DFS visitation state of a vertex.
const (
	White = iota // White: the vertex has not been visited yet.
	Gray         // Gray: the vertex is on the recursion stack.
	Black        // Black: the vertex and all its descendants have been fully explored.
)

var (
	// ErrGraphNil is returned when a nil graph is passed to DFS.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrStartVertexNotFound indicates that the start vertex does not exist in the graph.
	ErrStartVertexNotFound = errors.New("dfs: start vertex not found")
)

// Option configures optional behavior of DFS traversal.
type Option[V comparable] func(*Options[V])

// Options holds configurable parameters for DFS traversal.
type Options[V comparable] struct {
	// Ctx allows cancellation; defaults to context.Background().
	Ctx context.Context

	// OnVisit, if non-nil, is invoked when a vertex is discovered (pre-order).
	// Returning an error aborts traversal with that error.
	OnVisit func(v V) error

	// OnExit, if non-nil, is invoked after all descendants of a vertex have been
	// explored (post-order). Returning an error aborts traversal.
	OnExit func(v V) error

	// FullTraversal, if true, restarts from every unvisited vertex in
	// Vertices() order, covering disconnected components.
	FullTraversal bool
}

// DefaultOptions returns Options with a background context, no hooks and
// single-source traversal.
func DefaultOptions[V comparable]() Options[V] {
	return Options[V]{Ctx: context.Background()}
}

// WithContext sets the context checked before each vertex is entered.
// A nil context has no effect.
func WithContext[V comparable](ctx context.Context) Option[V] {
	return func(o *Options[V]) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit installs fn as the pre-order hook.
func WithOnVisit[V comparable](fn func(v V) error) Option[V] {
	return func(o *Options[V]) { o.OnVisit = fn }
}

// WithOnExit installs fn as the post-order hook.
func WithOnExit[V comparable](fn func(v V) error) Option[V] {
	return func(o *Options[V]) { o.OnExit = fn }
}

// WithFullTraversal makes DFS cover every component, not just the start's.
func WithFullTraversal[V comparable]() Option[V] {
	return func(o *Options[V]) { o.FullTraversal = true }
}

// Result collects the outcome of a traversal.
//   - Order:  vertices in post-order (finish order).
//   - Depth:  tree depth of each visited vertex (roots at 0).
//   - Parent: DFS-tree predecessor; roots have no entry.
type Result[V comparable] struct {
	Order  []V
	Depth  map[V]int
	Parent map[V]V
}
