// File: graph.go
// Role: WeightedGraph construction and read-only queries.
//
// Determinism:
//   - Vertices() follows the input order; IncidentEdges() follows edge input order;
//     SortedEdges() is a stable sort by weight.
//
// Concurrency:
//   - Immutable after New; every query may run concurrently without locks.

package graph

import (
	"cmp"
	"fmt"
	"math"
	"slices"

	"github.com/katalvlaran/wgraph/core"
)

// Graph is an immutable undirected weighted graph over vertices V and edges E.
//
// It may contain self-loops, parallel edges and disconnected components.
// adjacency maps every vertex to the set of edges touching it; a self-loop is
// registered once. sortedEdges holds every supplied edge, ascending by weight.
type Graph[V comparable, E core.Edge[V]] struct {
	vertices    []V
	adjacency   map[V]*core.Set[E]
	sortedEdges []E
}

// New builds a Graph from explicit vertex and edge collections.
//
// Implementation:
//   - Stage 1: Stable-sort a copy of edges by ascending weight.
//   - Stage 2: Reject a negative minimum weight, or any NaN weight (ErrInvalidWeight).
//   - Stage 3: Create an empty edge set per vertex (ErrDuplicateVertex on repeats).
//   - Stage 4: Register each edge under both endpoints, once for a self-loop
//     (ErrUnknownVertex if an endpoint was not supplied).
//
// The caller's slices are not retained.
//
// Errors:
//   - core.ErrInvalidWeight, core.ErrDuplicateVertex, core.ErrUnknownVertex (wrapped with context).
//
// Complexity:
//   - Time O(V + E log E), Space O(V + E).
func New[V comparable, E core.Edge[V]](vertices []V, edges []E) (*Graph[V, E], error) {
	// Stage 1: ascending weight; stable so equal weights keep input order.
	sorted := slices.Clone(edges)
	slices.SortStableFunc(sorted, func(a, b E) int {
		return cmp.Compare(a.Weight(), b.Weight())
	})

	// Stage 2: the first edge carries the minimum weight. NaN compares as smallest
	// under cmp.Compare, so it lands first as well.
	if len(sorted) > 0 {
		if w := sorted[0].Weight(); w < 0 || math.IsNaN(w) {
			return nil, fmt.Errorf("%w: edge %v has weight %g", core.ErrInvalidWeight, sorted[0], w)
		}
	}

	// Stage 3: adjacency buckets.
	g := &Graph[V, E]{
		vertices:    make([]V, 0, len(vertices)),
		adjacency:   make(map[V]*core.Set[E], len(vertices)),
		sortedEdges: sorted,
	}
	for _, v := range vertices {
		if _, ok := g.adjacency[v]; ok {
			return nil, fmt.Errorf("%w: %v", core.ErrDuplicateVertex, v)
		}
		g.adjacency[v] = core.NewSet[E]()
		g.vertices = append(g.vertices, v)
	}

	// Stage 4: register edges; Set.Add ignores the second insert of a self-loop.
	for _, e := range edges {
		u, v := e.Vertex1(), e.Vertex2()
		adjU, okU := g.adjacency[u]
		adjV, okV := g.adjacency[v]
		if !okU || !okV {
			return nil, fmt.Errorf("%w: edge %v references a vertex outside the vertex collection", core.ErrUnknownVertex, e)
		}
		adjU.Add(e)
		adjV.Add(e)
	}

	return g, nil
}

// NewFromSets builds a Graph from vertex and edge sets.
// Both sets are read in insertion order, then New runs on the resulting slices.
// A nil set counts as empty.
func NewFromSets[V comparable, E core.Edge[V]](vertices *core.Set[V], edges *core.Set[E]) (*Graph[V, E], error) {
	return New(vertices.Items(), edges.Items())
}

// NumVertices returns the number of vertices. Complexity: O(1).
func (g *Graph[V, E]) NumVertices() int { return len(g.vertices) }

// NumEdges returns the number of supplied edges, counting repeats. Complexity: O(1).
func (g *Graph[V, E]) NumEdges() int { return len(g.sortedEdges) }

// HasVertex reports whether v is in the graph. Complexity: O(1).
func (g *Graph[V, E]) HasVertex(v V) bool {
	_, ok := g.adjacency[v]

	return ok
}

// Vertices returns a copy of the vertices in input order. Complexity: O(V).
func (g *Graph[V, E]) Vertices() []V { return slices.Clone(g.vertices) }

// IncidentEdges returns the edges touching v, or nil if v is unknown.
// Complexity: O(deg(v)).
func (g *Graph[V, E]) IncidentEdges(v V) []E {
	adj, ok := g.adjacency[v]
	if !ok {
		return nil
	}

	return adj.Items()
}

// SortedEdges returns a copy of all edges in ascending weight order. Complexity: O(E).
func (g *Graph[V, E]) SortedEdges() []E { return slices.Clone(g.sortedEdges) }
