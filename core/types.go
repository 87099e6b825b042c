// Package core defines the contracts shared by every wgraph package: the Edge
// capability required from edge types, a ready-made WeightedEdge, the read-only
// View consumed by the algorithms, and the sentinel errors for graph validation.
//
// Errors:
//
//	ErrUnknownVertex    - an edge or a query references a vertex that is not in the graph.
//	ErrInvalidWeight    - an edge weight is negative or NaN.
//	ErrDuplicateVertex  - the same vertex was supplied twice at construction.
package core

import (
	"errors"
	"fmt"
)

// Sentinel errors for graph validation and queries.
var (
	// ErrUnknownVertex indicates an operation referenced a vertex absent from the graph.
	ErrUnknownVertex = errors.New("core: unknown vertex")

	// ErrInvalidWeight indicates a negative (or NaN) edge weight.
	ErrInvalidWeight = errors.New("core: invalid edge weight")

	// ErrDuplicateVertex indicates the vertex collection contained the same vertex twice.
	ErrDuplicateVertex = errors.New("core: duplicate vertex")
)

// Edge is the capability an edge type must provide.
//
// Endpoints are order-independent: an undirected edge A–B may report A as Vertex1
// and B as Vertex2 or the other way round. A self-loop reports the same vertex twice.
// Weight must be non-negative for the graph to accept the edge.
//
// Edges are compared with == for set membership, so two edges that must coexist
// between the same endpoints with the same weight need a distinguishing field
// (see WeightedEdge.ID).
type Edge[V comparable] interface {
	comparable

	// Vertex1 returns the first endpoint.
	Vertex1() V

	// Vertex2 returns the second endpoint.
	Vertex2() V

	// Weight returns the non-negative cost of traversing the edge.
	Weight() float64
}

// WeightedEdge is the default Edge implementation.
//
// ID is optional; set it when parallel edges of equal weight must stay distinct.
type WeightedEdge[V comparable] struct {
	// ID distinguishes otherwise identical parallel edges.
	ID string

	// From is one endpoint.
	From V

	// To is the other endpoint.
	To V

	// Cost is the edge weight.
	Cost float64
}

// Vertex1 returns e.From.
func (e WeightedEdge[V]) Vertex1() V { return e.From }

// Vertex2 returns e.To.
func (e WeightedEdge[V]) Vertex2() V { return e.To }

// Weight returns e.Cost.
func (e WeightedEdge[V]) Weight() float64 { return e.Cost }

// String renders the edge as "From-To(Cost)".
func (e WeightedEdge[V]) String() string {
	return fmt.Sprintf("%v-%v(%g)", e.From, e.To, e.Cost)
}

// View is the read-only graph surface consumed by the algorithm packages
// (prim_kruskal, dijkstra, bfs, dfs). graph.Graph implements it.
//
// Implementations must keep every edge returned by SortedEdges and IncidentEdges
// between vertices reported by HasVertex, and must not mutate while an algorithm runs.
type View[V comparable, E Edge[V]] interface {
	// Vertices returns every vertex in a deterministic order.
	Vertices() []V

	// HasVertex reports whether v belongs to the graph.
	HasVertex(v V) bool

	// IncidentEdges returns the edges touching v (a self-loop appears once).
	// It returns nil for an unknown vertex.
	IncidentEdges(v V) []E

	// SortedEdges returns every edge in ascending weight order.
	SortedEdges() []E
}

// Other returns the endpoint of e opposite to v; for a self-loop that is v itself.
// v must be an endpoint of e.
func Other[V comparable, E Edge[V]](e E, v V) V {
	if e.Vertex1() == v {
		return e.Vertex2()
	}

	return e.Vertex1()
}

// TotalWeight sums the weights of edges.
// Complexity: O(len(edges)).
func TotalWeight[V comparable, E Edge[V]](edges []E) float64 {
	var total float64
	for _, e := range edges {
		total += e.Weight()
	}

	return total
}
