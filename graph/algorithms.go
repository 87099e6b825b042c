// File: algorithms.go
// Role: Graph-level entry points to the MST, shortest-path and connectivity packages.
//
// Each call allocates its own working state, so concurrent queries on one Graph are safe.

package graph

import (
	"fmt"

	"github.com/katalvlaran/wgraph/bfs"
	"github.com/katalvlaran/wgraph/core"
	"github.com/katalvlaran/wgraph/dijkstra"
	"github.com/katalvlaran/wgraph/prim_kruskal"
)

// MinimumSpanningTree returns the edges of a minimum spanning tree, computed with
// Kruskal's algorithm. If several MSTs exist, any one of them is returned.
//
// The graph is expected to be connected. When it is not, the result is a minimum
// spanning forest and no error is reported; check IsConnected first if that matters.
//
// Complexity: O(E·α(V)) on top of the sort done by New.
func (g *Graph[V, E]) MinimumSpanningTree() *core.Set[E] {
	mst, err := prim_kruskal.Kruskal[V, E](g)
	if err != nil {
		// New guarantees every endpoint is a known, unique vertex.
		panic(fmt.Sprintf("graph: inconsistent graph state: %v", err))
	}

	return mst
}

// ShortestPathBetween returns the edges of a minimum-weight path from start to end,
// first edge touching start, last edge touching end.
//
// Returns an empty slice when start == end, without checking that start exists.
//
// Errors:
//   - core.ErrUnknownVertex if start or end is not in the graph.
//   - dijkstra.ErrNoPath if end is unreachable from start.
//
// Complexity: O((V + E) log V).
func (g *Graph[V, E]) ShortestPathBetween(start, end V, opts ...dijkstra.Option) ([]E, error) {
	return dijkstra.ShortestPath[V, E](g, start, end, opts...)
}

// Components returns the connected components, each listed in BFS order,
// components ordered by their first vertex in Vertices().
func (g *Graph[V, E]) Components() [][]V {
	return bfs.Components[V, E](g)
}

// IsConnected reports whether every vertex is reachable from every other.
// A graph with zero or one vertex is connected.
func (g *Graph[V, E]) IsConnected() bool {
	return bfs.Connected[V, E](g)
}
