// Package prim_kruskal provides an implementation of Kruskal's Minimum Spanning Tree algorithm.
// It consumes any core.View and produces the set of edges forming the MST (or spanning forest).
package prim_kruskal

import (
	"fmt"

	"github.com/katalvlaran/wgraph/core"
	"github.com/katalvlaran/wgraph/disjointset"
)

// Kruskal computes a Minimum Spanning Tree of an undirected, weighted graph.
// It walks g.SortedEdges() in ascending weight order and keeps each edge whose
// endpoints are still in different disjoint-set groups.
//
// Kruskal does not check connectivity: on a disconnected graph it returns a minimum
// spanning forest (one tree per component, isolated vertices contribute nothing).
// Use bfs.Connected beforehand when a full tree is required.
//
// Error Conditions:
//   - ErrInvalidGraph        : if g is nil.
//   - core.ErrUnknownVertex  : if an edge endpoint is not among g.Vertices().
//   - disjointset errors     : if g.Vertices() repeats a vertex (wrapped).
//
// Steps:
//  1. Seed a fresh disjoint set with one singleton per vertex. A new set per call
//     keeps concurrent MST queries on the same graph independent.
//  2. Loop over sorted edges: if find(u) != find(v), keep the edge and union(u, v).
//     Self-loops always have find(u) == find(v) and are skipped.
//  3. Stop once |V|-1 edges are kept.
//
// Complexity: O(E log E) for the sort (done once by the graph) + O(E·α(V)) here.
// Memory: O(V) for the disjoint set, O(V) for the result.
func Kruskal[V comparable, E core.Edge[V]](g core.View[V, E]) (*core.Set[E], error) {
	if g == nil {
		return nil, ErrInvalidGraph
	}

	// 1. One singleton per vertex.
	vertices := g.Vertices()
	forest := disjointset.New[V](disjointset.WithCapacity(max(1, len(vertices))))
	for _, v := range vertices {
		if err := forest.MakeSet(v); err != nil {
			return nil, fmt.Errorf("prim_kruskal: seeding forest: %w", err)
		}
	}

	// 2. Greedy pass over edges in ascending weight.
	mst := core.NewSet[E]()
	limit := len(vertices) - 1
	for _, e := range g.SortedEdges() {
		if mst.Len() >= limit {
			break // 3. the tree is complete
		}

		u, v := e.Vertex1(), e.Vertex2()
		rootU, err := forest.FindSet(u)
		if err != nil {
			return nil, fmt.Errorf("%w: edge %v endpoint %v", core.ErrUnknownVertex, e, u)
		}
		rootV, err := forest.FindSet(v)
		if err != nil {
			return nil, fmt.Errorf("%w: edge %v endpoint %v", core.ErrUnknownVertex, e, v)
		}
		if rootU == rootV {
			continue // would close a cycle
		}

		if err = forest.Union(u, v); err != nil {
			return nil, fmt.Errorf("prim_kruskal: union %v: %w", e, err)
		}
		mst.Add(e)
	}

	return mst, nil
}
