// Package prim_kruskal provides two algorithms for computing the Minimum Spanning Tree (MST)
// of an undirected, weighted graph exposed as a core.View: Kruskal's algorithm and Prim's algorithm.
//
// What & Why
//
//   - What is an MST?
//     Given an undirected, connected, weighted graph G = (V, E), an MST is a subset T ⊆ E such that
//     T connects all vertices in V and the sum of weights of edges in T is minimized.
//     On a disconnected graph the analogous object is a minimum spanning forest.
//
//   - Why MST matters:
//
//   - Network Design: cost-efficient backbones, road or pipe layouts.
//
//   - Clustering: cutting the heaviest tree edges yields single-linkage clusters.
//
// Algorithms Provided
//
//   - Kruskal(g) (*core.Set[E], error)
//
//   - Strategy: iterate g.SortedEdges() from lightest to heaviest. A fresh disjointset.DisjointSet
//     tracks components; an edge is kept iff its endpoints are in different components. Stops once
//     |V|−1 edges have been kept.
//
//   - Complexity: O(E·α(V)) here, the O(E log E) sort is paid once when the graph is built.
//
//   - Disconnected input: returns a spanning forest, no error.
//
//   - Prim(g, root) (*core.Set[E], error)
//
//   - Strategy: grow a single tree from root with a min-heap of crossing edges.
//
//   - Complexity: O(E log E) time, O(V + E) space.
//
//   - Disconnected input: ErrDisconnected.
//
//   - Compute(g, MSTOptions) dispatches on MSTOptions.Method.
//
// Determinism
//
//   - Kruskal consumes the stable weight order of SortedEdges, so ties keep input order.
//   - Prim breaks weight ties by push order, and IncidentEdges is in input order.
//   - Result sets iterate in the order edges were selected.
//
// Error Conditions
//
//   - ErrInvalidGraph       : g is nil.
//   - core.ErrUnknownVertex : Prim root missing, or an edge endpoint outside g.Vertices().
//   - ErrDisconnected       : Prim could not reach every vertex.
//   - ErrUnknownMethod      : Compute with an unrecognised Method.
//
// Both algorithms allocate their working state per call, so concurrent runs on one
// immutable graph are safe.
package prim_kruskal
