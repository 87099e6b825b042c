// Package graph provides Graph, an immutable undirected weighted graph with
// Kruskal minimum spanning trees and Dijkstra shortest paths.
//
// Construction
//
//	g, err := graph.New(vertices, edges)          // slices
//	g, err := graph.NewFromSets(vertexSet, edgeSet) // core.Set, insertion order
//
// New sorts the edges by weight once, rejects negative weights (core.ErrInvalidWeight),
// repeated vertices (core.ErrDuplicateVertex) and edges whose endpoints were not
// supplied (core.ErrUnknownVertex). Self-loops, parallel edges and disconnected
// components are accepted.
//
// Queries
//
//	NumVertices() int
//	NumEdges() int
//	MinimumSpanningTree() *core.Set[E]             // Kruskal; forest if disconnected
//	ShortestPathBetween(start, end V) ([]E, error) // Dijkstra; ErrUnknownVertex / ErrNoPath
//	Components() [][]V, IsConnected() bool         // BFS
//
// Graph also implements core.View, so it can be passed straight to prim_kruskal.Prim,
// dijkstra.Distances or bfs.BFS.
//
// Concurrency
//
//	A Graph never changes after New. Queries allocate their own working state
//	(distance maps, heaps, a fresh disjoint set per MST), so any number of them may
//	run concurrently.
//
// Example:
//
//	type E = core.WeightedEdge[string]
//	g, _ := graph.New([]string{"A", "B", "C"}, []E{
//	    {From: "A", To: "B", Cost: 1},
//	    {From: "B", To: "C", Cost: 1},
//	    {From: "A", To: "C", Cost: 5},
//	})
//	path, _ := g.ShortestPathBetween("A", "C") // [A-B B-C]
package graph
