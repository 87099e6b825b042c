// Package core holds the small set of contracts that the rest of wgraph is written against.
//
// What lives here:
//
//   - Edge[V]          – the capability constraint an edge type must satisfy:
//     Vertex1(), Vertex2(), Weight() and comparability.
//   - WeightedEdge[V]  – a ready-made Edge with ID, From, To and Cost fields.
//   - Set[T]           – an insertion-ordered, duplicate-free set; used for adjacency,
//     MST results and set-based graph construction.
//   - View[V, E]       – the read-only surface (Vertices, HasVertex, IncidentEdges,
//     SortedEdges) consumed by prim_kruskal, dijkstra, bfs and dfs.
//   - Other, TotalWeight – helpers shared by the algorithms.
//
// Edges are undirected: endpoint order carries no meaning, and a self-loop reports
// the same vertex from both Vertex1 and Vertex2.
//
// Example:
//
//	e := core.WeightedEdge[string]{From: "A", To: "B", Cost: 2.5}
//	fmt.Println(core.Other[string](e, "A")) // B
//
// Errors:
//
//	ErrUnknownVertex, ErrInvalidWeight, ErrDuplicateVertex (see types.go).
package core
