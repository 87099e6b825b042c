// Package dfs provides depth-first traversal and cycle detection for
// undirected graphs exposed as a core.View.
//
// What & Why
//
//	DFS explores as deep as possible before backtracking. Its three-color
//	marking (White, Gray, Black) detects back edges, which in an undirected
//	graph are exactly the edges that close a cycle. A minimum spanning tree
//	or forest has none, so IsForest is the structural check run on every MST.
//
// API
//
//	DFS(g, start, opts...) (*Result[V], error)
//	FindCycle(g) ([]E, bool)
//	IsForest(g) bool
//
// Determinism
//
//	Roots follow Vertices() order and neighbors follow IncidentEdges order,
//	so results are reproducible for a given graph.
package dfs
