// Package wgraph is a small toolkit for weighted undirected graphs: build one,
// then ask for its minimum spanning tree or a shortest path.
//
// What is wgraph?
//
//	An immutable, generic graph plus the classic algorithms around it:
//		• Core contracts: Edge constraint, WeightedEdge, ordered Set, read-only View
//		• Union-find: a generic disjoint-set forest with path compression
//		• Minimum spanning trees: Kruskal (default) and Prim
//		• Shortest paths: Dijkstra, point-to-point or single-source distances
//		• Traversals: BFS (components, connectivity), DFS (cycles, forest check)
//		• Fixtures: deterministic topology builders with seeded weights
//
// Layout:
//
//	core/          – Edge, WeightedEdge, Set, View and shared errors
//	disjointset/   – DisjointSet[T]: MakeSet, Find, Union
//	graph/         – Graph[V, E]: validated construction and query methods
//	prim_kruskal/  – Kruskal, Prim and the Compute dispatcher
//	dijkstra/      – ShortestPath and Distances
//	bfs/, dfs/     – traversals used for connectivity and acyclicity checks
//	builder/       – Path, Cycle, Star, Complete, Grid and RandomSparse fixtures
//	cmd/wgraph/    – CLI over YAML/JSON graph documents
//
// Quick ASCII example:
//
//	    A──1──B
//	    │    ╱│
//	    4  2  5
//	    │╱    │
//	    C──1──D
//
// has the minimum spanning tree {A-B, C-D, B-C} with total weight 4, and the
// shortest path A→D runs A-B-C-D with length 4.
//
//	go get github.com/katalvlaran/wgraph
package wgraph
