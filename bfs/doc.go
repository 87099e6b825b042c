// Package bfs answers reachability questions on a core.View.
//
//   - BFS(g, start, opts...) returns visit order, hop depth and BFS-tree parents.
//   - Components(g) partitions the vertices into connected components.
//   - Connected(g) reports whether there is at most one component.
//
// Options: WithMaxDepth(d) limits the search to d hops; WithOnVisit(fn) is called for
// every visited vertex and aborts the search when it returns an error.
//
// Kruskal's MST assumes a connected graph and silently returns a spanning forest
// otherwise; Connected is the check callers run when they need a full tree.
//
// Complexity: O(V + E) time and space.
package bfs
