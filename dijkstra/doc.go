// Package dijkstra provides Dijkstra's shortest-path algorithm over any core.View
// with non-negative edge weights.
//
// Overview:
//
//   - ShortestPath(g, start, end) returns the ordered edges of a minimum-weight path.
//   - Distances(g, source) returns every distance from source plus Result.PathTo(v)
//     for rebuilding individual paths.
//   - A min-heap (priority queue) always expands the next-closest vertex; duplicate
//     heap entries for the same vertex are tolerated and skipped when stale.
//
// Key features:
//
//   - Functional options allow fine-tuning behavior without changing the API signature.
//   - MaxDistance: vertices farther than the cap are treated as unreachable.
//   - InfEdgeThreshold: treats any edge with weight ≥ threshold as impassable (infinite cost).
//   - Self-loops never improve a distance and never appear in a path.
//   - Parallel edges: the lightest one wins; among equal weights, the first relaxed wins.
//
// Performance and complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E)
//
// Error handling (sentinel errors):
//
//   - ErrNilGraph:
//     Returned if you pass a nil graph.
//   - core.ErrUnknownVertex:
//     Returned if start, end or source is not in the graph. ShortestPath with
//     start == end returns an empty path before this check.
//   - ErrNoPath:
//     Returned if end is unreachable from start.
//   - ErrBadMaxDistance / ErrBadInfThreshold:
//     Raised (via panic) by the option constructors on invalid literals.
//
// Example usage:
//
//	path, err := dijkstra.ShortestPath[string, core.WeightedEdge[string]](g, "A", "C")
//	if errors.Is(err, dijkstra.ErrNoPath) {
//	    // C is not reachable from A
//	}
//
// graph.Graph exposes the same search as ShortestPathBetween.
package dijkstra
