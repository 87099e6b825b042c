package dfs

import (
	"slices"

	"github.com/katalvlaran/wgraph/core"
)

// FindCycle returns the edges of one cycle of the undirected graph g, or
// (nil, false) when g is a forest. A nil graph is cycle-free.
//
// The returned edges form a closed walk: consecutive edges share an endpoint
// and the last edge returns to the first edge's starting vertex. A self-loop
// is a cycle of one edge; two parallel edges form a cycle of two.
//
// Steps:
//  1. Run DFS from every white vertex in Vertices() order.
//  2. Skip the tree edge that led into a vertex (by edge identity, so a
//     parallel copy of it is still seen).
//  3. The first edge reaching a Gray vertex closes a cycle; rebuild it by
//     walking the recorded tree edges back to that vertex.
func FindCycle[V comparable, E core.Edge[V]](g core.View[V, E]) ([]E, bool) {
	if g == nil {
		return nil, false
	}

	f := &cycleFinder[V, E]{
		graph:  g,
		state:  make(map[V]int),
		parent: make(map[V]E),
	}
	for _, v := range g.Vertices() {
		if f.state[v] != White {
			continue
		}
		if f.visit(v, nil) {
			return f.cycle, true
		}
	}

	return nil, false
}

// IsForest reports whether g has no cycles.
func IsForest[V comparable, E core.Edge[V]](g core.View[V, E]) bool {
	_, found := FindCycle(g)

	return !found
}

// cycleFinder holds DFS state for FindCycle.
type cycleFinder[V comparable, E core.Edge[V]] struct {
	graph  core.View[V, E]
	state  map[V]int
	parent map[V]E // tree edge used to enter each non-root vertex
	cycle  []E
}

// visit explores v, entered through *via (nil for a root). It reports true
// once a cycle has been recorded.
func (f *cycleFinder[V, E]) visit(v V, via *E) bool {
	f.state[v] = Gray
	for _, e := range f.graph.IncidentEdges(v) {
		if via != nil && e == *via {
			continue
		}
		nbr := core.Other[V](e, v)
		switch f.state[nbr] {
		case White:
			f.parent[nbr] = e
			if f.visit(nbr, &e) {
				return true
			}
		case Gray:
			f.cycle = f.rebuild(e, v, nbr)
			return true
		}
	}
	f.state[v] = Black

	return false
}

// rebuild returns the cycle closed by back edge e from v to its ancestor top.
func (f *cycleFinder[V, E]) rebuild(e E, v, top V) []E {
	// Tree edges from v up to top, then reversed so the walk starts at top.
	var path []E
	for cur := v; cur != top; {
		te := f.parent[cur]
		path = append(path, te)
		cur = core.Other[V](te, cur)
	}
	slices.Reverse(path)

	return append(path, e)
}
