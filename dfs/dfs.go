// Package dfs implements depth-first search (single-source and forest) and
// undirected cycle detection on a core.View.
//
// Key features:
//   - DFS(g, start, opts...): traverse from a root, or the full forest via WithFullTraversal.
//   - Hooks: OnVisit (pre-order) & OnExit (post-order) with error aborts.
//   - Cancellation via context.Context.
//   - FindCycle(g): one cycle as a closed edge sequence, or none. Self-loops and
//     parallel edges count as cycles.
//   - IsForest(g): no cycles at all; every minimum spanning tree or forest satisfies it.
//
// Complexity:
//
//   - Time:   O(V + E)
//   - Memory: O(V) for the recursion stack and state maps.
//
// Errors:
//
//   - ErrGraphNil               if g is nil.
//   - ErrStartVertexNotFound    if start is missing.
//   - context.Canceled          if ctx is done.
//   - any error returned by OnVisit or OnExit.
package dfs

import (
	"fmt"

	"github.com/katalvlaran/wgraph/core"
)

// walker encapsulates state during DFS.
type walker[V comparable, E core.Edge[V]] struct {
	graph core.View[V, E]
	opts  Options[V]
	state map[V]int
	res   *Result[V]
}

// DFS performs depth-first search on g from start. With WithFullTraversal it
// continues from every remaining unvisited vertex after start's component.
// Neighbors are explored in IncidentEdges order.
func DFS[V comparable, E core.Edge[V]](g core.View[V, E], start V, opts ...Option[V]) (*Result[V], error) {
	// 1. Validate input graph.
	if g == nil {
		return nil, ErrGraphNil
	}

	// 2. Apply options.
	o := DefaultOptions[V]()
	for _, fn := range opts {
		fn(&o)
	}

	// 3. Validate start.
	if !g.HasVertex(start) {
		return nil, fmt.Errorf("%w: %v", ErrStartVertexNotFound, start)
	}

	w := &walker[V, E]{
		graph: g,
		opts:  o,
		state: make(map[V]int),
		res: &Result[V]{
			Depth:  make(map[V]int),
			Parent: make(map[V]V),
		},
	}

	// 4. Traverse from start, then (optionally) every remaining root.
	if err := w.visit(start, 0); err != nil {
		return nil, err
	}
	if o.FullTraversal {
		for _, v := range g.Vertices() {
			if w.state[v] != White {
				continue
			}
			if err := w.visit(v, 0); err != nil {
				return nil, err
			}
		}
	}

	return w.res, nil
}

// visit explores v recursively at the given depth.
func (w *walker[V, E]) visit(v V, depth int) error {
	// 1. Respect cancellation.
	if err := w.opts.Ctx.Err(); err != nil {
		return err
	}

	// 2. Discover.
	w.state[v] = Gray
	w.res.Depth[v] = depth
	if w.opts.OnVisit != nil {
		if err := w.opts.OnVisit(v); err != nil {
			return fmt.Errorf("dfs: OnVisit(%v): %w", v, err)
		}
	}

	// 3. Descend into white neighbors.
	for _, e := range w.graph.IncidentEdges(v) {
		nbr := core.Other[V](e, v)
		if w.state[nbr] != White {
			continue
		}
		w.res.Parent[nbr] = v
		if err := w.visit(nbr, depth+1); err != nil {
			return err
		}
	}

	// 4. Finish.
	if w.opts.OnExit != nil {
		if err := w.opts.OnExit(v); err != nil {
			return fmt.Errorf("dfs: OnExit(%v): %w", v, err)
		}
	}
	w.state[v] = Black
	w.res.Order = append(w.res.Order, v)

	return nil
}
