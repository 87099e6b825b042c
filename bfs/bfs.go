// Package bfs provides breadth-first search over a core.View,
// returning hop distances, parent links, visit order and connected components.
//
// Edge weights are ignored: BFS counts edges, not cost.
package bfs

import (
	"fmt"

	"github.com/katalvlaran/wgraph/core"
)

// queueItem pairs a vertex with its BFS depth.
type queueItem[V comparable] struct {
	id    V
	depth int
}

// walker encapsulates mutable BFS state.
type walker[V comparable, E core.Edge[V]] struct {
	graph   core.View[V, E]
	opts    Options[V]
	queue   []queueItem[V]
	visited map[V]bool
	res     *Result[V]
}

// BFS runs breadth-first search on g starting from start,
// applying any number of functional Options.
// Returns ErrGraphNil or core.ErrUnknownVertex for invalid input,
// ErrOptionViolation for bad options, or any OnVisit hook error.
func BFS[V comparable, E core.Edge[V]](g core.View[V, E], start V, opts ...Option[V]) (*Result[V], error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions[V]()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !g.HasVertex(start) {
		return nil, fmt.Errorf("%w: start %v", core.ErrUnknownVertex, start)
	}

	w := newWalker(g, o, start)

	return w.res, w.loop()
}

// Components partitions the vertices of g into connected components.
// Components are ordered by their first vertex in g.Vertices(); each lists its
// vertices in BFS order from that first vertex. Returns nil for a nil or empty graph.
//
// Complexity: O(V + E).
func Components[V comparable, E core.Edge[V]](g core.View[V, E]) [][]V {
	if g == nil {
		return nil
	}

	var comps [][]V
	seen := make(map[V]bool)
	for _, v := range g.Vertices() {
		if seen[v] {
			continue
		}
		w := newWalker(g, DefaultOptions[V](), v)
		_ = w.loop() // the default OnVisit never fails
		for _, u := range w.res.Order {
			seen[u] = true
		}
		comps = append(comps, w.res.Order)
	}

	return comps
}

// Connected reports whether g has at most one connected component.
func Connected[V comparable, E core.Edge[V]](g core.View[V, E]) bool {
	return len(Components(g)) <= 1
}

// newWalker prepares the state for a search from start and enqueues it.
func newWalker[V comparable, E core.Edge[V]](g core.View[V, E], o Options[V], start V) *walker[V, E] {
	w := &walker[V, E]{
		graph:   g,
		opts:    o,
		visited: make(map[V]bool),
		res: &Result[V]{
			Start:  start,
			Depth:  make(map[V]int),
			Parent: make(map[V]V),
		},
	}
	w.enqueue(start, 0)

	return w
}

// enqueue marks id visited at depth d and adds it to the queue.
func (w *walker[V, E]) enqueue(id V, d int) {
	w.visited[id] = true
	w.res.Depth[id] = d
	w.queue = append(w.queue, queueItem[V]{id: id, depth: d})
}

// loop processes the queue until empty or until OnVisit fails.
func (w *walker[V, E]) loop() error {
	for len(w.queue) > 0 {
		item := w.queue[0]
		w.queue = w.queue[1:]

		w.res.Order = append(w.res.Order, item.id)
		if err := w.opts.OnVisit(item.id, item.depth); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %v: %w", item.id, err)
		}
		w.enqueueNeighbors(item)
	}

	return nil
}

// enqueueNeighbors applies MaxDepth and enqueues each unseen far endpoint.
func (w *walker[V, E]) enqueueNeighbors(item queueItem[V]) {
	nextDepth := item.depth + 1
	if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
		return
	}
	for _, e := range w.graph.IncidentEdges(item.id) {
		nbr := core.Other[V](e, item.id)
		if !w.visited[nbr] {
			w.res.Parent[nbr] = item.id
			w.enqueue(nbr, nextDepth)
		}
	}
}
