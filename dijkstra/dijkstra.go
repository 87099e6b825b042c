// Package dijkstra implements Dijkstra's shortest-path algorithm on weighted graphs.
//
// Dijkstra computes the minimum-cost path from a single source vertex to all
// other reachable vertices in a graph with non-negative edge weights.
// It processes vertices in order of increasing distance using a min-heap priority queue,
// relaxing edges and updating distances accordingly.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Each vertex is finalized at most once.
//   - Each successful relaxation pushes one heap entry: up to E pushes.
//   - Space: O(V + E)
//   - O(V) for distance, predecessor-edge and visited maps.
//   - O(E) worst-case for entries in the heap under “lazy decrease-key”.
//
// Notes on implementation choices:
//
//   - Negative weights are rejected when the graph is built, so no pre-scan happens here.
//   - We treat any edge with weight ≥ InfEdgeThreshold as an impassable “wall”.
//   - We never relax past MaxDistance.
//   - We use a “lazy” decrease-key strategy: pushing duplicates into the heap and ignoring stale entries.
//   - Paths are rebuilt from the last edge recorded per vertex instead of copying a path on every relaxation.
package dijkstra

import (
	"container/heap"
	"fmt"
	"math"
	"slices"

	"github.com/katalvlaran/wgraph/core"
)

// ShortestPath returns the edges of a minimum-weight path from start to end.
// The first edge touches start, the last touches end.
//
// Preconditions and validation (in order):
//  1. start == end → empty path, no further checks (the vertex need not exist).
//  2. g must be non-nil (ErrNilGraph).
//  3. start and end must be in g (core.ErrUnknownVertex).
//
// Returns ErrNoPath when end cannot be reached (including when every route exceeds
// MaxDistance or crosses an impassable edge).
//
// The search stops as soon as end is finalized.
func ShortestPath[V comparable, E core.Edge[V]](g core.View[V, E], start, end V, opts ...Option) ([]E, error) {
	// 1) Trivial path.
	if start == end {
		return []E{}, nil
	}

	// 2) Validate graph and endpoints.
	if g == nil {
		return nil, ErrNilGraph
	}
	if !g.HasVertex(start) {
		return nil, fmt.Errorf("%w: start %v", core.ErrUnknownVertex, start)
	}
	if !g.HasVertex(end) {
		return nil, fmt.Errorf("%w: end %v", core.ErrUnknownVertex, end)
	}

	// 3) Search, stopping once end is settled.
	r := newRunner(g, start, opts)
	r.target, r.hasTarget = end, true
	if err := r.process(); err != nil {
		return nil, err
	}

	return r.result().PathTo(end)
}

// Distances computes shortest distances from source to every vertex of g.
//
// Returns:
//
//   - *Result: Dist[v] is the minimum distance (+Inf if unreachable); PathTo(v)
//     rebuilds the edge path.
//   - err: ErrNilGraph, or core.ErrUnknownVertex if source is not in g.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E)
func Distances[V comparable, E core.Edge[V]](g core.View[V, E], source V, opts ...Option) (*Result[V, E], error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if !g.HasVertex(source) {
		return nil, fmt.Errorf("%w: source %v", core.ErrUnknownVertex, source)
	}

	r := newRunner(g, source, opts)
	if err := r.process(); err != nil {
		return nil, err
	}

	return r.result(), nil
}

// Result holds the outcome of a single-source run.
type Result[V comparable, E core.Edge[V]] struct {
	// Source is the vertex the distances are measured from.
	Source V

	// Dist maps every vertex to its distance from Source (+Inf when unreachable).
	Dist map[V]float64

	// prev maps each reached vertex (except Source) to the last edge of its best path.
	prev map[V]E
}

// Reachable reports whether v has a finite distance from Source.
func (res *Result[V, E]) Reachable(v V) bool {
	d, ok := res.Dist[v]

	return ok && !math.IsInf(d, 1)
}

// PathTo rebuilds the edge path from Source to v by walking the recorded
// last edges backwards through each edge's other endpoint.
//
// Returns an empty path for v == Source, core.ErrUnknownVertex for a vertex
// outside the graph, and ErrNoPath for an unreachable vertex.
func (res *Result[V, E]) PathTo(v V) ([]E, error) {
	if v == res.Source {
		return []E{}, nil
	}
	d, ok := res.Dist[v]
	if !ok {
		return nil, fmt.Errorf("%w: %v", core.ErrUnknownVertex, v)
	}
	if math.IsInf(d, 1) {
		return nil, fmt.Errorf("%w: from %v to %v", ErrNoPath, res.Source, v)
	}

	var path []E
	for cur := v; cur != res.Source; {
		e := res.prev[cur]
		path = append(path, e)
		cur = core.Other[V](e, cur)
	}
	slices.Reverse(path)

	return path, nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner[V comparable, E core.Edge[V]] struct {
	g         core.View[V, E] // The input graph; read-only within Dijkstra.
	options   Options         // Configuration options (thresholds).
	source    V               // Start vertex.
	target    V               // Optional early-exit vertex.
	hasTarget bool            // Whether target is set.
	dist      map[V]float64   // Maps vertex → current best distance from source.
	prev      map[V]E         // Maps vertex → last edge on its best known path.
	visited   map[V]bool      // Tracks if a vertex's distance is finalized.
	pq        nodePQ[V]       // Min-heap of *nodeItem for lazy priority queue.
}

// newRunner applies opts and initializes distances: +Inf everywhere, 0 at source,
// with source pushed onto the heap.
func newRunner[V comparable, E core.Edge[V]](g core.View[V, E], source V, opts []Option) *runner[V, E] {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	vertices := g.Vertices()
	r := &runner[V, E]{
		g:       g,
		options: cfg,
		source:  source,
		dist:    make(map[V]float64, len(vertices)),
		prev:    make(map[V]E, len(vertices)),
		visited: make(map[V]bool, len(vertices)),
		pq:      make(nodePQ[V], 0, len(vertices)),
	}
	for _, v := range vertices {
		r.dist[v] = math.Inf(1)
	}
	r.dist[source] = 0

	heap.Init(&r.pq)
	heap.Push(&r.pq, &nodeItem[V]{id: source, dist: 0})

	return r
}

// process is the core loop of Dijkstra's algorithm. It repeatedly extracts the vertex
// with the minimum distance from the source and relaxes its incident edges.
//
// Loop termination conditions:
//
//   - The heap becomes empty (all reachable vertices processed).
//   - The target vertex (if any) has been finalized.
func (r *runner[V, E]) process() error {
	for r.pq.Len() > 0 {
		// 1) Pop the smallest-distance item from the heap.
		item := heap.Pop(&r.pq).(*nodeItem[V])
		u := item.id

		// 2) Skip stale entries: u was finalized through a shorter entry.
		if r.visited[u] || item.dist > r.dist[u] {
			continue
		}

		// 3) u's distance is now final.
		r.visited[u] = true
		if r.hasTarget && u == r.target {
			return nil
		}

		// 4) Relax all edges incident to u.
		if err := r.relax(u); err != nil {
			return err
		}
	}

	return nil
}

// relax examines each edge touching u and attempts to improve the distance of its far endpoint.
// It ignores edges at or above InfEdgeThreshold and candidates above MaxDistance.
// If a strictly shorter path to neighbor v is found, dist[v] and prev[v] are updated and
// a new heap entry is pushed.
//
// Assumes r.dist[u] is finalized before calling relax(u).
func (r *runner[V, E]) relax(u V) error {
	for _, e := range r.g.IncidentEdges(u) {
		// Far endpoint; for a self-loop this is u itself, already visited.
		v := core.Other[V](e, u)
		if r.visited[v] {
			continue
		}

		w := e.Weight()
		if w >= r.options.InfEdgeThreshold {
			continue
		}

		newDist := r.dist[u] + w
		if newDist > r.options.MaxDistance {
			continue
		}

		cur, ok := r.dist[v]
		if !ok {
			return fmt.Errorf("%w: edge %v leads to %v", core.ErrUnknownVertex, e, v)
		}
		// Strict improvement only; equal-cost alternatives keep the first path found.
		if newDist >= cur {
			continue
		}

		r.dist[v] = newDist
		r.prev[v] = e
		heap.Push(&r.pq, &nodeItem[V]{id: v, dist: newDist})
	}

	return nil
}

// result packages the run state.
func (r *runner[V, E]) result() *Result[V, E] {
	return &Result[V, E]{
		Source: r.source,
		Dist:   r.dist,
		prev:   r.prev,
	}
}

// nodeItem represents a vertex and its distance from the source at push time.
type nodeItem[V comparable] struct {
	id   V       // vertex
	dist float64 // distance from source
}

// nodePQ is a min-heap (priority queue) of *nodeItem, ordered by nodeItem.dist ascending.
// The same vertex may appear several times; outdated entries are skipped on pop.
type nodePQ[V comparable] []*nodeItem[V]

// Len returns the number of items in the heap.
func (pq nodePQ[V]) Len() int { return len(pq) }

// Less defines the comparison: smaller dist → higher priority.
func (pq nodePQ[V]) Less(i, j int) bool { return pq[i].dist < pq[j].dist }

// Swap swaps two elements in the heap.
func (pq nodePQ[V]) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap. Called by heap.Push.
func (pq *nodePQ[V]) Push(x any) { *pq = append(*pq, x.(*nodeItem[V])) }

// Pop removes and returns the last element. Called by heap.Pop.
func (pq *nodePQ[V]) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
