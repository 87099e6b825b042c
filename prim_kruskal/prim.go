// Package prim_kruskal provides an implementation of Prim's Minimum Spanning Tree (MST) algorithm.
// It grows the MST from a specified root vertex using a min-heap of candidate edges.
package prim_kruskal

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/wgraph/core"
)

// Prim computes the Minimum Spanning Tree (MST) of an undirected, weighted graph
// by growing outwards from a specified root vertex using a min-heap.
//
// Unlike Kruskal, Prim can only cover the root's component, so it reports a
// disconnected graph instead of returning a partial tree.
//
// Error Conditions:
//   - ErrInvalidGraph       : if g is nil.
//   - core.ErrUnknownVertex : if root is not in g.
//   - ErrDisconnected       : if the tree grown from root does not reach every vertex.
//
// Steps:
//  1. Validate g and root.
//  2. Mark root visited; push every incident edge leading to an unvisited vertex.
//  3. While the heap is not empty and MST has < |V|-1 edges:
//     a. Pop the lightest candidate (ties: earliest pushed).
//     b. Skip it if its far endpoint is already visited.
//     c. Otherwise keep it, visit the far endpoint, push its outgoing candidates.
//  4. If MST size < |V|-1 → ErrDisconnected.
//
// Complexity: O(E log E) time, O(V + E) memory.
func Prim[V comparable, E core.Edge[V]](g core.View[V, E], root V) (*core.Set[E], error) {
	// 1. Validate.
	if g == nil {
		return nil, ErrInvalidGraph
	}
	if !g.HasVertex(root) {
		return nil, fmt.Errorf("%w: root %v", core.ErrUnknownVertex, root)
	}

	n := len(g.Vertices())
	visited := make(map[V]bool, n)
	mst := core.NewSet[E]()
	pq := &edgePQ[V, E]{}

	// push enqueues every edge from u to a vertex outside the tree.
	push := func(u V) {
		for _, e := range g.IncidentEdges(u) {
			to := core.Other[V](e, u)
			if !visited[to] {
				heap.Push(pq, candidate[V, E]{edge: e, to: to, seq: pq.next})
				pq.next++
			}
		}
	}

	// 2. Seed from root.
	visited[root] = true
	push(root)

	// 3. Expand.
	for pq.Len() > 0 && mst.Len() < n-1 {
		c := heap.Pop(pq).(candidate[V, E])
		if visited[c.to] {
			continue
		}
		visited[c.to] = true
		mst.Add(c.edge)
		push(c.to)
	}

	// 4. Every vertex must be reached.
	if mst.Len() < n-1 {
		return nil, fmt.Errorf("%w: reached %d of %d vertices from %v", ErrDisconnected, mst.Len()+1, n, root)
	}

	return mst, nil
}

// candidate is an edge crossing from the tree to the vertex to.
type candidate[V comparable, E core.Edge[V]] struct {
	edge E
	to   V
	seq  int // push order, breaks weight ties deterministically
}

// edgePQ implements heap.Interface for a min-heap of candidates, ordered by
// edge weight and then by push order.
type edgePQ[V comparable, E core.Edge[V]] struct {
	items []candidate[V, E]
	next  int
}

// Len returns the number of candidates in the priority queue.
func (pq *edgePQ[V, E]) Len() int { return len(pq.items) }

// Less compares by weight, then by push order.
func (pq *edgePQ[V, E]) Less(i, j int) bool {
	wi, wj := pq.items[i].edge.Weight(), pq.items[j].edge.Weight()
	if wi != wj {
		return wi < wj
	}

	return pq.items[i].seq < pq.items[j].seq
}

// Swap swaps elements at indices i and j.
func (pq *edgePQ[V, E]) Swap(i, j int) { pq.items[i], pq.items[j] = pq.items[j], pq.items[i] }

// Push appends a candidate. Called by heap.Push.
func (pq *edgePQ[V, E]) Push(x any) { pq.items = append(pq.items, x.(candidate[V, E])) }

// Pop removes and returns the last candidate. Called by heap.Pop.
func (pq *edgePQ[V, E]) Pop() any {
	old := pq.items
	n := len(old)
	item := old[n-1]
	pq.items = old[:n-1]

	return item
}
