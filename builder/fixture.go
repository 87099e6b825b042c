package builder

import (
	"fmt"
	"math"

	"github.com/katalvlaran/wgraph/core"
	"github.com/katalvlaran/wgraph/graph"
)

// Edge is the edge type every fixture emits.
type Edge = core.WeightedEdge[string]

// StringGraph is the graph type a Fixture builds into.
type StringGraph = graph.Graph[string, Edge]

// edgeIDFmt numbers edges in emission order: "e1", "e2", ...
const edgeIDFmt = "e%d"

// Fixture is an ordered collection of vertices and edges produced by constructors.
// Vertex order is first-insertion order; edge order is emission order.
type Fixture struct {
	Vertices []string
	Edges    []Edge

	seen map[string]struct{}
}

func newFixture() *Fixture {
	return &Fixture{seen: make(map[string]struct{})}
}

// addVertex appends id once; repeated inserts are no-ops.
func (f *Fixture) addVertex(id string) {
	if f.seen == nil {
		f.seen = make(map[string]struct{}, len(f.Vertices))
		for _, v := range f.Vertices {
			f.seen[v] = struct{}{}
		}
	}
	if _, ok := f.seen[id]; ok {
		return
	}
	f.seen[id] = struct{}{}
	f.Vertices = append(f.Vertices, id)
}

// addEdge appends an undirected edge u–v weighted by cfg.weightFn.
// Both endpoints must already be vertices of the fixture.
func (f *Fixture) addEdge(cfg builderConfig, u, v string) error {
	w := cfg.weightFn(cfg.rng)
	if w < 0 || math.IsNaN(w) {
		return fmt.Errorf("weight function returned %g for %s-%s: %w", w, u, v, core.ErrInvalidWeight)
	}
	f.Edges = append(f.Edges, Edge{
		ID:   fmt.Sprintf(edgeIDFmt, len(f.Edges)+1),
		From: u,
		To:   v,
		Cost: w,
	})

	return nil
}

// TotalWeight returns the sum of all edge weights in the fixture.
func (f *Fixture) TotalWeight() float64 {
	return core.TotalWeight[string](f.Edges)
}

// Build validates the fixture and returns it as an immutable graph.
func (f *Fixture) Build() (*StringGraph, error) {
	g, err := graph.New(f.Vertices, f.Edges)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConstructFailed, err)
	}

	return g, nil
}
