// Package dijkstra_test contains unit tests for the Dijkstra implementation.
// These tests validate input checks, path reconstruction, MaxDistance,
// InfEdgeThreshold, self-loops and parallel edges, and compare distances
// against a Floyd–Warshall reference on random graphs.
package dijkstra_test

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wgraph/builder"
	"github.com/katalvlaran/wgraph/core"
	"github.com/katalvlaran/wgraph/dijkstra"
	"github.com/katalvlaran/wgraph/graph"
)

type edge = core.WeightedEdge[string]

func newGraph(t *testing.T, vertices []string, edges []edge) *graph.Graph[string, edge] {
	t.Helper()
	g, err := graph.New(vertices, edges)
	require.NoError(t, err)

	return g
}

// ------------------------------------------------------------------------
// 1. Validation
// ------------------------------------------------------------------------

func TestShortestPath_NilGraph(t *testing.T) {
	_, err := dijkstra.ShortestPath[string, edge](nil, "A", "B")
	assert.ErrorIs(t, err, dijkstra.ErrNilGraph)

	_, err = dijkstra.Distances[string, edge](nil, "A")
	assert.ErrorIs(t, err, dijkstra.ErrNilGraph)
}

func TestShortestPath_SameVertexShortCircuits(t *testing.T) {
	// Checked before the nil graph and before vertex lookup.
	path, err := dijkstra.ShortestPath[string, edge](nil, "X", "X")
	require.NoError(t, err)
	assert.Equal(t, []edge{}, path)
}

func TestShortestPath_UnknownVertex(t *testing.T) {
	g := newGraph(t, []string{"A"}, nil)

	_, err := dijkstra.ShortestPath[string, edge](g, "Z", "A")
	assert.ErrorIs(t, err, core.ErrUnknownVertex)
	_, err = dijkstra.ShortestPath[string, edge](g, "A", "Z")
	assert.ErrorIs(t, err, core.ErrUnknownVertex)
	_, err = dijkstra.Distances[string, edge](g, "Z")
	assert.ErrorIs(t, err, core.ErrUnknownVertex)
}

func TestOptions_Panics(t *testing.T) {
	g := newGraph(t, []string{"A", "B"}, []edge{{From: "A", To: "B", Cost: 1}})

	assert.Panics(t, func() { _, _ = dijkstra.ShortestPath[string, edge](g, "A", "B", dijkstra.WithMaxDistance(-1)) })
	assert.Panics(t, func() { _, _ = dijkstra.ShortestPath[string, edge](g, "A", "B", dijkstra.WithMaxDistance(math.NaN())) })
	assert.Panics(t, func() { _, _ = dijkstra.ShortestPath[string, edge](g, "A", "B", dijkstra.WithInfEdgeThreshold(0)) })
	assert.NotPanics(t, func() { _, _ = dijkstra.ShortestPath[string, edge](g, "A", "B", dijkstra.WithMaxDistance(0)) })
}

// ------------------------------------------------------------------------
// 2. Paths
// ------------------------------------------------------------------------

func TestShortestPath_ReferenceGraph(t *testing.T) {
	g := newGraph(t, []string{"A", "B", "C", "D"}, []edge{
		{ID: "ab", From: "A", To: "B", Cost: 1},
		{ID: "bc", From: "B", To: "C", Cost: 2},
		{ID: "ac", From: "A", To: "C", Cost: 4},
		{ID: "cd", From: "C", To: "D", Cost: 1},
		{ID: "bd", From: "B", To: "D", Cost: 5},
	})

	tests := []struct {
		from, to string
		want     []string
		total    float64
	}{
		{"A", "C", []string{"ab", "bc"}, 3},
		{"A", "D", []string{"ab", "bc", "cd"}, 4},
		{"D", "A", []string{"cd", "bc", "ab"}, 4},
		{"B", "D", []string{"bc", "cd"}, 3},
	}
	for _, tc := range tests {
		t.Run(tc.from+"→"+tc.to, func(t *testing.T) {
			path, err := dijkstra.ShortestPath[string, edge](g, tc.from, tc.to)
			require.NoError(t, err)

			var ids []string
			for _, e := range path {
				ids = append(ids, e.ID)
			}
			if diff := cmp.Diff(tc.want, ids); diff != "" {
				t.Errorf("path mismatch (-want +got):\n%s", diff)
			}
			assert.Equal(t, tc.total, core.TotalWeight[string](path))
		})
	}
}

func TestShortestPath_Unreachable(t *testing.T) {
	g := newGraph(t, []string{"A", "B", "C"}, []edge{{From: "A", To: "B", Cost: 1}})
	_, err := dijkstra.ShortestPath[string, edge](g, "A", "C")
	assert.ErrorIs(t, err, dijkstra.ErrNoPath)
}

func TestShortestPath_SelfLoopAndParallelEdges(t *testing.T) {
	g := newGraph(t, []string{"A", "B"}, []edge{
		{ID: "loop", From: "A", To: "A", Cost: 0},
		{ID: "slow", From: "A", To: "B", Cost: 9},
		{ID: "fast", From: "B", To: "A", Cost: 2},
	})

	path, err := dijkstra.ShortestPath[string, edge](g, "A", "B")
	require.NoError(t, err)
	assert.Equal(t, []edge{{ID: "fast", From: "B", To: "A", Cost: 2}}, path)
}

func TestShortestPath_ZeroWeightEdges(t *testing.T) {
	g := newGraph(t, []string{"A", "B", "C"}, []edge{
		{ID: "ab", From: "A", To: "B", Cost: 0},
		{ID: "bc", From: "B", To: "C", Cost: 0},
		{ID: "ac", From: "A", To: "C", Cost: 1},
	})

	path, err := dijkstra.ShortestPath[string, edge](g, "A", "C")
	require.NoError(t, err)
	assert.Len(t, path, 2)
	assert.Zero(t, core.TotalWeight[string](path))
}

func TestShortestPath_MaxDistance(t *testing.T) {
	g := newGraph(t, []string{"A", "B", "C"}, []edge{
		{From: "A", To: "B", Cost: 2},
		{From: "B", To: "C", Cost: 2},
	})

	_, err := dijkstra.ShortestPath[string, edge](g, "A", "C", dijkstra.WithMaxDistance(3))
	assert.ErrorIs(t, err, dijkstra.ErrNoPath)

	path, err := dijkstra.ShortestPath[string, edge](g, "A", "C", dijkstra.WithMaxDistance(4))
	require.NoError(t, err)
	assert.Len(t, path, 2)
}

func TestShortestPath_InfEdgeThreshold(t *testing.T) {
	g := newGraph(t, []string{"A", "B", "C"}, []edge{
		{ID: "wall", From: "A", To: "C", Cost: 10},
		{ID: "ab", From: "A", To: "B", Cost: 20},
		{ID: "bc", From: "B", To: "C", Cost: 1},
	})

	path, err := dijkstra.ShortestPath[string, edge](g, "A", "C")
	require.NoError(t, err)
	assert.Equal(t, "wall", path[0].ID)

	// Weight 20 is impassable at threshold 15, and so is 10 at threshold 10.
	_, err = dijkstra.ShortestPath[string, edge](g, "A", "C", dijkstra.WithInfEdgeThreshold(10))
	assert.ErrorIs(t, err, dijkstra.ErrNoPath)

	path, err = dijkstra.ShortestPath[string, edge](g, "A", "C", dijkstra.WithInfEdgeThreshold(15))
	require.NoError(t, err)
	assert.Equal(t, "wall", path[0].ID)
}

// ------------------------------------------------------------------------
// 3. Distances / Result
// ------------------------------------------------------------------------

func TestDistances_Result(t *testing.T) {
	g := newGraph(t, []string{"A", "B", "C", "Z"}, []edge{
		{ID: "ab", From: "A", To: "B", Cost: 1.5},
		{ID: "bc", From: "B", To: "C", Cost: 2},
	})

	res, err := dijkstra.Distances[string, edge](g, "A")
	require.NoError(t, err)

	assert.Equal(t, "A", res.Source)
	assert.Equal(t, map[string]float64{"A": 0, "B": 1.5, "C": 3.5, "Z": math.Inf(1)}, res.Dist)
	assert.True(t, res.Reachable("C"))
	assert.False(t, res.Reachable("Z"))
	assert.False(t, res.Reachable("missing"))

	path, err := res.PathTo("A")
	require.NoError(t, err)
	assert.Empty(t, path)

	path, err = res.PathTo("C")
	require.NoError(t, err)
	assert.Len(t, path, 2)

	_, err = res.PathTo("Z")
	assert.ErrorIs(t, err, dijkstra.ErrNoPath)
	_, err = res.PathTo("missing")
	assert.ErrorIs(t, err, core.ErrUnknownVertex)
}

func TestDefaultOptions(t *testing.T) {
	o := dijkstra.DefaultOptions()
	assert.True(t, math.IsInf(o.MaxDistance, 1))
	assert.True(t, math.IsInf(o.InfEdgeThreshold, 1))
}

// ------------------------------------------------------------------------
// 4. Reference comparison
// ------------------------------------------------------------------------

// floydWarshall returns all-pairs distances for the undirected fixture f.
func floydWarshall(f *builder.Fixture) map[string]map[string]float64 {
	d := make(map[string]map[string]float64, len(f.Vertices))
	for _, u := range f.Vertices {
		d[u] = make(map[string]float64, len(f.Vertices))
		for _, v := range f.Vertices {
			d[u][v] = math.Inf(1)
		}
		d[u][u] = 0
	}
	for _, e := range f.Edges {
		if e.Cost < d[e.From][e.To] {
			d[e.From][e.To] = e.Cost
			d[e.To][e.From] = e.Cost
		}
	}
	for _, k := range f.Vertices {
		for _, i := range f.Vertices {
			for _, j := range f.Vertices {
				if d[i][k]+d[k][j] < d[i][j] {
					d[i][j] = d[i][k] + d[k][j]
				}
			}
		}
	}

	return d
}

func TestDistances_MatchFloydWarshall(t *testing.T) {
	properties := gopter.NewProperties(gopter.DefaultTestParameters())

	properties.Property("single-source distances equal all-pairs reference", prop.ForAll(
		func(seed int64, n int, p float64) bool {
			f, err := builder.BuildFixture(
				[]builder.BuilderOption{builder.WithSeed(seed), builder.WithIntegerWeight(0, 30)},
				builder.RandomSparse(n, p),
			)
			if err != nil {
				return false
			}
			g, err := f.Build()
			if err != nil {
				return false
			}
			ref := floydWarshall(f)

			src := f.Vertices[0]
			res, err := dijkstra.Distances[string, builder.Edge](g, src)
			if err != nil {
				return false
			}
			for _, v := range f.Vertices {
				if res.Dist[v] != ref[src][v] {
					return false
				}
				path, err := dijkstra.ShortestPath[string, builder.Edge](g, src, v)
				if math.IsInf(ref[src][v], 1) {
					if err == nil {
						return false
					}
					continue
				}
				if err != nil || core.TotalWeight[string](path) != ref[src][v] {
					return false
				}
				// Consecutive edges must chain from src to v.
				cur := src
				for _, e := range path {
					if e.From != cur && e.To != cur {
						return false
					}
					cur = core.Other[string](e, cur)
				}
				if cur != v {
					return false
				}
			}

			return true
		},
		gen.Int64(),
		gen.IntRange(1, 25),
		gen.Float64Range(0, 0.4),
	))

	properties.TestingRun(t)
}
