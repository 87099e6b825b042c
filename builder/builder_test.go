// Package builder_test verifies topology, counts, determinism and option
// handling for every Constructor in the builder package.
package builder_test

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wgraph/builder"
	"github.com/katalvlaran/wgraph/core"
)

// endpoints returns the (From, To) pairs of f's edges in emission order.
func endpoints(f *builder.Fixture) [][2]string {
	out := make([][2]string, len(f.Edges))
	for i, e := range f.Edges {
		out[i] = [2]string{e.From, e.To}
	}

	return out
}

func TestBuilders_Counts(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		ctor  builder.Constructor
		wantV int
		wantE int
	}{
		{"Path(4)", builder.Path(4), 4, 3},
		{"Cycle(5)", builder.Cycle(5), 5, 5},
		{"Star(6)", builder.Star(6), 6, 5},
		{"Complete(1)", builder.Complete(1), 1, 0},
		{"Complete(5)", builder.Complete(5), 5, 10},
		{"Grid(1,1)", builder.Grid(1, 1), 1, 0},
		{"Grid(3,4)", builder.Grid(3, 4), 12, 3*3 + 2*4},
		{"RandomSparse(p=0)", builder.RandomSparse(6, 0), 6, 0},
		{"RandomSparse(p=1)", builder.RandomSparse(6, 1), 6, 15},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			f, err := builder.BuildFixture(nil, tc.ctor)
			require.NoError(t, err)
			assert.Len(t, f.Vertices, tc.wantV)
			assert.Len(t, f.Edges, tc.wantE)

			g, err := f.Build()
			require.NoError(t, err)
			assert.Equal(t, tc.wantV, g.NumVertices())
			assert.Equal(t, tc.wantE, g.NumEdges())
		})
	}
}

func TestPath_Topology(t *testing.T) {
	f, err := builder.BuildFixture(nil, builder.Path(4))
	require.NoError(t, err)

	assert.Equal(t, []string{"0", "1", "2", "3"}, f.Vertices)
	assert.Equal(t, [][2]string{{"0", "1"}, {"1", "2"}, {"2", "3"}}, endpoints(f))
	for i, e := range f.Edges {
		assert.Equal(t, builder.DefaultEdgeWeight, e.Cost)
		assert.Equal(t, "e"+string(rune('1'+i)), e.ID)
	}
}

func TestCycle_ClosesRing(t *testing.T) {
	f, err := builder.BuildFixture(nil, builder.Cycle(3))
	require.NoError(t, err)
	assert.Equal(t, [][2]string{{"0", "1"}, {"1", "2"}, {"2", "0"}}, endpoints(f))
}

func TestStar_Center(t *testing.T) {
	f, err := builder.BuildFixture([]builder.BuilderOption{builder.WithIDPrefix("leaf")}, builder.Star(3))
	require.NoError(t, err)
	assert.Equal(t, []string{"Center", "leaf0", "leaf1"}, f.Vertices)
	assert.Equal(t, [][2]string{{"Center", "leaf0"}, {"Center", "leaf1"}}, endpoints(f))
}

func TestGrid_RowMajor(t *testing.T) {
	f, err := builder.BuildFixture(nil, builder.Grid(2, 2))
	require.NoError(t, err)
	assert.Equal(t, []string{"0,0", "0,1", "1,0", "1,1"}, f.Vertices)
	assert.Equal(t, [][2]string{
		{"0,0", "0,1"}, {"0,0", "1,0"},
		{"0,1", "1,1"},
		{"1,0", "1,1"},
	}, endpoints(f))
	assert.Equal(t, "2,3", builder.GridID(2, 3))
}

func TestBuilders_ParameterErrors(t *testing.T) {
	tests := []struct {
		name string
		ctor builder.Constructor
		want error
	}{
		{"Path(1)", builder.Path(1), builder.ErrTooFewVertices},
		{"Cycle(2)", builder.Cycle(2), builder.ErrTooFewVertices},
		{"Star(1)", builder.Star(1), builder.ErrTooFewVertices},
		{"Complete(0)", builder.Complete(0), builder.ErrTooFewVertices},
		{"Grid(0,3)", builder.Grid(0, 3), builder.ErrTooFewVertices},
		{"RandomSparse(0,p)", builder.RandomSparse(0, 0.5), builder.ErrTooFewVertices},
		{"RandomSparse(p<0)", builder.RandomSparse(4, -0.1), builder.ErrInvalidProbability},
		{"RandomSparse(p>1)", builder.RandomSparse(4, 1.5), builder.ErrInvalidProbability},
		{"RandomSparse(no rng)", builder.RandomSparse(4, 0.5), builder.ErrNeedRandSource},
		{"nil constructor", nil, builder.ErrConstructFailed},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := builder.BuildFixture(nil, tc.ctor)
			require.Error(t, err)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestRandomSparse_DeterministicPerSeed(t *testing.T) {
	opts := []builder.BuilderOption{builder.WithSeed(42), builder.WithUniformWeight(1, 10)}

	f1, err := builder.BuildFixture(opts, builder.RandomSparse(20, 0.3))
	require.NoError(t, err)
	// WithSeed creates a fresh RNG on every resolution, so reusing opts replays it.
	f2, err := builder.BuildFixture(opts, builder.RandomSparse(20, 0.3))
	require.NoError(t, err)

	assert.Equal(t, f1.Vertices, f2.Vertices)
	assert.Equal(t, f1.Edges, f2.Edges)
	for _, e := range f1.Edges {
		assert.GreaterOrEqual(t, e.Cost, 1.0)
		assert.Less(t, e.Cost, 10.0)
	}
}

func TestBuildFixture_ComposesSharedVertices(t *testing.T) {
	// Path(3) and Cycle(3) share vertices 0..2; only edges accumulate.
	f, err := builder.BuildFixture(nil, builder.Path(3), builder.Cycle(3))
	require.NoError(t, err)
	assert.Equal(t, []string{"0", "1", "2"}, f.Vertices)
	assert.Len(t, f.Edges, 5)
	assert.Equal(t, "e5", f.Edges[4].ID)

	g, err := f.Build()
	require.NoError(t, err)
	assert.Len(t, g.IncidentEdges("0"), 3)
}

func TestWeightFns(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	assert.Equal(t, 1.0, builder.DefaultWeightFn(rng))
	assert.Equal(t, 2.5, builder.ConstantWeightFn(2.5)(rng))
	assert.Equal(t, 3.0, builder.UniformWeightFn(3, 9)(nil))
	assert.Equal(t, 4.0, builder.UniformWeightFn(4, 4)(rng))
	assert.Equal(t, 5.0, builder.IntegerWeightFn(5, 8)(nil))

	for range 100 {
		w := builder.IntegerWeightFn(1, 3)(rng)
		assert.Contains(t, []float64{1, 2, 3}, w)
	}

	assert.Panics(t, func() { builder.ConstantWeightFn(-1) })
	assert.Panics(t, func() { builder.UniformWeightFn(5, 1) })
	assert.Panics(t, func() { builder.IntegerWeightFn(-1, 3) })
	assert.Panics(t, func() { builder.WithWeightFn(nil) })
	assert.Panics(t, func() { builder.WithIDScheme(nil) })
	assert.Panics(t, func() { builder.WithRand(nil) })
}

func TestWithWeightFn_NegativeWeightRejected(t *testing.T) {
	bad := func(*rand.Rand) float64 { return -1 }
	_, err := builder.BuildFixture([]builder.BuilderOption{builder.WithWeightFn(bad)}, builder.Path(2))
	require.Error(t, err)
	assert.True(t, errors.Is(err, core.ErrInvalidWeight))
}

func TestIDFns(t *testing.T) {
	assert.Equal(t, "0", builder.DefaultIDFn(0))
	assert.Equal(t, "42", builder.DefaultIDFn(42))
	assert.Equal(t, "A", builder.ExcelColumnIDFn(0))
	assert.Equal(t, "Z", builder.ExcelColumnIDFn(25))
	assert.Equal(t, "AA", builder.ExcelColumnIDFn(26))
	assert.Equal(t, "AZ", builder.ExcelColumnIDFn(51))
	assert.Equal(t, "BA", builder.ExcelColumnIDFn(52))
	assert.Equal(t, "v7", builder.SymbolNumberIDFn("v")(7))
	assert.Panics(t, func() { builder.ExcelColumnIDFn(-1) })

	f, err := builder.BuildFixture([]builder.BuilderOption{builder.WithLetterIDs()}, builder.Path(3))
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C"}, f.Vertices)
}

func TestGenerate_MSTOfCompleteUnitGraph(t *testing.T) {
	g, err := builder.Generate(builder.Complete(6))
	require.NoError(t, err)

	mst := g.MinimumSpanningTree()
	assert.Equal(t, 5, mst.Len())
	assert.Equal(t, 5.0, core.TotalWeight[string](mst.Items()))
	assert.True(t, g.IsConnected())
}

func TestFixture_TotalWeight(t *testing.T) {
	f, err := builder.BuildFixture([]builder.BuilderOption{builder.WithConstantWeight(2)}, builder.Cycle(4))
	require.NoError(t, err)
	assert.Equal(t, 8.0, f.TotalWeight())
}
