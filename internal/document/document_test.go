package document

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wgraph/builder"
	"github.com/katalvlaran/wgraph/core"
)

const diamondYAML = `
vertices: [A, B, C, D]
edges:
  - {id: ab, from: A, to: B, weight: 1}
  - {id: bc, from: B, to: C, weight: 2}
  - {id: ac, from: A, to: C, weight: 4}
  - {from: C, to: D, weight: 1}
  - {from: B, to: D, weight: 5}
`

func TestParse_YAML(t *testing.T) {
	doc, err := Parse([]byte(diamondYAML))
	require.NoError(t, err)

	assert.Equal(t, []string{"A", "B", "C", "D"}, doc.Vertices)
	require.Len(t, doc.Edges, 5)
	assert.Equal(t, EdgeSpec{ID: "ab", From: "A", To: "B", Weight: 1}, doc.Edges[0])
	// Missing IDs are positional.
	assert.Equal(t, "e4", doc.Edges[3].ID)
	assert.Equal(t, "e5", doc.Edges[4].ID)

	g, err := doc.Graph()
	require.NoError(t, err)
	assert.Equal(t, 4, g.NumVertices())
	assert.Equal(t, 5, g.NumEdges())
	assert.Equal(t, 4.0, core.TotalWeight[string](g.MinimumSpanningTree().Items()))
}

func TestParse_JSON(t *testing.T) {
	doc, err := Parse([]byte(`{"vertices": ["x", "y"], "edges": [{"from": "x", "to": "y", "weight": 0.5}]}`))
	require.NoError(t, err)
	assert.Equal(t, []Edge{{ID: "e1", From: "x", To: "y", Cost: 0.5}}, doc.EdgeList())
}

func TestParse_EmptyGraph(t *testing.T) {
	doc, err := Parse([]byte("vertices: []\nedges: []\n"))
	require.NoError(t, err)
	g, err := doc.Graph()
	require.NoError(t, err)
	assert.Zero(t, g.NumVertices())
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantMsg string
	}{
		{"empty input", "", "empty input"},
		{"syntax", "vertices: [A, B\n", ""},
		{"unknown key", "vertices: [A]\ncolour: red\n", "colour"},
		{"duplicate vertex", "vertices: [A, A]\n", "vertices: failed unique"},
		{"blank vertex", "vertices: [A, '']\n", "vertices[1]: failed required"},
		{"missing endpoint", "vertices: [A]\nedges: [{from: A, weight: 1}]\n", "edges[0].to: failed required"},
		{"negative weight", "vertices: [A, B]\nedges: [{from: A, to: B, weight: -2}]\n", "edges[0].weight: failed gte=0"},
		{"NaN weight", "vertices: [A, B]\nedges: [{from: A, to: B, weight: .nan}]\n", "edges[0].weight"},
		{"duplicate edge id", "vertices: [A, B]\nedges: [{id: x, from: A, to: B, weight: 1}, {id: x, from: B, to: A, weight: 2}]\n", "edges: failed unique=ID"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse([]byte(tc.input))
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidDocument)
			if tc.wantMsg != "" {
				assert.Contains(t, err.Error(), tc.wantMsg)
			}
		})
	}
}

func TestGraph_UnknownEndpoint(t *testing.T) {
	doc, err := Parse([]byte("vertices: [A]\nedges: [{from: A, to: Z, weight: 1}]\n"))
	require.NoError(t, err)

	_, err = doc.Graph()
	assert.ErrorIs(t, err, core.ErrUnknownVertex)
}

func TestRoundTrip_Fixture(t *testing.T) {
	f, err := builder.BuildFixture(
		[]builder.BuilderOption{builder.WithSeed(5), builder.WithIntegerWeight(1, 9)},
		builder.Grid(3, 3),
	)
	require.NoError(t, err)

	data, err := FromFixture(f).Marshal()
	require.NoError(t, err)

	back, err := Parse(data)
	require.NoError(t, err)
	if diff := cmp.Diff(f.Vertices, back.Vertices); diff != "" {
		t.Errorf("vertices mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(f.Edges, back.EdgeList()); diff != "" {
		t.Errorf("edges mismatch (-want +got):\n%s", diff)
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "g.yaml")
	require.NoError(t, os.WriteFile(path, []byte(diamondYAML), 0o600))

	doc, err := Load(path)
	require.NoError(t, err)
	assert.Len(t, doc.Vertices, 4)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("vertices: [A, A]\n"), 0o600))
	_, err = Load(bad)
	assert.ErrorIs(t, err, ErrInvalidDocument)
	assert.Contains(t, err.Error(), bad)
}
