// Package document reads and writes graph documents, the YAML (or JSON) files
// the wgraph CLI operates on:
//
//	vertices: [A, B, C]
//	edges:
//	  - {id: ab, from: A, to: B, weight: 1}
//	  - {from: B, to: C, weight: 2.5}
//
// Decoding is strict (unknown keys are rejected). Edges without an id are
// numbered "e1", "e2", ... by position. Structural checks run through
// go-playground/validator; graph-level checks (unknown endpoints) are left to
// graph.New when the document is converted.
package document

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/wgraph/builder"
	"github.com/katalvlaran/wgraph/core"
	"github.com/katalvlaran/wgraph/graph"
)

// ErrInvalidDocument indicates input that cannot be decoded or fails validation.
var ErrInvalidDocument = errors.New("document: invalid graph document")

// Edge is the concrete edge type every document produces.
type Edge = core.WeightedEdge[string]

// Graph is the concrete graph type every document produces.
type Graph = graph.Graph[string, Edge]

// Document is the on-disk form of a graph.
type Document struct {
	Vertices []string   `yaml:"vertices" json:"vertices" validate:"unique,dive,required"`
	Edges    []EdgeSpec `yaml:"edges" json:"edges" validate:"unique=ID,dive"`
}

// EdgeSpec is one undirected edge of a Document.
type EdgeSpec struct {
	ID     string  `yaml:"id,omitempty" json:"id,omitempty"`
	From   string  `yaml:"from" json:"from" validate:"required"`
	To     string  `yaml:"to" json:"to" validate:"required"`
	Weight float64 `yaml:"weight" json:"weight" validate:"gte=0"`
}

// docValidate is shared; validator.Validate caches struct metadata and is safe for concurrent use.
var docValidate *validator.Validate

func init() {
	docValidate = validator.New()
	// Report YAML key names ("edges[0].weight") instead of Go field names.
	docValidate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("yaml"), ",", 2)[0]
		if name == "-" {
			return ""
		}

		return name
	})
}

// Read decodes, normalizes and validates a document from r.
func Read(r io.Reader) (*Document, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var doc Document
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty input", ErrInvalidDocument)
		}

		return nil, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}

	doc.normalize()
	if err := doc.Validate(); err != nil {
		return nil, err
	}

	return &doc, nil
}

// Parse is Read over an in-memory buffer.
func Parse(data []byte) (*Document, error) {
	return Read(bytes.NewReader(data))
}

// Load reads the document at path; "-" reads standard input.
func Load(path string) (*Document, error) {
	if path == "-" {
		return Read(os.Stdin)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("document: open %s: %w", path, err)
	}
	defer f.Close()

	doc, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return doc, nil
}

// normalize assigns positional IDs to edges that have none.
func (d *Document) normalize() {
	for i := range d.Edges {
		if d.Edges[i].ID == "" {
			d.Edges[i].ID = fmt.Sprintf("e%d", i+1)
		}
	}
}

// Validate runs the struct-tag checks: vertex names non-empty and unique,
// edge IDs unique, endpoints non-empty, weights non-negative (NaN fails too).
func (d *Document) Validate() error {
	err := docValidate.Struct(d)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		field := strings.TrimPrefix(fe.Namespace(), "Document.")
		if fe.Param() != "" {
			msgs = append(msgs, fmt.Sprintf("%s: failed %s=%s", field, fe.Tag(), fe.Param()))
		} else {
			msgs = append(msgs, fmt.Sprintf("%s: failed %s", field, fe.Tag()))
		}
	}

	return fmt.Errorf("%w: %s", ErrInvalidDocument, strings.Join(msgs, "; "))
}

// EdgeList returns the document's edges as core.WeightedEdge values, in document order.
func (d *Document) EdgeList() []Edge {
	edges := make([]Edge, len(d.Edges))
	for i, e := range d.Edges {
		edges[i] = Edge{ID: e.ID, From: e.From, To: e.To, Cost: e.Weight}
	}

	return edges
}

// Graph converts the document into an immutable graph. Errors from graph.New
// (unknown endpoints, duplicate vertices) are returned unwrapped so callers
// can match core sentinels.
func (d *Document) Graph() (*Graph, error) {
	return graph.New(d.Vertices, d.EdgeList())
}

// FromFixture converts a generated fixture into a document.
func FromFixture(f *builder.Fixture) *Document {
	return FromEdges(f.Vertices, f.Edges)
}

// FromEdges builds a document from explicit vertices and edges.
func FromEdges(vertices []string, edges []Edge) *Document {
	doc := &Document{
		Vertices: append([]string(nil), vertices...),
		Edges:    make([]EdgeSpec, len(edges)),
	}
	for i, e := range edges {
		doc.Edges[i] = EdgeSpec{ID: e.ID, From: e.From, To: e.To, Weight: e.Cost}
	}

	return doc
}

// Write encodes d as YAML with two-space indentation.
func (d *Document) Write(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(d); err != nil {
		return fmt.Errorf("document: encode: %w", err)
	}

	return enc.Close()
}

// Marshal returns d encoded as YAML.
func (d *Document) Marshal() ([]byte, error) {
	var buf bytes.Buffer
	if err := d.Write(&buf); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}
