package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/wgraph/internal/document"
	"github.com/katalvlaran/wgraph/internal/logging"
)

// Output formats for command results.
const (
	outputText = "text"
	outputJSON = "json"
)

var errUnknownOutput = errors.New("unknown output format")

// app carries the resolved global flags and writers shared by all commands.
type app struct {
	stdout io.Writer
	stderr io.Writer

	logLevel  string
	logFormat string
	output    string

	logger *slog.Logger
}

func newApp(stdout, stderr io.Writer) *app {
	return &app{stdout: stdout, stderr: stderr}
}

// rootCmd assembles the command tree.
func (a *app) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "wgraph",
		Short: "Minimum spanning trees and shortest paths on weighted graphs",
		Long: `wgraph reads an undirected weighted graph from a YAML or JSON document
and computes minimum spanning trees, shortest paths and connectivity.

Document format:
  vertices: [A, B, C]
  edges:
    - {id: ab, from: A, to: B, weight: 1}
    - {from: B, to: C, weight: 2.5}

Use "-" as FILE to read the document from standard input.

Examples:
  wgraph info graph.yaml
  wgraph mst graph.yaml --output json
  wgraph path graph.yaml A C
  wgraph generate random --n 50 --p 0.1 --seed 3 | wgraph mst -`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}
	root.SetOut(a.stdout)
	root.SetErr(a.stderr)

	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "info",
		"Minimum log level: debug, info, warn, error")
	root.PersistentFlags().StringVar(&a.logFormat, "log-format", "text",
		"Log format on stderr: text or json")
	root.PersistentFlags().StringVarP(&a.output, "output", "o", outputText,
		"Result format on stdout: text or json")

	root.AddCommand(
		a.infoCmd(),
		a.mstCmd(),
		a.pathCmd(),
		a.generateCmd(),
	)

	return root
}

// setup validates the global flags and builds the logger.
func (a *app) setup(_ *cobra.Command, _ []string) error {
	level, err := logging.ParseLevel(a.logLevel)
	if err != nil {
		return err
	}
	isJSON, err := logging.ParseFormat(a.logFormat)
	if err != nil {
		return err
	}
	a.logger = logging.New(logging.Config{
		Level:   level,
		JSON:    isJSON,
		Service: "wgraph",
		Output:  a.stderr,
	})

	if a.output != outputText && a.output != outputJSON {
		return fmt.Errorf("%w: %q", errUnknownOutput, a.output)
	}

	return nil
}

// loadGraph reads the document at path and builds its graph.
func (a *app) loadGraph(path string) (*document.Graph, error) {
	doc, err := document.Load(path)
	if err != nil {
		return nil, err
	}
	g, err := doc.Graph()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	a.logger.Debug("graph loaded", "file", path, "vertices", g.NumVertices(), "edges", g.NumEdges())

	return g, nil
}

// emit writes v as indented JSON, or calls text for the text format.
func (a *app) emit(v any, text func(w io.Writer) error) error {
	if a.output == outputJSON {
		enc := json.NewEncoder(a.stdout)
		enc.SetIndent("", "  ")

		return enc.Encode(v)
	}

	return text(a.stdout)
}

// edgeSpecs converts graph edges into their document form for output.
func edgeSpecs(edges []document.Edge) []document.EdgeSpec {
	return document.FromEdges(nil, edges).Edges
}

// writeEdges prints one "id from to weight" line per edge, then the total.
func writeEdges(w io.Writer, edges []document.EdgeSpec, total float64) error {
	for _, e := range edges {
		if _, err := fmt.Fprintf(w, "%s\t%s\t%s\t%g\n", e.ID, e.From, e.To, e.Weight); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "total\t%g\n", total)

	return err
}
