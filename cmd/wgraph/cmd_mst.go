package main

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/wgraph/core"
	"github.com/katalvlaran/wgraph/internal/document"
	"github.com/katalvlaran/wgraph/prim_kruskal"
)

// mstResult is the output of "wgraph mst".
type mstResult struct {
	Method      string              `json:"method"`
	Forest      bool                `json:"forest"`
	Edges       []document.EdgeSpec `json:"edges"`
	TotalWeight float64             `json:"total_weight"`
}

func (a *app) mstCmd() *cobra.Command {
	var method, root string

	cmd := &cobra.Command{
		Use:   "mst FILE",
		Short: "Compute a minimum spanning tree",
		Long: `Compute a minimum spanning tree of the graph in FILE.

Kruskal (default) returns a minimum spanning forest when the graph is
disconnected and logs a warning. Prim grows a single tree from --root
(default: the first vertex) and fails on a disconnected graph.`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			g, err := a.loadGraph(args[0])
			if err != nil {
				return err
			}

			opts := prim_kruskal.MSTOptions[string]{Method: method, Root: root}
			if opts.Method == prim_kruskal.MethodPrim && opts.Root == "" && g.NumVertices() > 0 {
				opts.Root = g.Vertices()[0]
			}

			mst, err := prim_kruskal.Compute[string, document.Edge](g, opts)
			if err != nil {
				return err
			}

			edges := mst.Items()
			res := mstResult{
				Method:      opts.Method,
				Forest:      !g.IsConnected(),
				Edges:       edgeSpecs(edges),
				TotalWeight: core.TotalWeight[string](edges),
			}
			if res.Forest {
				a.logger.Warn("graph is disconnected, result is a spanning forest",
					"components", len(g.Components()), "edges", len(edges))
			}
			a.logger.Debug("mst computed", "method", opts.Method, "edges", len(edges), "total", res.TotalWeight)

			return a.emit(res, func(w io.Writer) error {
				return writeEdges(w, res.Edges, res.TotalWeight)
			})
		},
	}

	cmd.Flags().StringVar(&method, "method", prim_kruskal.MethodKruskal, "MST algorithm: kruskal or prim")
	cmd.Flags().StringVar(&root, "root", "", "Start vertex for prim (default: first vertex)")

	return cmd
}
