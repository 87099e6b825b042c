package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/wgraph/core"
	"github.com/katalvlaran/wgraph/dfs"
	"github.com/katalvlaran/wgraph/internal/document"
)

// infoResult is the output of "wgraph info".
type infoResult struct {
	Vertices    int     `json:"vertices"`
	Edges       int     `json:"edges"`
	Components  int     `json:"components"`
	Connected   bool    `json:"connected"`
	Acyclic     bool    `json:"acyclic"`
	TotalWeight float64 `json:"total_weight"`
}

func (a *app) infoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info FILE",
		Short: "Print vertex, edge and component counts and whether the graph is a forest",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			g, err := a.loadGraph(args[0])
			if err != nil {
				return err
			}

			comps := g.Components()
			res := infoResult{
				Vertices:    g.NumVertices(),
				Edges:       g.NumEdges(),
				Components:  len(comps),
				Connected:   len(comps) <= 1,
				Acyclic:     dfs.IsForest[string, document.Edge](g),
				TotalWeight: core.TotalWeight[string](g.SortedEdges()),
			}

			return a.emit(res, func(w io.Writer) error {
				_, err := fmt.Fprintf(w, "vertices\t%d\nedges\t%d\ncomponents\t%d\nconnected\t%t\nacyclic\t%t\ntotal\t%g\n",
					res.Vertices, res.Edges, res.Components, res.Connected, res.Acyclic, res.TotalWeight)

				return err
			})
		},
	}
}
