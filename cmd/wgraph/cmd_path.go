package main

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/wgraph/core"
	"github.com/katalvlaran/wgraph/dijkstra"
	"github.com/katalvlaran/wgraph/internal/document"
)

// pathResult is the output of "wgraph path".
type pathResult struct {
	From        string              `json:"from"`
	To          string              `json:"to"`
	Edges       []document.EdgeSpec `json:"edges"`
	TotalWeight float64             `json:"total_weight"`
}

func (a *app) pathCmd() *cobra.Command {
	var maxDistance float64

	cmd := &cobra.Command{
		Use:   "path FILE FROM TO",
		Short: "Find a minimum-weight path between two vertices",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := a.loadGraph(args[0])
			if err != nil {
				return err
			}
			from, to := args[1], args[2]

			var opts []dijkstra.Option
			if cmd.Flags().Changed("max-distance") {
				if maxDistance < 0 {
					return dijkstra.ErrBadMaxDistance
				}
				opts = append(opts, dijkstra.WithMaxDistance(maxDistance))
			}

			path, err := g.ShortestPathBetween(from, to, opts...)
			if err != nil {
				return err
			}

			res := pathResult{
				From:        from,
				To:          to,
				Edges:       edgeSpecs(path),
				TotalWeight: core.TotalWeight[string](path),
			}
			a.logger.Debug("path found", "from", from, "to", to, "hops", len(path))

			return a.emit(res, func(w io.Writer) error {
				return writeEdges(w, res.Edges, res.TotalWeight)
			})
		},
	}

	cmd.Flags().Float64Var(&maxDistance, "max-distance", 0, "Ignore routes longer than this distance")

	return cmd
}
