// Command wgraph loads weighted graph documents and answers minimum spanning
// tree and shortest path queries on them.
//
// Usage:
//
//	wgraph info graph.yaml
//	wgraph mst graph.yaml --method prim --root A
//	wgraph path graph.yaml A D --max-distance 10
//	wgraph generate grid --rows 4 --cols 4 --seed 7 --min 1 --max 9 > grid.yaml
//
// Results go to stdout (text or --output json); logs go to stderr.
package main

import (
	"fmt"
	"io"
	"os"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the CLI with args and returns the process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	a := newApp(stdout, stderr)
	root := a.rootCmd()
	root.SetArgs(args)

	if err := root.Execute(); err != nil {
		if a.logger != nil {
			a.logger.Error("command failed", "error", err)
		} else {
			fmt.Fprintf(stderr, "wgraph: %v\n", err)
		}

		return 1
	}

	return 0
}
