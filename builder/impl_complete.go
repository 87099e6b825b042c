// SPDX-License-Identifier: MIT
// Package: wgraph/builder
//
// impl_complete.go: Complete(n) constructor.
//
// Contract:
//   • n ≥ 1, else ErrTooFewVertices. K_1 has no edges.
//   • Edges (i,j) for i<j in lexicographic index order: n(n-1)/2 edges.

package builder

import "fmt"

const (
	methodComplete = "Complete"
	minCompleteN   = 1
)

// Complete returns a Constructor that builds the complete graph K_n.
func Complete(n int) Constructor {
	return func(f *Fixture, cfg builderConfig) error {
		if n < minCompleteN {
			return fmt.Errorf("%s: n=%d (must be ≥ %d): %w", methodComplete, n, minCompleteN, ErrTooFewVertices)
		}

		ids := make([]string, n)
		for i := range n {
			ids[i] = cfg.idFn(i)
			f.addVertex(ids[i])
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if err := f.addEdge(cfg, ids[i], ids[j]); err != nil {
					return fmt.Errorf("%s: %w", methodComplete, err)
				}
			}
		}

		return nil
	}
}
