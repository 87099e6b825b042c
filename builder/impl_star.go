// SPDX-License-Identifier: MIT
// Package: wgraph/builder
//
// impl_star.go: Star(n) constructor.
//
// Contract:
//   • n ≥ 2 (center plus at least one leaf), else ErrTooFewVertices.
//   • Center is the fixed ID "Center"; leaves are idFn(0..n-2).
//   • Edges Center–leaf in leaf order.

package builder

import "fmt"

const (
	methodStar = "Star"
	minStarN   = 2
	centerID   = "Center"
)

// Star returns a Constructor that builds a star with n vertices.
func Star(n int) Constructor {
	return func(f *Fixture, cfg builderConfig) error {
		if n < minStarN {
			return fmt.Errorf("%s: n=%d (must be ≥ %d): %w", methodStar, n, minStarN, ErrTooFewVertices)
		}

		f.addVertex(centerID)
		for i := range n - 1 {
			leaf := cfg.idFn(i)
			f.addVertex(leaf)
			if err := f.addEdge(cfg, centerID, leaf); err != nil {
				return fmt.Errorf("%s: %w", methodStar, err)
			}
		}

		return nil
	}
}
