// SPDX-License-Identifier: MIT
// Package: wgraph/builder
//
// impl_random_sparse.go: RandomSparse(n, p) constructor (Erdős–Rényi G(n,p)).
//
// Contract:
//   • n ≥ 1 (else ErrTooFewVertices); p ∈ [0,1] (else ErrInvalidProbability).
//   • 0 < p < 1 requires cfg.rng (else ErrNeedRandSource); p=0 and p=1 are deterministic.
//   • For each pair i<j in lexicographic order, include the edge iff rng.Float64() < p.
//     The weight draw follows the inclusion draw for the same pair.

package builder

import (
	"fmt"
	"math"
)

const (
	methodRandomSparse = "RandomSparse"
	minRandomSparseN   = 1
)

// RandomSparse returns a Constructor that builds a G(n,p) random graph.
func RandomSparse(n int, p float64) Constructor {
	return func(f *Fixture, cfg builderConfig) error {
		// 1) Validate parameters.
		if n < minRandomSparseN {
			return fmt.Errorf("%s: n=%d (must be ≥ %d): %w",
				methodRandomSparse, n, minRandomSparseN, ErrTooFewVertices)
		}
		if p < 0 || p > 1 || math.IsNaN(p) {
			return fmt.Errorf("%s: p=%g: %w", methodRandomSparse, p, ErrInvalidProbability)
		}
		if p > 0 && p < 1 && cfg.rng == nil {
			return fmt.Errorf("%s: p=%g: %w", methodRandomSparse, p, ErrNeedRandSource)
		}

		// 2) Vertices.
		ids := make([]string, n)
		for i := range n {
			ids[i] = cfg.idFn(i)
			f.addVertex(ids[i])
		}
		if p == 0 {
			return nil
		}

		// 3) Pair sampling in stable order.
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if p < 1 && cfg.rng.Float64() >= p {
					continue
				}
				if err := f.addEdge(cfg, ids[i], ids[j]); err != nil {
					return fmt.Errorf("%s: %w", methodRandomSparse, err)
				}
			}
		}

		return nil
	}
}
