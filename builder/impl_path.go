// SPDX-License-Identifier: MIT
// Package: wgraph/builder
//
// impl_path.go: Path(n) and Cycle(n) constructors.
//
// Contract:
//   • Path: n ≥ 2, vertices idFn(0..n-1), edges i–(i+1) for i ascending.
//   • Cycle: n ≥ 3, same as Path plus the closing edge (n-1)–0.
//   • Weights come from cfg.weightFn(cfg.rng), one draw per edge in emission order.

package builder

import "fmt"

const (
	methodPath  = "Path"
	methodCycle = "Cycle"
	minPathN    = 2
	minCycleN   = 3
)

// Path returns a Constructor that builds the simple path P_n.
func Path(n int) Constructor {
	return func(f *Fixture, cfg builderConfig) error {
		if n < minPathN {
			return fmt.Errorf("%s: n=%d (must be ≥ %d): %w", methodPath, n, minPathN, ErrTooFewVertices)
		}

		return chain(f, cfg, methodPath, n, false)
	}
}

// Cycle returns a Constructor that builds the simple cycle C_n.
func Cycle(n int) Constructor {
	return func(f *Fixture, cfg builderConfig) error {
		if n < minCycleN {
			return fmt.Errorf("%s: n=%d (must be ≥ %d): %w", methodCycle, n, minCycleN, ErrTooFewVertices)
		}

		return chain(f, cfg, methodCycle, n, true)
	}
}

// chain emits vertices 0..n-1 and the consecutive edges, closing the ring when closed is set.
func chain(f *Fixture, cfg builderConfig, method string, n int, closed bool) error {
	ids := make([]string, n)
	for i := range n {
		ids[i] = cfg.idFn(i)
		f.addVertex(ids[i])
	}
	for i := 0; i+1 < n; i++ {
		if err := f.addEdge(cfg, ids[i], ids[i+1]); err != nil {
			return fmt.Errorf("%s: %w", method, err)
		}
	}
	if closed {
		if err := f.addEdge(cfg, ids[n-1], ids[0]); err != nil {
			return fmt.Errorf("%s: %w", method, err)
		}
	}

	return nil
}
