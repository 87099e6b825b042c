// SPDX-License-Identifier: MIT
// Package: wgraph/builder
//
// impl_grid.go: Grid(rows, cols) constructor.
//
// Canonical model:
//   • 2D orthogonal grid with 4-neighborhood (right & bottom neighbors per cell).
//   • Vertex IDs use the fixed scheme "r,c" (row-major order); cfg.idFn is not consulted.
//
// Contract:
//   • rows ≥ 1 and cols ≥ 1 (else ErrTooFewVertices).
//   • For each (r,c) emit Right then Bottom if present.
//   • rows*cols vertices, rows*(cols-1) + (rows-1)*cols edges.

package builder

import "fmt"

const (
	methodGrid = "Grid"
	minGridDim = 1
	gridIDFmt  = "%d,%d"
)

// GridID returns the vertex ID Grid assigns to cell (r, c).
func GridID(r, c int) string {
	return fmt.Sprintf(gridIDFmt, r, c)
}

// Grid returns a Constructor that builds a rows×cols orthogonal grid.
func Grid(rows, cols int) Constructor {
	return func(f *Fixture, cfg builderConfig) error {
		// 1) Validate parameters early.
		if rows < minGridDim || cols < minGridDim {
			return fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
				methodGrid, rows, cols, minGridDim, ErrTooFewVertices)
		}

		// 2) Vertices in row-major order.
		for r := range rows {
			for c := range cols {
				f.addVertex(GridID(r, c))
			}
		}

		// 3) Right and Bottom neighbors.
		for r := range rows {
			for c := range cols {
				u := GridID(r, c)
				if c+1 < cols {
					if err := f.addEdge(cfg, u, GridID(r, c+1)); err != nil {
						return fmt.Errorf("%s: %w", methodGrid, err)
					}
				}
				if r+1 < rows {
					if err := f.addEdge(cfg, u, GridID(r+1, c)); err != nil {
						return fmt.Errorf("%s: %w", methodGrid, err)
					}
				}
			}
		}

		return nil
	}
}
