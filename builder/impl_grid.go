// SPDX-License-Identifier: MIT
// Package: mincut/builder
//
// impl_grid.go — implementation of Grid(rows, cols) constructor.
//
// Canonical model:
//   • 2D orthogonal grid with 4-neighborhood (right & bottom neighbors per cell).
//   • Vertex labels use the fixed scheme "r,c" (row-major), not cfg.idFn,
//     to keep coordinates explicit.
//
// Contract:
//   • rows ≥ 1, cols ≥ 1 and rows·cols ≥ 2 (else ErrTooFewVertices);
//     a single cell has no edge and could not be stored.
//   • For each (r,c) in row-major order emit Right then Bottom if present.
//
// Min cut: 2 for rows,cols ≥ 2 (a corner has degree 2); 1 for a 1×k strip.
//
// Complexity:
//   • Time: O(rows*cols). Space: O(1) extra.

package builder

import (
	"fmt"

	"github.com/katalvlaran/mincut/core"
)

// Grid returns a Constructor that builds a rows×cols orthogonal grid.
func Grid(rows, cols int) Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		if rows < MinGridDim || cols < MinGridDim || rows*cols < 2 {
			return fmt.Errorf("%s: rows=%d, cols=%d (each ≥ %d, at least two cells): %w",
				MethodGrid, rows, cols, MinGridDim, ErrTooFewVertices)
		}

		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				u := gridVertexID(r, c)
				if c+1 < cols {
					if err := addEdge(g, MethodGrid, u, gridVertexID(r, c+1)); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if err := addEdge(g, MethodGrid, u, gridVertexID(r+1, c)); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}
