// SPDX-License-Identifier: MIT
// Package: grblas/builder
//
// impl_grid.go - Grid(rows, cols): 4-neighborhood lattice.
//
// Contract:
//   - rows, cols ≥ 1 (else ErrTooFewVertices).
//   - Cell (r,c) is vertex base + r*cols + c (row-major).
//   - For each cell in row-major order: right neighbor, then down neighbor.
//     Directed graphs keep only these forward arcs.
//
// Complexity: O(rows·cols) time.

package builder

import (
	"fmt"

	"github.com/katalvlaran/grblas/coo"
)

// Grid returns a Constructor that appends a rows×cols grid.
func Grid(rows, cols int) Constructor {
	return func(g *coo.Graph, cfg builderConfig) error {
		if rows < MinGridDim || cols < MinGridDim {
			return fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
				MethodGrid, rows, cols, MinGridDim, ErrTooFewVertices)
		}
		base := addVertices(g, rows*cols)
		cell := func(r, c int) int { return base + r*cols + c }
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				if c+1 < cols {
					addEdge(g, cfg, cell(r, c), cell(r, c+1))
				}
				if r+1 < rows {
					addEdge(g, cfg, cell(r, c), cell(r+1, c))
				}
			}
		}

		return nil
	}
}
