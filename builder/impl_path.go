// SPDX-License-Identifier: MIT
// Package: grblas/builder
//
// impl_path.go - Path(n): P_n over vertices base..base+n-1.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - Edges i→i+1 in ascending i; mirrored when undirected.
//
// Complexity: O(n) time, O(n) appended coordinates.

package builder

import (
	"fmt"

	"github.com/katalvlaran/grblas/coo"
)

// Path returns a Constructor that appends a simple path on n vertices.
func Path(n int) Constructor {
	return func(g *coo.Graph, cfg builderConfig) error {
		if n < MinPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", MethodPath, n, MinPathNodes, ErrTooFewVertices)
		}
		base := addVertices(g, n)
		for i := 0; i < n-1; i++ {
			addEdge(g, cfg, base+i, base+i+1)
		}

		return nil
	}
}
