// SPDX-License-Identifier: MIT
// Package: grblas/builder
//
// impl_complete.go - Complete(n): K_n without self-loops.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices). K_1 is a single isolated vertex.
//   - Undirected: one draw per unordered pair i<j, emitted as both arcs.
//   - Directed: one draw per ordered pair i≠j.
//
// Complexity: O(n²) time and coordinates.

package builder

import (
	"fmt"

	"github.com/katalvlaran/grblas/coo"
)

// Complete returns a Constructor that appends the complete graph on n vertices.
func Complete(n int) Constructor {
	return func(g *coo.Graph, cfg builderConfig) error {
		if n < MinCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", MethodComplete, n, MinCompleteNodes, ErrTooFewVertices)
		}
		base := addVertices(g, n)
		for i := 0; i < n; i++ {
			j0 := i + 1
			if cfg.directed {
				j0 = 0
			}
			for j := j0; j < n; j++ {
				if i != j {
					addEdge(g, cfg, base+i, base+j)
				}
			}
		}

		return nil
	}
}
