// SPDX-License-Identifier: MIT
// Package: grblas/builder
//
// impl_cycle.go - Cycle(n): C_n over vertices base..base+n-1.
//
// Contract:
//   - n ≥ 3 (else ErrTooFewVertices).
//   - Edges i→(i+1 mod n) in ascending i; the closing edge n-1→0 comes last.
//
// Complexity: O(n) time, O(n) appended coordinates.

package builder

import (
	"fmt"

	"github.com/katalvlaran/grblas/coo"
)

// Cycle returns a Constructor that appends a simple cycle on n vertices.
func Cycle(n int) Constructor {
	return func(g *coo.Graph, cfg builderConfig) error {
		if n < MinCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", MethodCycle, n, MinCycleNodes, ErrTooFewVertices)
		}
		base := addVertices(g, n)
		for i := 0; i < n; i++ {
			addEdge(g, cfg, base+i, base+(i+1)%n)
		}

		return nil
	}
}
