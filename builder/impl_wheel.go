// SPDX-License-Identifier: MIT
// Package: grblas/builder
//
// impl_wheel.go - Wheel(n): W_n = C_{n-1} plus a hub.
//
// Canonical definition:
//   - The rim is Cycle(n-1) on base..base+n-2; the hub is base+n-1.
//   - Therefore n ≥ 4 (the rim must be a valid cycle).
//
// Contract:
//   - Spokes are emitted hub↔rim in ascending rim order, in both directions
//     even for directed graphs.
//   - The rim follows the configured direction.
//
// Complexity: O(n) time.

package builder

import (
	"fmt"

	"github.com/katalvlaran/grblas/coo"
)

// Wheel returns a Constructor that appends a wheel on n vertices.
func Wheel(n int) Constructor {
	return func(g *coo.Graph, cfg builderConfig) error {
		if n < MinWheelNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", MethodWheel, n, MinWheelNodes, ErrTooFewVertices)
		}
		rim := g.Size
		if err := Cycle(n-1)(g, cfg); err != nil {
			return fmt.Errorf("%s: base cycle C_%d: %w", MethodWheel, n-1, err)
		}
		hub := addVertices(g, 1)
		for i := 0; i < n-1; i++ {
			addSymmetricEdge(g, cfg, hub, rim+i)
		}

		return nil
	}
}
