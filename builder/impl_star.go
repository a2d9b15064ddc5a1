// SPDX-License-Identifier: MIT
// Package: grblas/builder
//
// impl_star.go - Star(n): hub base, leaves base+1..base+n-1.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - Spokes hub→leaf in ascending leaf order; mirrored when undirected.
//
// Complexity: O(n) time.

package builder

import (
	"fmt"

	"github.com/katalvlaran/grblas/coo"
)

// Star returns a Constructor that appends a star with n-1 leaves.
func Star(n int) Constructor {
	return func(g *coo.Graph, cfg builderConfig) error {
		if n < MinStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", MethodStar, n, MinStarNodes, ErrTooFewVertices)
		}
		hub := addVertices(g, n)
		for leaf := 1; leaf < n; leaf++ {
			addEdge(g, cfg, hub, hub+leaf)
		}

		return nil
	}
}
