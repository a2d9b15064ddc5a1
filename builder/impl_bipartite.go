// SPDX-License-Identifier: MIT
// Package: grblas/builder
//
// impl_bipartite.go - CompleteBipartite(n1, n2): K_{n1,n2}.
//
// Contract:
//   - n1, n2 ≥ 1 (else ErrTooFewVertices).
//   - Left side base..base+n1-1, right side base+n1..base+n1+n2-1.
//   - Every left-right pair is connected in both directions; the graph is
//     triangle-free by construction.
//
// Complexity: O(n1·n2) time.

package builder

import (
	"fmt"

	"github.com/katalvlaran/grblas/coo"
)

// CompleteBipartite returns a Constructor that appends K_{n1,n2}.
func CompleteBipartite(n1, n2 int) Constructor {
	return func(g *coo.Graph, cfg builderConfig) error {
		if n1 < MinPartitionSize || n2 < MinPartitionSize {
			return fmt.Errorf("%s: n1=%d, n2=%d (each must be ≥ %d): %w",
				MethodCompleteBipartite, n1, n2, MinPartitionSize, ErrTooFewVertices)
		}
		left := addVertices(g, n1)
		right := addVertices(g, n2)
		for i := 0; i < n1; i++ {
			for j := 0; j < n2; j++ {
				addSymmetricEdge(g, cfg, left+i, right+j)
			}
		}

		return nil
	}
}
