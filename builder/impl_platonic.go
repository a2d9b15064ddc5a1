// SPDX-License-Identifier: MIT
// Package: grblas/builder
//
// impl_platonic.go - PlatonicSolid(name, withCenter).
//
// Contract:
//   - Unknown name → ErrOptionViolation.
//   - Shell vertices base..base+V-1; shell edges emitted in data order, both
//     directions.
//   - withCenter appends a hub after the shell with spokes to every shell
//     vertex in ascending order.
//
// Complexity: O(V + E) for the chosen solid.

package builder

import (
	"fmt"

	"github.com/katalvlaran/grblas/coo"
)

// PlatonicSolid returns a Constructor that appends a Platonic solid shell,
// optionally with a center hub.
func PlatonicSolid(name PlatonicName, withCenter bool) Constructor {
	return func(g *coo.Graph, cfg builderConfig) error {
		n, ok := platonicVertexCounts[name]
		if !ok {
			return fmt.Errorf("%s: unknown solid %q: %w", MethodPlatonicSolid, name, ErrOptionViolation)
		}
		base := addVertices(g, n)
		for _, ch := range platonicEdgeSets[name] {
			addSymmetricEdge(g, cfg, base+ch.U, base+ch.V)
		}
		if withCenter {
			hub := addVertices(g, 1)
			for i := 0; i < n; i++ {
				addSymmetricEdge(g, cfg, hub, base+i)
			}
		}

		return nil
	}
}
