// SPDX-License-Identifier: MIT
// Package: grblas/builder
//
// impl_random_regular.go - RandomRegular(n, d): simple d-regular graph by
// stub matching with bounded retries.
//
// Contract:
//   - Undirected only (else ErrUnsupportedGraphMode).
//   - n ≥ 1, 0 ≤ d < n and n·d even (else ErrTooFewVertices).
//   - An RNG is required (else ErrNeedRandSource).
//   - A shuffle yielding a self-loop or a repeated pair is rejected; after
//     maxStubMatchingAttempts rejections ErrConstructFailed is returned.
//
// Complexity: O(n·d) per attempt.

package builder

import (
	"fmt"

	"github.com/katalvlaran/grblas/coo"
)

// maxStubMatchingAttempts bounds the retries; the acceptance rate of one
// shuffle is about exp(-(d²-1)/4).
const maxStubMatchingAttempts = 256

// RandomRegular returns a Constructor that samples a simple d-regular graph.
func RandomRegular(n, d int) Constructor {
	return func(g *coo.Graph, cfg builderConfig) error {
		if cfg.directed {
			return fmt.Errorf("%s: only undirected graphs are supported: %w", MethodRandomRegular, ErrUnsupportedGraphMode)
		}
		if n < MinRandomNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", MethodRandomRegular, n, MinRandomNodes, ErrTooFewVertices)
		}
		if d < 0 || d >= n {
			return fmt.Errorf("%s: degree must be in [0,%d), got %d: %w", MethodRandomRegular, n, d, ErrTooFewVertices)
		}
		if (n*d)%2 != 0 {
			return fmt.Errorf("%s: n*d must be even (n=%d, d=%d): %w", MethodRandomRegular, n, d, ErrTooFewVertices)
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: rng is required: %w", MethodRandomRegular, ErrNeedRandSource)
		}

		// stubs holds d copies of each vertex; a shuffle pairs them up.
		stubs := make([]int, 0, n*d)
		for i := 0; i < n; i++ {
			for k := 0; k < d; k++ {
				stubs = append(stubs, i)
			}
		}

		for attempt := 1; attempt <= maxStubMatchingAttempts; attempt++ {
			cfg.rng.Shuffle(len(stubs), func(i, j int) { stubs[i], stubs[j] = stubs[j], stubs[i] })
			if !simpleMatching(stubs) {
				continue
			}
			base := addVertices(g, n)
			for i := 0; i < len(stubs); i += 2 {
				addEdge(g, cfg, base+stubs[i], base+stubs[i+1])
			}

			return nil
		}

		return fmt.Errorf("%s: failed to construct after %d attempts: %w",
			MethodRandomRegular, maxStubMatchingAttempts, ErrConstructFailed)
	}
}

// simpleMatching reports whether consecutive stub pairs form a simple graph.
func simpleMatching(stubs []int) bool {
	seen := make(map[[2]int]struct{}, len(stubs)/2)
	for i := 0; i < len(stubs); i += 2 {
		u, v := stubs[i], stubs[i+1]
		if u == v {
			return false
		}
		if u > v {
			u, v = v, u
		}
		key := [2]int{u, v}
		if _, dup := seen[key]; dup {
			return false
		}
		seen[key] = struct{}{}
	}

	return true
}
