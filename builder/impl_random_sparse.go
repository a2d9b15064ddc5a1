// SPDX-License-Identifier: MIT
// Package: grblas/builder
//
// impl_random_sparse.go - RandomSparse(n, p): Erdős–Rényi G(n, p).
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices); 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - An RNG is required when 0 < p < 1 (else ErrNeedRandSource); p ∈ {0,1}
//     is deterministic and needs none.
//   - Undirected: one trial per unordered pair i<j.
//   - Directed: one trial per ordered pair; i==j only with WithLoops.
//
// Determinism:
//   - Trials run i asc, then j asc; the weight draw for an accepted edge
//     immediately follows its trial on the same RNG stream.
//
// Complexity: O(n²) trials.

package builder

import (
	"fmt"

	"github.com/katalvlaran/grblas/coo"
)

// RandomSparse returns a Constructor that samples G(n, p).
func RandomSparse(n int, p float64) Constructor {
	return func(g *coo.Graph, cfg builderConfig) error {
		if n < MinRandomNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", MethodRandomSparse, n, MinRandomNodes, ErrTooFewVertices)
		}
		if p < MinProbability || p > MaxProbability {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				MethodRandomSparse, p, MinProbability, MaxProbability, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > MinProbability && p < MaxProbability {
			return fmt.Errorf("%s: rng is required: %w", MethodRandomSparse, ErrNeedRandSource)
		}

		accept := func() bool {
			switch p {
			case MinProbability:
				return false
			case MaxProbability:
				return true
			default:
				return cfg.rng.Float64() < p
			}
		}

		base := addVertices(g, n)
		for i := 0; i < n; i++ {
			j0 := i + 1
			if cfg.directed {
				j0 = 0
			}
			for j := j0; j < n; j++ {
				if i == j && !cfg.loops {
					continue
				}
				if accept() {
					addEdge(g, cfg, base+i, base+j)
				}
			}
		}

		return nil
	}
}
