// SPDX-License-Identifier: MIT
// Package: grblas/builder
//
// api.go - public entry points for the builder package.
//
// Design contract:
//   - One orchestrator: Build(opts, cons...). Creates an empty coo.Graph,
//     resolves the config, runs cons in order.
//   - Every constructor appends a fresh vertex block at g.Size; earlier
//     vertices are never touched.
//   - Determinism: same inputs, options, seed and constructor order give
//     identical graphs.
//   - Safety: constructors never panic; they return sentinel errors.

package builder

import (
	"fmt"

	"github.com/katalvlaran/grblas/coo"
)

// Constructor appends a deterministic subgraph to g using the resolved
// builderConfig. Constructors validate parameters before touching g.
type Constructor func(g *coo.Graph, cfg builderConfig) error

// Build creates an empty coo.Graph, resolves opts and applies all
// constructors in order. Any constructor error is wrapped with "Build: %w"
// and returned immediately.
func Build(opts []BuilderOption, cons ...Constructor) (*coo.Graph, error) {
	g := &coo.Graph{}
	cfg := newBuilderConfig(opts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("Build: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("Build: %w", err)
		}
	}

	return g, nil
}

// ByName returns the constructor for a kind name as used by the CLI:
// path, cycle, star, wheel, complete, grid (n×n), random (n, p) and
// regular (n, degree int(p)).
func ByName(kind string, n int, p float64) (Constructor, error) {
	switch kind {
	case KindPath:
		return Path(n), nil
	case KindCycle:
		return Cycle(n), nil
	case KindStar:
		return Star(n), nil
	case KindWheel:
		return Wheel(n), nil
	case KindComplete:
		return Complete(n), nil
	case KindGrid:
		return Grid(n, n), nil
	case KindRandom:
		return RandomSparse(n, p), nil
	case KindRegular:
		return RandomRegular(n, int(p)), nil
	default:
		return nil, fmt.Errorf("ByName: unknown kind %q (want one of %v): %w", kind, Kinds(), ErrOptionViolation)
	}
}

// Kinds lists the names accepted by ByName.
func Kinds() []string {
	return []string{KindPath, KindCycle, KindStar, KindWheel, KindComplete, KindGrid, KindRandom, KindRegular}
}
