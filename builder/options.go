// SPDX-License-Identifier: MIT
// Package: grblas/builder
//
// options.go - functional options for Build.
//
// Contract:
//   - Options are functional (type BuilderOption func(*builderConfig)).
//   - Option constructors panic on meaningless inputs (nil RNG, nil weight
//     function); constructors themselves never panic.
//   - Determinism is explicit: seeding is done via WithSeed or WithRand.

package builder

import "math/rand"

// BuilderOption customizes construction by mutating a builderConfig before
// the first constructor runs.
type BuilderOption func(*builderConfig)

// WithDirected makes constructors emit forward arcs instead of mirrored pairs.
func WithDirected() BuilderOption {
	return func(c *builderConfig) {
		c.directed = true
	}
}

// WithLoops lets RandomSparse sample self-loops on directed graphs.
func WithLoops() BuilderOption {
	return func(c *builderConfig) {
		c.loops = true
	}
}

// WithRand provides an explicit RNG for stochastic builders.
// Panics on nil; prefer WithSeed for reproducible runs.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed (deterministic).
// Use this in tests and examples to lock outcomes.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithWeightFn makes the graph weighted, drawing each edge weight from fn.
// fn receives the configured RNG, which may be nil. Panics on nil.
func WithWeightFn(fn WeightFn) BuilderOption {
	if fn == nil {
		panic("builder: WithWeightFn(nil)")
	}
	return func(c *builderConfig) {
		c.weightFn = fn
		c.weighted = true
	}
}
