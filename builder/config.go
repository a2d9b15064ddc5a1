// SPDX-License-Identifier: MIT
// Package: grblas/builder
//
// config.go - resolved, immutable construction settings.

package builder

import "math/rand"

// builderConfig is resolved once per Build call and passed by value to every
// constructor.
type builderConfig struct {
	// rng drives stochastic constructors and weight draws; nil unless set.
	rng *rand.Rand

	// weightFn draws one weight per logical edge when weighted is true.
	weightFn WeightFn

	// weighted records whether any weight option was given.
	weighted bool

	// directed switches constructors to forward-arc emission.
	directed bool

	// loops allows self-loops in RandomSparse over directed graphs.
	loops bool
}

// newBuilderConfig applies opts over the defaults: unweighted, undirected,
// no RNG, no self-loops.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		rng:      nil,
		weightFn: DefaultWeightFn,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}
