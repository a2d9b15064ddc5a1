// SPDX-License-Identifier: MIT
// Package: grblas/builder
//
// weight_fn.go - edge weight generators.
//
// Contract:
//   - A WeightFn is called once per logical edge, in emission order.
//   - Generators never return NaN or ±Inf.
//   - Constructors of generators panic on invalid parameters.
//   - With a nil RNG stochastic generators fall back to DefaultEdgeWeight.

package builder

import (
	"fmt"
	"math"
	"math/rand"
)

// DefaultEdgeWeight is the weight used when no generator applies.
const DefaultEdgeWeight float64 = 1

// MaxIntegerWeight bounds |min| and |max| of IntegerWeightFn: 2^53 is the
// largest range float64 holds exactly.
const MaxIntegerWeight = 1 << 53

// WeightFn produces one edge weight from an optional RNG.
type WeightFn func(rng *rand.Rand) float64

// DefaultWeightFn always returns DefaultEdgeWeight.
func DefaultWeightFn(_ *rand.Rand) float64 {
	return DefaultEdgeWeight
}

// ConstantWeightFn always returns value. Negative values are allowed, which
// is how negative-cycle fixtures are built. Panics on NaN or ±Inf.
func ConstantWeightFn(value float64) WeightFn {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		panic(fmt.Sprintf("ConstantWeightFn: value must be finite, got %g", value))
	}

	return func(_ *rand.Rand) float64 {
		return value
	}
}

// UniformWeightFn draws uniformly from [min, max). Requires 0 ≤ min ≤ max.
func UniformWeightFn(min, max float64) WeightFn {
	if min < 0 || max < min || math.IsInf(max, 0) {
		panic(fmt.Sprintf("UniformWeightFn: require 0 ≤ min ≤ max < Inf, got min=%g, max=%g", min, max))
	}

	return func(rng *rand.Rand) float64 {
		if rng == nil {
			return DefaultEdgeWeight
		}
		if max == min {
			return min
		}

		return min + rng.Float64()*(max-min)
	}
}

// IntegerWeightFn draws integers uniformly from [min, max]. Integer weights
// keep path sums exact, so distances compare bit for bit across algorithms.
// Negative bounds are allowed. Panics if max < min or either bound lies
// outside [-MaxIntegerWeight, MaxIntegerWeight].
func IntegerWeightFn(min, max int) WeightFn {
	if max < min || !IntegerWeightInRange(min) || !IntegerWeightInRange(max) {
		panic(fmt.Sprintf("IntegerWeightFn: require -2^53 ≤ min ≤ max ≤ 2^53, got min=%d, max=%d", min, max))
	}
	lo, span := int64(min), int64(max)-int64(min)+1 // ≤ 2^54+1, no overflow

	return func(rng *rand.Rand) float64 {
		if rng == nil {
			return DefaultEdgeWeight
		}

		return float64(lo + rng.Int63n(span))
	}
}

// IntegerWeightInRange reports whether w is an accepted IntegerWeightFn bound.
func IntegerWeightInRange(w int) bool {
	return int64(w) >= -MaxIntegerWeight && int64(w) <= MaxIntegerWeight
}

// WithConstantWeight makes every edge weigh w.
func WithConstantWeight(w float64) BuilderOption {
	return WithWeightFn(ConstantWeightFn(w))
}

// WithUniformWeight draws weights uniformly from [min, max).
func WithUniformWeight(min, max float64) BuilderOption {
	return WithWeightFn(UniformWeightFn(min, max))
}

// WithIntegerWeight draws integer weights uniformly from [min, max].
func WithIntegerWeight(min, max int) BuilderOption {
	return WithWeightFn(IntegerWeightFn(min, max))
}
