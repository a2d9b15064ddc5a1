// SPDX-License-Identifier: MIT
// Package: sparse
//
// semiring.go - (add, multiply, identity) triples that give products their meaning.
//
// Swapping the semiring over the same containers changes the graph semantics:
//
//	LorLand   (∨, ∧, false)      reachability
//	MinPlus   (min, +, +Inf)     shortest distance
//	MinFirst  (min, first, max)  smallest predecessor label
//	PlusTimes (+, ×, 0)          path / wedge counting over values
//	PlusPair  (+, 1, 0)          path / wedge counting over structure
//	AnyPair   (∨, true, false)   structural reachability over any values
//
// Add must be associative and commutative; kernels accumulate in increasing
// inner index order, so even floating-point sums are reproducible.

package sparse

import (
	"math"
)

// Number lists the value domains with a natural 0 and 1.
type Number interface {
	~int | ~int32 | ~int64 | ~float32 | ~float64
}

// Semiring combines an A operand with a B operand into C (Mul) and folds
// partial products together (Add). Zero is Add's identity; kernels never
// store it, it only seeds reductions of empty inputs.
type Semiring[A, B, C any] struct {
	Name string
	Add  func(x, y C) C
	Mul  func(x A, y B) C
	Zero C
}

// validate rejects a semiring with a missing operator.
func (s Semiring[A, B, C]) validate() error {
	if s.Add == nil || s.Mul == nil {
		return ErrNilSemiring
	}

	return nil
}

// LorLand is the boolean (OR, AND, false) semiring. Absence reads as false.
func LorLand() Semiring[bool, bool, bool] {
	return Semiring[bool, bool, bool]{
		Name: "LOR_LAND",
		Add:  Lor,
		Mul:  func(x, y bool) bool { return x && y },
		Zero: false,
	}
}

// MinPlus is the tropical (min, +, +Inf) semiring over float64.
// Absence reads as +Inf, so it is never stored.
func MinPlus() Semiring[float64, float64, float64] {
	return Semiring[float64, float64, float64]{
		Name: "MIN_PLUS",
		Add:  Min[float64],
		Mul:  func(x, y float64) float64 { return x + y },
		Zero: math.Inf(1),
	}
}

// MinFirst keeps the first operand and folds with min. Over a frontier whose
// values are vertex labels it selects the smallest label among all present
// predecessors; the second operand contributes structure only.
func MinFirst[B any]() Semiring[int, B, int] {
	return Semiring[int, B, int]{
		Name: "MIN_FIRST",
		Add:  Min[int],
		Mul:  func(x int, _ B) int { return x },
		Zero: math.MaxInt,
	}
}

// PlusTimes is the arithmetic (+, ×, 0) semiring.
func PlusTimes[T Number]() Semiring[T, T, T] {
	return Semiring[T, T, T]{
		Name: "PLUS_TIMES",
		Add:  Plus[T],
		Mul:  func(x, y T) T { return x * y },
		Zero: 0,
	}
}

// PlusPair counts matching operand pairs: Mul yields 1 for any present pair.
// Over 0/1 adjacency matrices it equals PlusTimes without converting values.
func PlusPair[A, B any, C Number]() Semiring[A, B, C] {
	return Semiring[A, B, C]{
		Name: "PLUS_PAIR",
		Add:  Plus[C],
		Mul:  func(A, B) C { return 1 },
		Zero: 0,
	}
}

// AnyPair reports structural overlap: any present pair yields true.
func AnyPair[A, B any]() Semiring[A, B, bool] {
	return Semiring[A, B, bool]{
		Name: "ANY_PAIR",
		Add:  Lor,
		Mul:  func(A, B) bool { return true },
		Zero: false,
	}
}

// Min returns the smaller of x and y (x on ties).
func Min[T Number](x, y T) T {
	if y < x {
		return y
	}

	return x
}

// Plus returns x + y.
func Plus[T Number](x, y T) T { return x + y }

// Lor returns x || y.
func Lor(x, y bool) bool { return x || y }
