// SPDX-License-Identifier: MIT
// Package: grblas/builder
//
// errors.go - sentinel errors for graph construction.
// Constructors wrap these with their method name; callers use errors.Is.

package builder

import "errors"

var (
	// ErrTooFewVertices indicates a size parameter below the constructor minimum.
	ErrTooFewVertices = errors.New("builder: parameter too small")

	// ErrInvalidProbability indicates an edge probability outside [0,1].
	ErrInvalidProbability = errors.New("builder: probability out of range")

	// ErrNeedRandSource indicates a stochastic constructor without WithSeed/WithRand.
	ErrNeedRandSource = errors.New("builder: rng is required")

	// ErrUnsupportedGraphMode indicates a constructor that cannot honor the
	// configured direction (e.g. RandomRegular on a directed graph).
	ErrUnsupportedGraphMode = errors.New("builder: unsupported graph mode")

	// ErrConstructFailed indicates a nil constructor or a construction that
	// exhausted its retries.
	ErrConstructFailed = errors.New("builder: construction failed")

	// ErrOptionViolation indicates an invalid parameter value such as an
	// unknown solid or kind name.
	ErrOptionViolation = errors.New("builder: invalid option value")
)
