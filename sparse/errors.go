// SPDX-License-Identifier: MIT
// Package: sparse
//
// errors.go - sentinel errors of the sparse core.
// Every message is prefixed with "sparse: ". Call sites attach the operation
// name with sparseErrorf; callers branch with errors.Is.

package sparse

import (
	"errors"
	"fmt"
)

var (
	// ErrBadShape is returned when a container is requested with negative dimensions.
	ErrBadShape = errors.New("sparse: invalid shape")

	// ErrOutOfRange indicates an index outside [0,n) for the addressed dimension.
	ErrOutOfRange = errors.New("sparse: index out of range")

	// ErrDimensionMismatch indicates incompatible operand, mask or output shapes,
	// e.g. MxM with A.Cols() != B.Rows().
	ErrDimensionMismatch = errors.New("sparse: dimension mismatch")

	// ErrNilMatrix indicates a nil *Matrix or *Vector operand.
	ErrNilMatrix = errors.New("sparse: nil operand")

	// ErrNilSemiring indicates a semiring or binary operator with a nil function.
	ErrNilSemiring = errors.New("sparse: semiring has nil operator")

	// ErrOptionViolation is returned when an invalid Option was supplied.
	ErrOptionViolation = errors.New("sparse: invalid option supplied")
)

// sparseErrorf tags err with the operation name, keeping it matchable via errors.Is.
func sparseErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
