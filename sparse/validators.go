// SPDX-License-Identifier: MIT
// Package: sparse
//
// validators.go - single source of truth for shape and index checks.
// Validators return plain sentinels; callers wrap them with the op name.

package sparse

import "fmt"

// validateIndex checks 0 <= i < n.
func validateIndex(i, n int) error {
	if i < 0 || i >= n {
		return fmt.Errorf("index %d not in [0,%d): %w", i, n, ErrOutOfRange)
	}

	return nil
}

// validateVectorMask checks that a non-nil mask has size n.
func validateVectorMask(mask VectorMask, n int) error {
	if mask == nil {
		return nil
	}
	if mask.maskSize() != n {
		return fmt.Errorf("mask size %d, want %d: %w", mask.maskSize(), n, ErrDimensionMismatch)
	}

	return nil
}

// validateMatrixMask checks that a non-nil mask is r×c.
func validateMatrixMask(mask MatrixMask, r, c int) error {
	if mask == nil {
		return nil
	}
	if mask.maskRows() != r || mask.maskCols() != c {
		return fmt.Errorf("mask %dx%d, want %dx%d: %w",
			mask.maskRows(), mask.maskCols(), r, c, ErrDimensionMismatch)
	}

	return nil
}

// validateSameShape checks that a and b are both non-nil and share a shape.
func validateSameShape[S, T any](a *Matrix[S], b *Matrix[T]) error {
	if a == nil || b == nil {
		return ErrNilMatrix
	}
	if a.nrows != b.nrows || a.ncols != b.ncols {
		return fmt.Errorf("%dx%d vs %dx%d: %w", a.nrows, a.ncols, b.nrows, b.ncols, ErrDimensionMismatch)
	}

	return nil
}

// validateSameSize checks that u and v are both non-nil and share a size.
func validateSameSize[S, T any](u *Vector[S], v *Vector[T]) error {
	if u == nil || v == nil {
		return ErrNilMatrix
	}
	if u.n != v.n {
		return fmt.Errorf("size %d vs %d: %w", u.n, v.n, ErrDimensionMismatch)
	}

	return nil
}
