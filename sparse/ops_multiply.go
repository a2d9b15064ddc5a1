// SPDX-License-Identifier: MIT
// Package: sparse
//
// ops_multiply.go - semiring products MxM, VxM, MxV and their masked
// write-back forms (MxMInto, VxMInto).
//
// Kernel:
//   - Row-wise Gustavson: row i of C accumulates A(i,j) ⊗ B(j,:) for present j
//     in increasing order into a sparse accumulator (dense values + stamp marks).
//   - The mask filters output columns before Mul is evaluated, so masked-out
//     work is skipped rather than computed and discarded.
//
// Determinism & Concurrency:
//   - Fixed i→j→k order; per-k accumulation order is increasing j.
//   - WithWorkers(n) computes disjoint row blocks on an errgroup limited to n
//     goroutines. Each block owns its accumulator and writes only its rows.
//
// Complexity: O(flops + nrows) time, O(cols(B)) accumulator per worker.

package sparse

import (
	"fmt"
	"slices"

	"golang.org/x/sync/errgroup"
)

// accumulator is a sparse accumulator for one output row.
type accumulator[C any] struct {
	val     []C
	mark    []int
	stamp   int
	touched []int
}

func newAccumulator[C any](n int) *accumulator[C] {
	return &accumulator[C]{val: make([]C, n), mark: make([]int, n)}
}

// reset starts a new row without clearing the dense buffers.
func (acc *accumulator[C]) reset() {
	acc.stamp++
	acc.touched = acc.touched[:0]
}

// rowTimesMatrix computes the selected entries of u ⊗ B into (idx, val).
func rowTimesMatrix[A, B, C any](
	uIdx []int, uVal []A,
	b *Matrix[B],
	s Semiring[A, B, C],
	mask VectorMask, desc Descriptor,
	acc *accumulator[C],
) ([]int, []C) {
	acc.reset()
	for p, j := range uIdx {
		x := uVal[p]
		bRow := &b.rows[j]
		for q, k := range bRow.idx {
			if !selectedV(mask, desc, k) {
				continue
			}
			y := s.Mul(x, bRow.val[q])
			if acc.mark[k] != acc.stamp {
				acc.mark[k] = acc.stamp
				acc.val[k] = y
				acc.touched = append(acc.touched, k)
			} else {
				acc.val[k] = s.Add(acc.val[k], y)
			}
		}
	}
	if len(acc.touched) == 0 {
		return nil, nil
	}
	slices.Sort(acc.touched)
	idx := slices.Clone(acc.touched)
	val := make([]C, len(idx))
	for p, k := range idx {
		val[p] = acc.val[k]
	}

	return idx, val
}

// MxM returns C = A ⊗ B under s, keeping only positions selected by mask/desc.
// The result is a fresh matrix, so desc.Replace has no effect here; use
// MxMInto to write into an existing matrix.
func MxM[A, B, C any](
	a *Matrix[A], b *Matrix[B], s Semiring[A, B, C],
	mask MatrixMask, desc Descriptor, opts ...Option,
) (*Matrix[C], error) {
	const op = "MxM"
	if a == nil || b == nil {
		return nil, sparseErrorf(op, ErrNilMatrix)
	}
	if a.ncols != b.nrows {
		return nil, sparseErrorf(op, fmt.Errorf("A %dx%d, B %dx%d: %w",
			a.nrows, a.ncols, b.nrows, b.ncols, ErrDimensionMismatch))
	}
	if err := validateMatrixMask(mask, a.nrows, b.ncols); err != nil {
		return nil, sparseErrorf(op, err)
	}
	if err := s.validate(); err != nil {
		return nil, sparseErrorf(op, err)
	}
	o, err := gatherOptions(opts)
	if err != nil {
		return nil, sparseErrorf(op, err)
	}

	c := newMatrix[C](a.nrows, b.ncols)
	if err = multiplyRows(c, a, b, s, mask, desc, o.Workers); err != nil {
		return nil, sparseErrorf(op, err)
	}

	return c, nil
}

// multiplyRows fills c's rows, serially or in row blocks.
func multiplyRows[A, B, C any](
	c *Matrix[C], a *Matrix[A], b *Matrix[B], s Semiring[A, B, C],
	mask MatrixMask, desc Descriptor, workers int,
) error {
	rowRange := func(lo, hi int) {
		acc := newAccumulator[C](b.ncols)
		for i := lo; i < hi; i++ {
			aRow := &a.rows[i]
			c.rows[i].idx, c.rows[i].val = rowTimesMatrix(aRow.idx, aRow.val, b, s, rowOf(mask, i), desc, acc)
		}
	}

	if workers <= 1 || a.nrows < 2 {
		rowRange(0, a.nrows)
		return nil
	}

	block := (a.nrows + workers - 1) / workers
	var g errgroup.Group
	g.SetLimit(workers)
	for lo := 0; lo < a.nrows; lo += block {
		hi := min(lo+block, a.nrows)
		g.Go(func() error {
			rowRange(lo, hi)
			return nil
		})
	}

	return g.Wait()
}

// MxMInto performs c<mask,desc> = A ⊗ B. Selected positions of c take the
// product entry or become absent; unselected positions are kept, or cleared
// when desc.Replace. c may alias a, b or the mask.
func MxMInto[A, B, C any](
	c *Matrix[C], a *Matrix[A], b *Matrix[B], s Semiring[A, B, C],
	mask MatrixMask, desc Descriptor, opts ...Option,
) error {
	const op = "MxMInto"
	if c == nil {
		return sparseErrorf(op, ErrNilMatrix)
	}
	t, err := MxM(a, b, s, mask, desc, opts...)
	if err != nil {
		return sparseErrorf(op, err)
	}
	if c.nrows != t.nrows || c.ncols != t.ncols {
		return sparseErrorf(op, fmt.Errorf("output %dx%d, product %dx%d: %w",
			c.nrows, c.ncols, t.nrows, t.ncols, ErrDimensionMismatch))
	}
	writeMaskedMatrix(c, t, mask, desc)

	return nil
}

// VxM returns w = u ⊗ A under s (u treated as a row vector), keeping only
// positions selected by mask/desc.
func VxM[A, B, C any](
	u *Vector[A], a *Matrix[B], s Semiring[A, B, C],
	mask VectorMask, desc Descriptor,
) (*Vector[C], error) {
	const op = "VxM"
	if u == nil || a == nil {
		return nil, sparseErrorf(op, ErrNilMatrix)
	}
	if u.n != a.nrows {
		return nil, sparseErrorf(op, fmt.Errorf("u size %d, A %dx%d: %w",
			u.n, a.nrows, a.ncols, ErrDimensionMismatch))
	}
	if err := validateVectorMask(mask, a.ncols); err != nil {
		return nil, sparseErrorf(op, err)
	}
	if err := s.validate(); err != nil {
		return nil, sparseErrorf(op, err)
	}

	w := &Vector[C]{n: a.ncols}
	w.idx, w.val = rowTimesMatrix(u.idx, u.val, a, s, mask, desc, newAccumulator[C](a.ncols))

	return w, nil
}

// VxMInto performs w<mask,desc> = u ⊗ A. w may alias u or the mask, which is
// how frontier propagation advances in place.
func VxMInto[A, B, C any](
	w *Vector[C], u *Vector[A], a *Matrix[B], s Semiring[A, B, C],
	mask VectorMask, desc Descriptor,
) error {
	const op = "VxMInto"
	if w == nil {
		return sparseErrorf(op, ErrNilMatrix)
	}
	t, err := VxM(u, a, s, mask, desc)
	if err != nil {
		return sparseErrorf(op, err)
	}
	if w.n != t.n {
		return sparseErrorf(op, fmt.Errorf("output size %d, product size %d: %w", w.n, t.n, ErrDimensionMismatch))
	}
	writeMaskedVector(w, t, mask, desc)

	return nil
}

// MxV returns w = A ⊗ u under s (u treated as a column vector), keeping only
// positions selected by mask/desc. Each w(i) is a sorted-merge dot product of
// row i with u.
func MxV[A, B, C any](
	a *Matrix[A], u *Vector[B], s Semiring[A, B, C],
	mask VectorMask, desc Descriptor,
) (*Vector[C], error) {
	const op = "MxV"
	if a == nil || u == nil {
		return nil, sparseErrorf(op, ErrNilMatrix)
	}
	if a.ncols != u.n {
		return nil, sparseErrorf(op, fmt.Errorf("A %dx%d, u size %d: %w",
			a.nrows, a.ncols, u.n, ErrDimensionMismatch))
	}
	if err := validateVectorMask(mask, a.nrows); err != nil {
		return nil, sparseErrorf(op, err)
	}
	if err := s.validate(); err != nil {
		return nil, sparseErrorf(op, err)
	}

	w := &Vector[C]{n: a.nrows}
	for i := range a.rows {
		if !selectedV(mask, desc, i) {
			continue
		}
		row := &a.rows[i]
		var (
			acc   C
			found bool
		)
		for p, q := 0, 0; p < len(row.idx) && q < len(u.idx); {
			switch {
			case row.idx[p] < u.idx[q]:
				p++
			case row.idx[p] > u.idx[q]:
				q++
			default:
				y := s.Mul(row.val[p], u.val[q])
				if found {
					acc = s.Add(acc, y)
				} else {
					acc, found = y, true
				}
				p++
				q++
			}
		}
		if found {
			w.idx = append(w.idx, i)
			w.val = append(w.val, acc)
		}
	}

	return w, nil
}
