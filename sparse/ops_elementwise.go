// SPDX-License-Identifier: MIT
// Package: sparse
//
// ops_elementwise.go - element-wise combine, apply, select and reductions.
//
// Pattern rules:
//   - EWiseAdd: union of structures. Both present → op(a,b); one present → that
//     value unchanged. absent ⊕ absent stays absent (no identity is stored).
//   - EWiseMult: intersection of structures; op(a,b) where both are present.
//   - Apply/Select preserve or shrink the structure; they never add entries.

package sparse

import (
	"fmt"
	"slices"
)

// mergeRows walks two sorted index lists and emits union (or intersection)
// entries filtered by mask.
func mergeRows[T any](
	aIdx []int, aVal []T, bIdx []int, bVal []T,
	op func(x, y T) T, union bool,
	mask VectorMask, desc Descriptor,
) ([]int, []T) {
	var (
		idx []int
		val []T
	)
	emit := func(i int, x T) {
		if selectedV(mask, desc, i) {
			idx = append(idx, i)
			val = append(val, x)
		}
	}
	p, q := 0, 0
	for p < len(aIdx) || q < len(bIdx) {
		switch {
		case q == len(bIdx) || (p < len(aIdx) && aIdx[p] < bIdx[q]):
			if union {
				emit(aIdx[p], aVal[p])
			}
			p++
		case p == len(aIdx) || bIdx[q] < aIdx[p]:
			if union {
				emit(bIdx[q], bVal[q])
			}
			q++
		default:
			emit(aIdx[p], op(aVal[p], bVal[q]))
			p++
			q++
		}
	}

	return idx, val
}

// ewise is the shared matrix driver for EWiseAdd/EWiseMult.
func ewise[T any](op string, a, b *Matrix[T], fn func(x, y T) T, union bool, mask MatrixMask, desc Descriptor) (*Matrix[T], error) {
	if err := validateSameShape(a, b); err != nil {
		return nil, sparseErrorf(op, err)
	}
	if err := validateMatrixMask(mask, a.nrows, a.ncols); err != nil {
		return nil, sparseErrorf(op, err)
	}
	if fn == nil {
		return nil, sparseErrorf(op, ErrNilSemiring)
	}
	c := newMatrix[T](a.nrows, a.ncols)
	for i := range c.rows {
		ar, br := &a.rows[i], &b.rows[i]
		c.rows[i].idx, c.rows[i].val = mergeRows(ar.idx, ar.val, br.idx, br.val, fn, union, rowOf(mask, i), desc)
	}

	return c, nil
}

// EWiseAdd returns the union-combine of a and b: op where both are present,
// the present value where only one is.
func EWiseAdd[T any](a, b *Matrix[T], op func(x, y T) T, mask MatrixMask, desc Descriptor) (*Matrix[T], error) {
	return ewise("EWiseAdd", a, b, op, true, mask, desc)
}

// EWiseMult returns the intersection-combine of a and b.
func EWiseMult[T any](a, b *Matrix[T], op func(x, y T) T, mask MatrixMask, desc Descriptor) (*Matrix[T], error) {
	return ewise("EWiseMult", a, b, op, false, mask, desc)
}

// VectorEWiseAdd is EWiseAdd for vectors.
func VectorEWiseAdd[T any](u, v *Vector[T], op func(x, y T) T, mask VectorMask, desc Descriptor) (*Vector[T], error) {
	return vectorEwise("VectorEWiseAdd", u, v, op, true, mask, desc)
}

// VectorEWiseMult is EWiseMult for vectors.
func VectorEWiseMult[T any](u, v *Vector[T], op func(x, y T) T, mask VectorMask, desc Descriptor) (*Vector[T], error) {
	return vectorEwise("VectorEWiseMult", u, v, op, false, mask, desc)
}

func vectorEwise[T any](op string, u, v *Vector[T], fn func(x, y T) T, union bool, mask VectorMask, desc Descriptor) (*Vector[T], error) {
	if err := validateSameSize(u, v); err != nil {
		return nil, sparseErrorf(op, err)
	}
	if err := validateVectorMask(mask, u.n); err != nil {
		return nil, sparseErrorf(op, err)
	}
	if fn == nil {
		return nil, sparseErrorf(op, ErrNilSemiring)
	}
	w := &Vector[T]{n: u.n}
	w.idx, w.val = mergeRows(u.idx, u.val, v.idx, v.val, fn, union, mask, desc)

	return w, nil
}

// Apply maps every selected present entry of a through f into a new matrix.
// f receives the entry's coordinates, which lets a frontier be relabeled by
// its own column index.
func Apply[S, T any](a *Matrix[S], f func(i, j int, x S) T, mask MatrixMask, desc Descriptor) (*Matrix[T], error) {
	const op = "Apply"
	if a == nil {
		return nil, sparseErrorf(op, ErrNilMatrix)
	}
	if f == nil {
		return nil, sparseErrorf(op, ErrNilSemiring)
	}
	if err := validateMatrixMask(mask, a.nrows, a.ncols); err != nil {
		return nil, sparseErrorf(op, err)
	}
	c := newMatrix[T](a.nrows, a.ncols)
	a.Each(func(i, j int, x S) {
		if selectedM(mask, desc, i, j) {
			r := &c.rows[i]
			r.idx = append(r.idx, j)
			r.val = append(r.val, f(i, j, x))
		}
	})

	return c, nil
}

// Convert maps every present entry of a through f, keeping the structure.
func Convert[S, T any](a *Matrix[S], f func(x S) T) *Matrix[T] {
	c := newMatrix[T](a.nrows, a.ncols)
	for i := range a.rows {
		r := &a.rows[i]
		c.rows[i].idx = slices.Clone(r.idx)
		c.rows[i].val = make([]T, len(r.val))
		for p, x := range r.val {
			c.rows[i].val[p] = f(x)
		}
	}

	return c
}

// Select returns the entries of a for which keep reports true.
func Select[T any](a *Matrix[T], keep func(i, j int, x T) bool) *Matrix[T] {
	c := newMatrix[T](a.nrows, a.ncols)
	a.Each(func(i, j int, x T) {
		if keep(i, j, x) {
			r := &c.rows[i]
			r.idx = append(r.idx, j)
			r.val = append(r.val, x)
		}
	})

	return c
}

// Tril returns the entries with j-i <= k. Tril(a, -1) is the strictly lower part.
func Tril[T any](a *Matrix[T], k int) *Matrix[T] {
	return Select(a, func(i, j int, _ T) bool { return j-i <= k })
}

// Triu returns the entries with j-i >= k. Triu(a, 1) is the strictly upper part.
func Triu[T any](a *Matrix[T], k int) *Matrix[T] {
	return Select(a, func(i, j int, _ T) bool { return j-i >= k })
}

// Pattern returns the structure of a as a matrix of true values.
func Pattern[T any](a *Matrix[T]) *Matrix[bool] {
	return Convert(a, func(T) bool { return true })
}

// Reduce folds every present entry of a with add, starting from zero.
// Row-major order.
func Reduce[T any](a *Matrix[T], add func(x, y T) T, zero T) T {
	acc := zero
	a.Each(func(_, _ int, x T) { acc = add(acc, x) })

	return acc
}

// ReduceRows folds each row of a with add. Empty rows stay absent.
func ReduceRows[T any](a *Matrix[T], add func(x, y T) T) *Vector[T] {
	w := &Vector[T]{n: a.nrows}
	for i := range a.rows {
		r := &a.rows[i]
		if len(r.idx) == 0 {
			continue
		}
		acc := r.val[0]
		for _, x := range r.val[1:] {
			acc = add(acc, x)
		}
		w.idx = append(w.idx, i)
		w.val = append(w.val, acc)
	}

	return w
}

// VectorReduce folds every present entry of v with add, starting from zero.
func VectorReduce[T any](v *Vector[T], add func(x, y T) T, zero T) T {
	acc := zero
	for _, x := range v.val {
		acc = add(acc, x)
	}

	return acc
}

// ExtractRow returns row k of a as a vector of size Cols().
func ExtractRow[T any](a *Matrix[T], k int) (*Vector[T], error) {
	if a == nil {
		return nil, sparseErrorf("ExtractRow", ErrNilMatrix)
	}
	if err := validateIndex(k, a.nrows); err != nil {
		return nil, sparseErrorf("ExtractRow", err)
	}

	return a.rows[k].Dup(), nil
}

// ExtractCol returns column k of a as a vector of size Rows().
func ExtractCol[T any](a *Matrix[T], k int) (*Vector[T], error) {
	if a == nil {
		return nil, sparseErrorf("ExtractCol", ErrNilMatrix)
	}
	if err := validateIndex(k, a.ncols); err != nil {
		return nil, sparseErrorf("ExtractCol", err)
	}
	w := &Vector[T]{n: a.nrows}
	for i := range a.rows {
		if x, ok := a.rows[i].Get(k); ok {
			w.idx = append(w.idx, i)
			w.val = append(w.val, x)
		}
	}

	return w, nil
}

// RowMatrix returns row k of a as a 1×Cols() matrix.
func RowMatrix[T any](a *Matrix[T], k int) (*Matrix[T], error) {
	row, err := ExtractRow(a, k)
	if err != nil {
		return nil, sparseErrorf("RowMatrix", err)
	}

	return &Matrix[T]{nrows: 1, ncols: a.ncols, rows: []Vector[T]{*row}}, nil
}

// ColMatrix returns column k of a as a Rows()×1 matrix.
func ColMatrix[T any](a *Matrix[T], k int) (*Matrix[T], error) {
	col, err := ExtractCol(a, k)
	if err != nil {
		return nil, sparseErrorf("ColMatrix", err)
	}
	c := newMatrix[T](a.nrows, 1)
	for p, i := range col.idx {
		c.rows[i].idx = []int{0}
		c.rows[i].val = []T{col.val[p]}
	}

	return c, nil
}

// Transpose returns aᵀ.
func Transpose[T any](a *Matrix[T]) *Matrix[T] {
	c := newMatrix[T](a.ncols, a.nrows)
	// Row-major scan emits each column's entries in increasing row order.
	a.Each(func(i, j int, x T) {
		r := &c.rows[j]
		r.idx = append(r.idx, i)
		r.val = append(r.val, x)
	})

	return c
}

// SetDiag stores x at every (i,i) of a square matrix.
func (m *Matrix[T]) SetDiag(x T) error {
	if !m.Square() {
		return sparseErrorf("Matrix.SetDiag", fmt.Errorf("%dx%d: %w", m.nrows, m.ncols, ErrDimensionMismatch))
	}
	for i := range m.rows {
		_ = m.rows[i].Set(i, x) // i < ncols on a square matrix
	}

	return nil
}
