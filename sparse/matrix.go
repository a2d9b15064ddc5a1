// SPDX-License-Identifier: MIT
// Package: sparse
//
// matrix.go - sparse matrix container (compressed rows).
//
// Layout:
//   - rows[i] is a Vector of dimension ncols holding row i's present entries.
//   - Row-major iteration order (i asc, then j asc) is the canonical order used by
//     Each, Dense, Reduce and every kernel; results are reproducible.
//
// Notes:
//   - Square() reports shape only. Symmetry is a property of the data and is
//     checked on demand by IsSymmetric.

package sparse

import (
	"fmt"
	"slices"
	"sort"
)

// Matrix is a sparse rows×cols matrix storing only present entries.
type Matrix[T any] struct {
	nrows, ncols int
	rows         []Vector[T]
}

// NewMatrix returns an empty rows×cols matrix (rows, cols >= 0).
func NewMatrix[T any](rows, cols int) (*Matrix[T], error) {
	if rows < 0 || cols < 0 {
		return nil, sparseErrorf("NewMatrix", fmt.Errorf("%dx%d: %w", rows, cols, ErrBadShape))
	}

	return newMatrix[T](rows, cols), nil
}

// newMatrix allocates without validation; callers guarantee non-negative dims.
func newMatrix[T any](rows, cols int) *Matrix[T] {
	m := &Matrix[T]{nrows: rows, ncols: cols, rows: make([]Vector[T], rows)}
	for i := range m.rows {
		m.rows[i].n = cols
	}

	return m
}

// FromTriples builds a rows×cols matrix from coordinate lists.
// Duplicate (i,j) pairs resolve to the last occurrence.
// Complexity: O(nnz log nnz).
func FromTriples[T any](rows, cols int, I, J []int, V []T) (*Matrix[T], error) {
	m, err := NewMatrix[T](rows, cols)
	if err != nil {
		return nil, sparseErrorf("FromTriples", err)
	}
	if len(I) != len(J) || len(I) != len(V) {
		return nil, sparseErrorf("FromTriples",
			fmt.Errorf("len(I)=%d len(J)=%d len(V)=%d: %w", len(I), len(J), len(V), ErrDimensionMismatch))
	}

	// Bucket triple positions by row; a stable sort by column keeps input order
	// among duplicates so the last one can win.
	byRow := make([][]int, rows)
	for p := range I {
		if err = validateIndex(I[p], rows); err != nil {
			return nil, sparseErrorf("FromTriples: row", err)
		}
		if err = validateIndex(J[p], cols); err != nil {
			return nil, sparseErrorf("FromTriples: col", err)
		}
		byRow[I[p]] = append(byRow[I[p]], p)
	}
	for i, ps := range byRow {
		sort.SliceStable(ps, func(a, b int) bool { return J[ps[a]] < J[ps[b]] })
		r := &m.rows[i]
		for k, p := range ps {
			if k+1 < len(ps) && J[ps[k+1]] == J[p] {
				continue // a later duplicate overrides this one
			}
			r.idx = append(r.idx, J[p])
			r.val = append(r.val, V[p])
		}
	}

	return m, nil
}

// Rows returns the number of rows.
func (m *Matrix[T]) Rows() int { return m.nrows }

// Cols returns the number of columns.
func (m *Matrix[T]) Cols() int { return m.ncols }

// Square reports whether Rows() == Cols().
func (m *Matrix[T]) Square() bool { return m.nrows == m.ncols }

// NVals returns the number of present entries.
func (m *Matrix[T]) NVals() int {
	total := 0
	for i := range m.rows {
		total += len(m.rows[i].idx)
	}

	return total
}

// Get returns the value at (i,j) and whether it is present.
func (m *Matrix[T]) Get(i, j int) (T, bool) {
	if i < 0 || i >= m.nrows {
		var zero T
		return zero, false
	}

	return m.rows[i].Get(j)
}

// Has reports whether (i,j) holds a value.
func (m *Matrix[T]) Has(i, j int) bool {
	_, ok := m.Get(i, j)

	return ok
}

// Set stores x at (i,j).
func (m *Matrix[T]) Set(i, j int, x T) error {
	if err := validateIndex(i, m.nrows); err != nil {
		return sparseErrorf("Matrix.Set: row", err)
	}
	if err := m.rows[i].Set(j, x); err != nil {
		return sparseErrorf("Matrix.Set: col", err)
	}

	return nil
}

// Remove deletes the entry at (i,j); removing an absent entry is a no-op.
func (m *Matrix[T]) Remove(i, j int) error {
	if err := validateIndex(i, m.nrows); err != nil {
		return sparseErrorf("Matrix.Remove: row", err)
	}
	if err := m.rows[i].Remove(j); err != nil {
		return sparseErrorf("Matrix.Remove: col", err)
	}

	return nil
}

// Clear removes every entry, keeping the shape.
func (m *Matrix[T]) Clear() {
	for i := range m.rows {
		m.rows[i].Clear()
	}
}

// Each calls fn for every present entry in row-major order.
func (m *Matrix[T]) Each(fn func(i, j int, x T)) {
	for i := range m.rows {
		r := &m.rows[i]
		for p, j := range r.idx {
			fn(i, j, r.val[p])
		}
	}
}

// Triples returns the coordinate lists of m in row-major order.
func (m *Matrix[T]) Triples() (I, J []int, V []T) {
	nv := m.NVals()
	I, J, V = make([]int, 0, nv), make([]int, 0, nv), make([]T, 0, nv)
	m.Each(func(i, j int, x T) {
		I = append(I, i)
		J = append(J, j)
		V = append(V, x)
	})

	return I, J, V
}

// Dup returns a deep copy of m.
func (m *Matrix[T]) Dup() *Matrix[T] {
	out := &Matrix[T]{nrows: m.nrows, ncols: m.ncols, rows: make([]Vector[T], m.nrows)}
	for i := range m.rows {
		out.rows[i] = Vector[T]{n: m.ncols, idx: slices.Clone(m.rows[i].idx), val: slices.Clone(m.rows[i].val)}
	}

	return out
}

// Dense expands m into a rows×cols grid, filling absent positions with absent.
func (m *Matrix[T]) Dense(absent T) [][]T {
	out := make([][]T, m.nrows)
	for i := range m.rows {
		out[i] = m.rows[i].Dense(absent)
	}

	return out
}

// AssignScalar writes x into every selected position: m<mask,desc> = x.
func (m *Matrix[T]) AssignScalar(x T, mask MatrixMask, desc Descriptor) error {
	if err := validateMatrixMask(mask, m.nrows, m.ncols); err != nil {
		return sparseErrorf("Matrix.AssignScalar", err)
	}
	for i := range m.rows {
		// Row-level assignment is the vector kernel on the row view of the mask.
		_ = m.rows[i].AssignScalar(x, rowOf(mask, i), desc) // shapes validated above
	}

	return nil
}

// Assign copies the selected entries of src into m: m<mask,desc> = src.
func (m *Matrix[T]) Assign(src *Matrix[T], mask MatrixMask, desc Descriptor) error {
	if err := validateSameShape(m, src); err != nil {
		return sparseErrorf("Matrix.Assign", err)
	}
	if err := validateMatrixMask(mask, m.nrows, m.ncols); err != nil {
		return sparseErrorf("Matrix.Assign", err)
	}
	for i := range m.rows {
		_ = m.rows[i].Assign(&src.rows[i], rowOf(mask, i), desc) // shapes validated above
	}

	return nil
}

// writeMaskedMatrix performs c<mask,desc> = t row by row; every entry of t
// must already be selected.
func writeMaskedMatrix[T any](c, t *Matrix[T], mask MatrixMask, desc Descriptor) {
	for i := range c.rows {
		writeMaskedVector(&c.rows[i], &t.rows[i], rowOf(mask, i), desc)
	}
}

func (m *Matrix[T]) maskRows() int { return m.nrows }
func (m *Matrix[T]) maskCols() int { return m.ncols }
func (m *Matrix[T]) maskHas(i, j int) bool { return m.Has(i, j) }
func (m *Matrix[T]) maskRowIndices(i int) []int { return m.rows[i].idx }
