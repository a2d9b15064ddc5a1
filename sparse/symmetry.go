// SPDX-License-Identifier: MIT
// Package: sparse
//
// symmetry.go - structural and value equality checks.

package sparse

import "slices"

// IsSymmetric reports whether m is square and m(i,j) == m(j,i) for every
// present entry, including that (j,i) is present whenever (i,j) is.
// Complexity: O(nvals · log(row length)).
func IsSymmetric[T comparable](m *Matrix[T]) bool {
	if m == nil || !m.Square() {
		return false
	}
	for i := range m.rows {
		r := &m.rows[i]
		for p, j := range r.idx {
			if j <= i {
				continue
			}
			y, ok := m.rows[j].Get(i)
			if !ok || y != r.val[p] {
				return false
			}
		}
	}
	// Upper entries mirror into the lower half; the lower half must hold nothing else.
	lower, upper := 0, 0
	m.Each(func(i, j int, _ T) {
		switch {
		case j < i:
			lower++
		case j > i:
			upper++
		}
	})

	return lower == upper
}

// Equal reports whether a and b have the same shape, structure and values.
func Equal[T comparable](a, b *Matrix[T]) bool {
	if validateSameShape(a, b) != nil {
		return false
	}
	for i := range a.rows {
		if !VectorEqual(&a.rows[i], &b.rows[i]) {
			return false
		}
	}

	return true
}

// VectorEqual reports whether u and v have the same size, structure and values.
func VectorEqual[T comparable](u, v *Vector[T]) bool {
	if validateSameSize(u, v) != nil {
		return false
	}

	return slices.Equal(u.idx, v.idx) && slices.Equal(u.val, v.val)
}
