// SPDX-License-Identifier: MIT
// Package: sparse
//
// vector.go - sparse vector container.
//
// Layout:
//   - idx holds present positions in strictly increasing order, each in [0,n).
//   - val[k] is the value stored at idx[k].
//
// Complexity:
//   - Get/Has: O(log nvals) binary search.
//   - Set/Remove: O(nvals) worst case (slice shift); fine for frontier-sized writes.
//   - Each/Dense: O(nvals) / O(n).

package sparse

import (
	"fmt"
	"slices"
)

// Vector is a sparse vector of dimension n storing only present entries.
type Vector[T any] struct {
	n   int
	idx []int
	val []T
}

// NewVector returns an empty vector of dimension n (n >= 0).
func NewVector[T any](n int) (*Vector[T], error) {
	if n < 0 {
		return nil, sparseErrorf("NewVector", fmt.Errorf("n=%d: %w", n, ErrBadShape))
	}

	return &Vector[T]{n: n}, nil
}

// Size returns the dimension of v.
func (v *Vector[T]) Size() int { return v.n }

// NVals returns the number of present entries.
func (v *Vector[T]) NVals() int { return len(v.idx) }

// find returns the slot of i and whether it is present.
func (v *Vector[T]) find(i int) (int, bool) {
	return slices.BinarySearch(v.idx, i)
}

// Get returns the value at i and whether it is present.
// Out-of-range indices are reported as absent.
func (v *Vector[T]) Get(i int) (T, bool) {
	if p, ok := v.find(i); ok {
		return v.val[p], true
	}
	var zero T

	return zero, false
}

// Has reports whether position i holds a value.
func (v *Vector[T]) Has(i int) bool {
	_, ok := v.find(i)

	return ok
}

// Set stores x at position i, overwriting any present value.
func (v *Vector[T]) Set(i int, x T) error {
	if err := validateIndex(i, v.n); err != nil {
		return sparseErrorf("Vector.Set", err)
	}
	p, ok := v.find(i)
	if ok {
		v.val[p] = x
		return nil
	}
	v.idx = slices.Insert(v.idx, p, i)
	v.val = slices.Insert(v.val, p, x)

	return nil
}

// Remove deletes the entry at i; removing an absent entry is a no-op.
func (v *Vector[T]) Remove(i int) error {
	if err := validateIndex(i, v.n); err != nil {
		return sparseErrorf("Vector.Remove", err)
	}
	if p, ok := v.find(i); ok {
		v.idx = slices.Delete(v.idx, p, p+1)
		v.val = slices.Delete(v.val, p, p+1)
	}

	return nil
}

// Clear removes every entry, keeping the dimension.
func (v *Vector[T]) Clear() {
	v.idx = v.idx[:0]
	v.val = v.val[:0]
}

// Each calls fn for every present entry in increasing index order.
func (v *Vector[T]) Each(fn func(i int, x T)) {
	for p, i := range v.idx {
		fn(i, v.val[p])
	}
}

// Indices returns a copy of the present positions in increasing order.
func (v *Vector[T]) Indices() []int {
	return slices.Clone(v.idx)
}

// Dup returns a deep copy of v.
func (v *Vector[T]) Dup() *Vector[T] {
	return &Vector[T]{n: v.n, idx: slices.Clone(v.idx), val: slices.Clone(v.val)}
}

// Dense expands v into a slice of length n, filling absent positions with absent.
func (v *Vector[T]) Dense(absent T) []T {
	out := make([]T, v.n)
	for i := range out {
		out[i] = absent
	}
	for p, i := range v.idx {
		out[i] = v.val[p]
	}

	return out
}

// AssignScalar writes x into every selected position: v<mask,desc> = x.
// With desc.Replace, unselected entries are cleared.
func (v *Vector[T]) AssignScalar(x T, mask VectorMask, desc Descriptor) error {
	if err := validateVectorMask(mask, v.n); err != nil {
		return sparseErrorf("Vector.AssignScalar", err)
	}
	t := &Vector[T]{n: v.n}
	if mask != nil && !desc.Complement {
		// Selected set is exactly the mask structure: stay O(nvals(mask)).
		src := mask.maskIndices()
		t.idx = slices.Clone(src)
		t.val = make([]T, len(src))
		for p := range t.val {
			t.val[p] = x
		}
	} else {
		for i := 0; i < v.n; i++ {
			if selectedV(mask, desc, i) {
				t.idx = append(t.idx, i)
				t.val = append(t.val, x)
			}
		}
	}
	writeMaskedVector(v, t, mask, desc)

	return nil
}

// Assign copies the selected entries of src into v: v<mask,desc> = src.
// Selected positions absent from src become absent in v.
func (v *Vector[T]) Assign(src *Vector[T], mask VectorMask, desc Descriptor) error {
	if err := validateSameSize(v, src); err != nil {
		return sparseErrorf("Vector.Assign", err)
	}
	if err := validateVectorMask(mask, v.n); err != nil {
		return sparseErrorf("Vector.Assign", err)
	}
	t := &Vector[T]{n: v.n}
	for p, i := range src.idx {
		if selectedV(mask, desc, i) {
			t.idx = append(t.idx, i)
			t.val = append(t.val, src.val[p])
		}
	}
	writeMaskedVector(v, t, mask, desc)

	return nil
}

// writeMaskedVector performs w<mask,desc> = t, where every entry of t is
// already known to be selected. Selected positions take t's entry or become
// absent; unselected positions keep w's entry unless desc.Replace.
// The result is built aside and swapped in, so mask may alias w.
func writeMaskedVector[T any](w, t *Vector[T], mask VectorMask, desc Descriptor) {
	idx := make([]int, 0, len(w.idx)+len(t.idx))
	val := make([]T, 0, len(w.idx)+len(t.idx))
	a, b := 0, 0
	for a < len(w.idx) || b < len(t.idx) {
		switch {
		case b == len(t.idx) || (a < len(w.idx) && w.idx[a] < t.idx[b]):
			i := w.idx[a]
			if !desc.Replace && !selectedV(mask, desc, i) {
				idx = append(idx, i)
				val = append(val, w.val[a])
			}
			a++
		case a == len(w.idx) || t.idx[b] < w.idx[a]:
			idx = append(idx, t.idx[b])
			val = append(val, t.val[b])
			b++
		default: // same position: t wins, it is selected
			idx = append(idx, t.idx[b])
			val = append(val, t.val[b])
			a++
			b++
		}
	}
	w.idx, w.val = idx, val
}

func (v *Vector[T]) maskSize() int { return v.n }
func (v *Vector[T]) maskHas(i int) bool { return v.Has(i) }
func (v *Vector[T]) maskIndices() []int { return v.idx }
