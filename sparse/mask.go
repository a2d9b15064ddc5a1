// SPDX-License-Identifier: MIT
// Package: sparse
//
// mask.go - structural masks and write descriptors.
//
// Contract:
//   - A mask is any *Vector[T] / *Matrix[T]; only its structure is read.
//   - Mask shape must equal the output shape (ErrDimensionMismatch otherwise).
//   - A nil mask selects every position; nil with Complement selects none.
//
// AI-Hints:
//   - BFS-style "visit once" frontiers use DescRSC with the visited set as mask.
//   - Pass an untyped nil for "no mask": a typed nil pointer stored in the
//     interface is not nil and will be dereferenced.

package sparse

// VectorMask is the structure of a sparse vector used to select output positions.
// It is implemented by every *Vector[T]; the method set is sealed.
type VectorMask interface {
	maskSize() int
	maskHas(i int) bool
	maskIndices() []int
}

// MatrixMask is the structure of a sparse matrix used to select output positions.
// It is implemented by every *Matrix[T]; the method set is sealed.
type MatrixMask interface {
	maskRows() int
	maskCols() int
	maskHas(i, j int) bool
	maskRowIndices(i int) []int
}

// Descriptor controls how a mask is read and what happens to output entries
// outside the selected positions.
//
//	Complement: select positions NOT present in the mask.
//	Replace:    clear unselected output entries (otherwise they are kept).
type Descriptor struct {
	Replace    bool
	Complement bool
}

// Named descriptors. Masks are always structural here; the "S" in the names
// is kept so call sites read like their GraphBLAS counterparts.
var (
	// DescDefault keeps unselected entries and selects positions present in the mask.
	DescDefault = Descriptor{}

	// DescS is an alias of DescDefault.
	DescS = Descriptor{}

	// DescRS clears unselected entries.
	DescRS = Descriptor{Replace: true}

	// DescSC selects positions absent from the mask and keeps the rest.
	DescSC = Descriptor{Complement: true}

	// DescRSC selects positions absent from the mask and clears the rest.
	DescRSC = Descriptor{Replace: true, Complement: true}
)

// selectedV reports whether position i passes mask under desc.
func selectedV(mask VectorMask, desc Descriptor, i int) bool {
	if mask == nil {
		return !desc.Complement
	}

	return mask.maskHas(i) != desc.Complement
}

// selectedM reports whether position (i,j) passes mask under desc.
func selectedM(mask MatrixMask, desc Descriptor, i, j int) bool {
	if mask == nil {
		return !desc.Complement
	}

	return mask.maskHas(i, j) != desc.Complement
}

// rowMask views row i of a matrix mask as a vector mask.
type rowMask struct {
	m MatrixMask
	i int
}

func (r rowMask) maskSize() int { return r.m.maskCols() }
func (r rowMask) maskHas(j int) bool { return r.m.maskHas(r.i, j) }
func (r rowMask) maskIndices() []int { return r.m.maskRowIndices(r.i) }

// rowOf returns the vector mask for row i, or nil when mask is nil.
func rowOf(mask MatrixMask, i int) VectorMask {
	if mask == nil {
		return nil
	}

	return rowMask{m: mask, i: i}
}
