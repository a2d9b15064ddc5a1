// SPDX-License-Identifier: MIT

// Package sparse is the linear-algebra core behind the graph engines: sparse
// vectors and matrices that store only present entries, semiring-parameterized
// products, element-wise combine, masked assignment and a handful of structural
// helpers (triangular selection, row/column extraction, reductions).
//
// Absence is not a value. A position that was never written carries nothing,
// which is different from a present zero or a present false. Each semiring
// documents how absence reads in its domain: "false" for LorLand, +Inf for
// MinPlus, "not reached" for MinFirst, zero for PlusTimes/PlusPair.
//
// Masks restrict which output positions an operation writes. Only the mask's
// structure (which positions are present) is consulted, never its values, so a
// *Vector[int] can mask an operation over bool vectors. A Descriptor chooses
// between selecting positions in the mask or outside it (Complement), and
// between keeping or clearing unselected output entries (Replace):
//
//	selected(p) = mask == nil ? !Complement : mask.has(p) != Complement
//
// Products:
//
//	C := MxM(A, B, s, mask, desc)      C(i,k) = ⊕_j A(i,j) ⊗ B(j,k)
//	w := VxM(u, A, s, mask, desc)      w(k)   = ⊕_j u(j)   ⊗ A(j,k)
//	w := MxV(A, u, s, mask, desc)      w(i)   = ⊕_j A(i,j) ⊗ u(j)
//
// An output position exists only if at least one pair of operands was present;
// the additive identity is never materialized. Accumulation runs in increasing
// j order, so results are bit-identical between runs and between the serial
// and the WithWorkers row-block paths.
//
// Errors are package sentinels (ErrDimensionMismatch, ErrOutOfRange, ...)
// wrapped with the operation name; match them with errors.Is.
package sparse
