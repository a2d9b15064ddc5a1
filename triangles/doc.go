// SPDX-License-Identifier: MIT

// Package triangles counts triangles of an undirected graph given as a
// symmetric sparse adjacency matrix, using masked (+, pair) products.
//
// Methods
//
//   - ForEachVertex: C = (G ⊗ G) masked by G. Row i of C sums to twice the
//     number of triangles through i; the count is ⌈sum/2⌉.
//   - Cohen:  C = (L ⊗ U) masked by G with L, U the strictly lower and
//     upper triangles of G. Every triangle is counted twice; total ⌈sum/2⌉.
//   - Sandia: C = (L ⊗ L) masked by L. Every triangle a<b<c is counted once,
//     through its middle vertex.
//
// Counts are structural: every stored entry marks an edge, including false.
// Self-loops close no triangle; Cohen and Sandia skip them through the strict
// triangular split and ForEachVertex drops the diagonal before multiplying.
// Weighted graphs go through coo.Graph.Bool first; CountAny and
// ForEachVertexAny reject any other value domain.
//
// Errors
//
//   - ErrGraphNil         nil matrix.
//   - ErrNonSquare        rows != cols.
//   - ErrAsymmetricGraph  the matrix is not symmetric (directed graph).
//   - ErrUnknownMethod    Count or ParseMethod given an unknown method.
//   - ErrTypeMismatch     CountAny/ForEachVertexAny given a non-bool matrix.
//   - ErrOptionViolation  invalid option value.
package triangles
