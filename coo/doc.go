// SPDX-License-Identifier: MIT

// Package coo is the coordinate-list boundary of the module: a graph given as
// parallel row (I), column (J) and optional weight (V) lists plus an explicit
// size. It validates the lists, converts them into sparse.Matrix values for
// the engines and exports them to gonum graphs and dense matrices.
//
// Encoding
//
//	{"size": 3, "I": [0, 1], "J": [1, 2], "V": [0.5, 2]}
//
// The same field names are used for YAML. Rows/Cols may override Size for a
// rectangular matrix; engines reject such input with their non-square error.
//
// Values
//
//   - Bool() ignores V: every listed coordinate is a present true.
//   - Float() uses V, or weight 1 for every edge when V is empty.
//   - Matrix() picks Float() when V is present, Bool() otherwise, which is how
//     callers holding only a file reach the type-checked ...Any entry points.
//   - Duplicate coordinates resolve to the last occurrence.
package coo
