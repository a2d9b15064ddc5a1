// SPDX-License-Identifier: MIT

package coo

import "errors"

var (
	// ErrBadSize indicates a negative size, rows or cols.
	ErrBadSize = errors.New("coo: invalid size")

	// ErrLengthMismatch indicates I, J (and V when present) of different lengths.
	ErrLengthMismatch = errors.New("coo: coordinate lists differ in length")

	// ErrBadIndex indicates a coordinate outside the matrix shape.
	ErrBadIndex = errors.New("coo: coordinate out of range")

	// ErrInvalidWeight indicates a NaN or infinite weight.
	ErrInvalidWeight = errors.New("coo: weight must be finite")

	// ErrUnknownFormat indicates a file extension other than .json, .yaml or .yml.
	ErrUnknownFormat = errors.New("coo: unknown file format")
)
