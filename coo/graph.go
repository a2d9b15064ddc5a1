// SPDX-License-Identifier: MIT

package coo

import (
	"fmt"
	"math"
	"slices"

	"github.com/katalvlaran/grblas/sparse"
)

// Graph is a coordinate-list adjacency matrix.
type Graph struct {
	// Size is the vertex count; the matrix is Size×Size unless Rows/Cols are set.
	Size int `json:"size" yaml:"size"`

	// Rows and Cols, when positive, override Size for a rectangular shape.
	Rows int `json:"rows,omitempty" yaml:"rows,omitempty"`
	Cols int `json:"cols,omitempty" yaml:"cols,omitempty"`

	I []int     `json:"I" yaml:"I"`
	J []int     `json:"J" yaml:"J"`
	V []float64 `json:"V,omitempty" yaml:"V,omitempty"`
}

// NewBool returns an unweighted n-vertex graph with edges I[k]→J[k].
func NewBool(n int, I, J []int) *Graph {
	return &Graph{Size: n, I: slices.Clone(I), J: slices.Clone(J)}
}

// NewFloat returns a weighted n-vertex graph with edges I[k]→J[k] of weight V[k].
func NewFloat(n int, I, J []int, V []float64) *Graph {
	return &Graph{Size: n, I: slices.Clone(I), J: slices.Clone(J), V: slices.Clone(V)}
}

// Shape returns the matrix dimensions.
func (g *Graph) Shape() (rows, cols int) {
	rows, cols = g.Size, g.Size
	if g.Rows > 0 {
		rows = g.Rows
	}
	if g.Cols > 0 {
		cols = g.Cols
	}

	return rows, cols
}

// Weighted reports whether the graph carries weights.
func (g *Graph) Weighted() bool { return len(g.V) > 0 }

// Edges returns the number of listed coordinates, duplicates included.
func (g *Graph) Edges() int { return len(g.I) }

// Validate checks sizes, list lengths, coordinate ranges and weights.
func (g *Graph) Validate() error {
	if g.Size < 0 || g.Rows < 0 || g.Cols < 0 {
		return fmt.Errorf("%w: size=%d rows=%d cols=%d", ErrBadSize, g.Size, g.Rows, g.Cols)
	}
	if len(g.I) != len(g.J) {
		return fmt.Errorf("%w: len(I)=%d len(J)=%d", ErrLengthMismatch, len(g.I), len(g.J))
	}
	if len(g.V) > 0 && len(g.V) != len(g.I) {
		return fmt.Errorf("%w: len(I)=%d len(V)=%d", ErrLengthMismatch, len(g.I), len(g.V))
	}
	rows, cols := g.Shape()
	for k := range g.I {
		if g.I[k] < 0 || g.I[k] >= rows || g.J[k] < 0 || g.J[k] >= cols {
			return fmt.Errorf("%w: (%d,%d) at position %d in %dx%d", ErrBadIndex, g.I[k], g.J[k], k, rows, cols)
		}
	}
	for k, w := range g.V {
		// absence already means "no edge"; an infinite weight would be stored
		if math.IsNaN(w) || math.IsInf(w, 0) {
			return fmt.Errorf("%w: %v at position %d", ErrInvalidWeight, w, k)
		}
	}

	return nil
}

// Bool converts g into a boolean adjacency matrix, ignoring weights.
func (g *Graph) Bool() (*sparse.Matrix[bool], error) {
	if err := g.Validate(); err != nil {
		return nil, err
	}
	rows, cols := g.Shape()
	V := make([]bool, len(g.I))
	for k := range V {
		V[k] = true
	}
	m, err := sparse.FromTriples(rows, cols, g.I, g.J, V)
	if err != nil {
		return nil, fmt.Errorf("coo: Bool: %w", err)
	}

	return m, nil
}

// Float converts g into a weighted adjacency matrix. Without V every edge
// weighs 1.
func (g *Graph) Float() (*sparse.Matrix[float64], error) {
	if err := g.Validate(); err != nil {
		return nil, err
	}
	rows, cols := g.Shape()
	V := g.V
	if len(V) == 0 {
		V = make([]float64, len(g.I))
		for k := range V {
			V[k] = 1
		}
	}
	m, err := sparse.FromTriples(rows, cols, g.I, g.J, V)
	if err != nil {
		return nil, fmt.Errorf("coo: Float: %w", err)
	}

	return m, nil
}

// Matrix returns Float() for a weighted graph and Bool() otherwise, as an
// untyped value for the engines' ...Any entry points.
func (g *Graph) Matrix() (any, error) {
	if g.Weighted() {
		return g.Float()
	}

	return g.Bool()
}

// Symmetrize returns a copy of g with every edge mirrored, weights included.
func (g *Graph) Symmetrize() *Graph {
	out := &Graph{Size: g.Size, Rows: g.Rows, Cols: g.Cols}
	for k := range g.I {
		out.I = append(out.I, g.I[k], g.J[k])
		out.J = append(out.J, g.J[k], g.I[k])
		if g.Weighted() {
			out.V = append(out.V, g.V[k], g.V[k])
		}
	}

	return out
}
