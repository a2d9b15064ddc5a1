// SPDX-License-Identifier: MIT

package triangles

import (
	"fmt"

	"github.com/katalvlaran/grblas/sparse"
)

// IsUndirected reports whether g is square and equal to its transpose.
func IsUndirected[T comparable](g *sparse.Matrix[T]) bool {
	return sparse.IsSymmetric(g)
}

// validate checks every precondition shared by the counting methods.
func validate(g *sparse.Matrix[bool]) error {
	if g == nil {
		return ErrGraphNil
	}
	if !g.Square() {
		return fmt.Errorf("%w: got %dx%d", ErrNonSquare, g.Rows(), g.Cols())
	}
	if !sparse.IsSymmetric(g) {
		return ErrAsymmetricGraph
	}

	return nil
}

// ceilHalf is ⌈x/2⌉ for x ≥ 0.
func ceilHalf(x int) int { return (x + 1) / 2 }

// offDiagonal drops self-loops, which close no triangle.
func offDiagonal(g *sparse.Matrix[bool]) *sparse.Matrix[bool] {
	return sparse.Select(g, func(i, j int, _ bool) bool { return i != j })
}

// ForEachVertex returns the number of triangles through every vertex.
// Self-loops are ignored.
func ForEachVertex(g *sparse.Matrix[bool], opts ...Option) ([]int, error) {
	o, err := gatherOptions(opts)
	if err != nil {
		return nil, err
	}
	if err = validate(g); err != nil {
		return nil, err
	}

	a := offDiagonal(g)
	c, err := sparse.MxM(a, a, sparse.PlusPair[bool, bool, int](), a, sparse.DescDefault, sparse.WithWorkers(o.Workers))
	if err != nil {
		return nil, fmt.Errorf("triangles: ForEachVertex: %w", err)
	}
	out := make([]int, g.Rows())
	sparse.ReduceRows(c, sparse.Plus[int]).Each(func(i, wedges int) {
		out[i] = ceilHalf(wedges)
	})
	o.Logger.Debug("triangles per vertex", "n", g.Rows(), "closed_wedges", c.NVals())

	return out, nil
}

// Cohen returns the triangle count of g via the (L ⊗ U) masked product.
func Cohen(g *sparse.Matrix[bool], opts ...Option) (int, error) {
	o, err := gatherOptions(opts)
	if err != nil {
		return 0, err
	}
	if err = validate(g); err != nil {
		return 0, err
	}

	l, u := sparse.Tril(g, -1), sparse.Triu(g, 1)
	c, err := sparse.MxM(l, u, sparse.PlusPair[bool, bool, int](), g, sparse.DescDefault, sparse.WithWorkers(o.Workers))
	if err != nil {
		return 0, fmt.Errorf("triangles: Cohen: %w", err)
	}
	total := ceilHalf(sparse.Reduce(c, sparse.Plus[int], 0))
	o.Logger.Debug("triangles", "method", MethodCohen.String(), "count", total)

	return total, nil
}

// Sandia returns the triangle count of g via the (L ⊗ L) masked product.
func Sandia(g *sparse.Matrix[bool], opts ...Option) (int, error) {
	o, err := gatherOptions(opts)
	if err != nil {
		return 0, err
	}
	if err = validate(g); err != nil {
		return 0, err
	}

	l := sparse.Tril(g, -1)
	c, err := sparse.MxM(l, l, sparse.PlusPair[bool, bool, int](), l, sparse.DescDefault, sparse.WithWorkers(o.Workers))
	if err != nil {
		return 0, fmt.Errorf("triangles: Sandia: %w", err)
	}
	total := sparse.Reduce(c, sparse.Plus[int], 0)
	o.Logger.Debug("triangles", "method", MethodSandia.String(), "count", total)

	return total, nil
}

// Count returns the triangle count of g using method.
func Count(g *sparse.Matrix[bool], method Method, opts ...Option) (int, error) {
	switch method {
	case MethodCohen:
		return Cohen(g, opts...)
	case MethodSandia:
		return Sandia(g, opts...)
	case MethodForEachVertex:
		per, err := ForEachVertex(g, opts...)
		if err != nil {
			return 0, err
		}

		return Total(per), nil
	default:
		return 0, fmt.Errorf("%w: %s", ErrUnknownMethod, method)
	}
}

// Total turns per-vertex counts into the graph count: every triangle is
// seen from its three corners.
func Total(perVertex []int) int {
	sum := 0
	for _, x := range perVertex {
		sum += x
	}

	return sum / 3
}

// CountAny is Count for an untyped matrix such as coo.Graph.Matrix().
// Anything but *sparse.Matrix[bool] is ErrTypeMismatch.
func CountAny(m any, method Method, opts ...Option) (int, error) {
	g, err := boolMatrix(m)
	if err != nil {
		return 0, err
	}

	return Count(g, method, opts...)
}

// ForEachVertexAny is ForEachVertex for an untyped matrix.
func ForEachVertexAny(m any, opts ...Option) ([]int, error) {
	g, err := boolMatrix(m)
	if err != nil {
		return nil, err
	}

	return ForEachVertex(g, opts...)
}

func boolMatrix(m any) (*sparse.Matrix[bool], error) {
	switch g := m.(type) {
	case nil:
		return nil, ErrGraphNil
	case *sparse.Matrix[bool]:
		return g, nil
	default:
		return nil, fmt.Errorf("%w: got %T", ErrTypeMismatch, m)
	}
}
