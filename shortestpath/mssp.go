// SPDX-License-Identifier: MIT
// Package: shortestpath
//
// mssp.go - bounded (min, +) relaxation from one or more sources.
//
// Contract:
//   - g is square; absent entries mean "no edge"; weights may be negative.
//   - Self-loops are forced to 0 on a private copy; g is never mutated.
//   - Exactly n-1 relaxations dists = dists ⊗ G, then one probe: any strict
//     decrease reports ErrNegativeCycle.
//
// Complexity: O(n · k · m) worst case for k sources and m edges.

package shortestpath

import (
	"fmt"
	"math"

	"github.com/katalvlaran/grblas/sparse"
)

func validateGraph(g *sparse.Matrix[float64]) error {
	if g == nil {
		return ErrGraphNil
	}
	if !g.Square() {
		return fmt.Errorf("%w: got %dx%d", ErrNonSquare, g.Rows(), g.Cols())
	}

	return nil
}

// withZeroDiagonal returns a copy of g whose self-distances are 0.
func withZeroDiagonal(g *sparse.Matrix[float64]) *sparse.Matrix[float64] {
	w := g.Dup()
	_ = w.SetDiag(0) // g validated square

	return w
}

// improves reports whether next holds an entry strictly below cur's value at
// the same position, or one cur lacks.
func improves(next, cur *sparse.Matrix[float64]) bool {
	found := false
	next.Each(func(i, j int, x float64) {
		if found {
			return
		}
		if y, ok := cur.Get(i, j); !ok || x < y {
			found = true
		}
	})

	return found
}

// SSSP returns the shortest distance from start to every vertex.
func SSSP(g *sparse.Matrix[float64], start int, opts ...Option) ([]float64, error) {
	res, err := MSSP(g, []int{start}, opts...)
	if err != nil {
		return nil, err
	}

	return res[0].Dist, nil
}

// MSSP returns one Distances per source, in the order of starts.
// Returns ErrGraphNil, ErrNonSquare, ErrStartOutOfRange, ErrNegativeCycle,
// ErrOptionViolation or the context error.
func MSSP(g *sparse.Matrix[float64], starts []int, opts ...Option) ([]Distances, error) {
	o, err := gatherOptions(opts)
	if err != nil {
		return nil, err
	}
	if err = validateGraph(g); err != nil {
		return nil, err
	}
	n, k := g.Rows(), len(starts)
	for _, s := range starts {
		if s < 0 || s >= n {
			return nil, fmt.Errorf("%w: %d not in [0,%d)", ErrStartOutOfRange, s, n)
		}
	}
	if k == 0 {
		return []Distances{}, nil
	}

	w := withZeroDiagonal(g)
	dists, _ := sparse.NewMatrix[float64](k, n)
	for r, s := range starts {
		_ = dists.Set(r, s, 0)
	}

	minPlus := sparse.MinPlus()
	workers := sparse.WithWorkers(o.Workers)
	for round := 1; round < n; round++ {
		if err = o.Ctx.Err(); err != nil {
			return nil, fmt.Errorf("shortestpath: round %d: %w", round, err)
		}
		if dists, err = sparse.MxM(dists, w, minPlus, nil, sparse.DescDefault, workers); err != nil {
			return nil, fmt.Errorf("shortestpath: round %d: %w", round, err)
		}
		o.Logger.Debug("mssp round", "round", round, "nvals", dists.NVals())
	}

	probe, err := sparse.MxM(dists, w, minPlus, nil, sparse.DescDefault, workers)
	if err != nil {
		return nil, fmt.Errorf("shortestpath: probe: %w", err)
	}
	if improves(probe, dists) {
		o.Logger.Warn("negative cycle", "sources", starts)
		return nil, fmt.Errorf("%w: reachable from sources %v", ErrNegativeCycle, starts)
	}

	dense := dists.Dense(math.Inf(1))
	out := make([]Distances, k)
	for r, s := range starts {
		out[r] = Distances{Source: s, Dist: dense[r]}
	}

	return out, nil
}

// SSSPAny is SSSP for an untyped matrix such as coo.Graph.Matrix().
func SSSPAny(m any, start int, opts ...Option) ([]float64, error) {
	g, err := floatMatrix(m)
	if err != nil {
		return nil, err
	}

	return SSSP(g, start, opts...)
}

// MSSPAny is MSSP for an untyped matrix.
func MSSPAny(m any, starts []int, opts ...Option) ([]Distances, error) {
	g, err := floatMatrix(m)
	if err != nil {
		return nil, err
	}

	return MSSP(g, starts, opts...)
}

// floatMatrix narrows m to a weighted matrix.
func floatMatrix(m any) (*sparse.Matrix[float64], error) {
	switch g := m.(type) {
	case nil:
		return nil, ErrGraphNil
	case *sparse.Matrix[float64]:
		return g, nil
	default:
		return nil, fmt.Errorf("%w: got %T", ErrTypeMismatch, m)
	}
}
