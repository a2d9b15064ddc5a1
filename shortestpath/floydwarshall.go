// SPDX-License-Identifier: MIT
// Package: shortestpath
//
// floydwarshall.go - all-pairs distances as n sparse rank-1 updates.
//
// Contract:
//   - Square g; absent = unreachable; diagonal forced to 0 on a copy.
//   - For k = 0..n-1: step = D(:,k) ⊗ D(k,:) under (min, +), then
//     D = D ⊕min step. Only rows that reach k and columns k reaches are touched.
//   - A second pass whose step would strictly lower any entry reports
//     ErrNegativeCycle.
//
// Determinism: fixed k order; every update is a min.
//
// Complexity: O(Σ_k |col_k|·|row_k|) ≤ O(n³) time, O(nnz(D)) memory.

package shortestpath

import (
	"fmt"
	"math"

	"github.com/katalvlaran/grblas/sparse"
)

// pivot returns D(:,k) ⊗ D(k,:), the paths routed through k.
func pivot(d *sparse.Matrix[float64], k int, s sparse.Semiring[float64, float64, float64], workers sparse.Option) (*sparse.Matrix[float64], error) {
	col, err := sparse.ColMatrix(d, k)
	if err != nil {
		return nil, err
	}
	row, err := sparse.RowMatrix(d, k)
	if err != nil {
		return nil, err
	}

	return sparse.MxM(col, row, s, nil, sparse.DescDefault, workers)
}

// FloydWarshall returns one Distances per vertex: entry i holds the
// shortest distances from i.
func FloydWarshall(g *sparse.Matrix[float64], opts ...Option) ([]Distances, error) {
	o, err := gatherOptions(opts)
	if err != nil {
		return nil, err
	}
	if err = validateGraph(g); err != nil {
		return nil, err
	}
	n := g.Rows()

	d := withZeroDiagonal(g)
	minPlus := sparse.MinPlus()
	workers := sparse.WithWorkers(o.Workers)
	var step *sparse.Matrix[float64]
	for k := 0; k < n; k++ {
		if err = o.Ctx.Err(); err != nil {
			return nil, fmt.Errorf("shortestpath: pivot %d: %w", k, err)
		}
		if step, err = pivot(d, k, minPlus, workers); err != nil {
			return nil, fmt.Errorf("shortestpath: pivot %d: %w", k, err)
		}
		if d, err = sparse.EWiseAdd(d, step, sparse.Min[float64], nil, sparse.DescDefault); err != nil {
			return nil, fmt.Errorf("shortestpath: pivot %d: %w", k, err)
		}
		o.Logger.Debug("floyd-warshall pivot", "k", k, "nvals", d.NVals())
	}

	for k := 0; k < n; k++ {
		if step, err = pivot(d, k, minPlus, workers); err != nil {
			return nil, fmt.Errorf("shortestpath: probe %d: %w", k, err)
		}
		if improves(step, d) {
			o.Logger.Warn("negative cycle", "pivot", k)
			return nil, fmt.Errorf("%w: through vertex %d", ErrNegativeCycle, k)
		}
	}

	dense := d.Dense(math.Inf(1))
	out := make([]Distances, n)
	for i := range out {
		out[i] = Distances{Source: i, Dist: dense[i]}
	}

	return out, nil
}

// FloydWarshallAny is FloydWarshall for an untyped matrix.
func FloydWarshallAny(m any, opts ...Option) ([]Distances, error) {
	g, err := floatMatrix(m)
	if err != nil {
		return nil, err
	}

	return FloydWarshall(g, opts...)
}
