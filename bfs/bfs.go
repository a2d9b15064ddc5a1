// SPDX-License-Identifier: MIT

// Package bfs provides breadth-first search over a sparse.Matrix[bool],
// returning per-vertex hop counts and multi-source parent trees.
package bfs

import (
	"fmt"

	"github.com/katalvlaran/grblas/sparse"
)

// validateGraph checks the shared preconditions of every entry point.
func validateGraph(g *sparse.Matrix[bool]) error {
	if g == nil {
		return ErrGraphNil
	}
	if !g.Square() {
		return fmt.Errorf("%w: got %dx%d", ErrNonSquare, g.Rows(), g.Cols())
	}

	return nil
}

// validateStart checks 0 <= s < n.
func validateStart(s, n int) error {
	if s < 0 || s >= n {
		return fmt.Errorf("%w: %d not in [0,%d)", ErrStartOutOfRange, s, n)
	}

	return nil
}

// BFS runs breadth-first search on g starting from start and returns, for
// every vertex, the step at which it was first reached (start at 0).
// Vertices never reached report Unreached (-1).
// Returns ErrGraphNil, ErrNonSquare or ErrStartOutOfRange for invalid input,
// ErrOptionViolation for bad options, or the context error on cancellation.
func BFS(g *sparse.Matrix[bool], start int, opts ...Option) ([]int, error) {
	o, err := gatherOptions(opts)
	if err != nil {
		return nil, err
	}
	if err = validateGraph(g); err != nil {
		return nil, err
	}
	n := g.Rows()
	if err = validateStart(start, n); err != nil {
		return nil, err
	}

	steps, _ := sparse.NewVector[int](n) // n >= 0 for any matrix
	front, _ := sparse.NewVector[bool](n)
	_ = steps.Set(start, 0) // start validated above
	_ = front.Set(start, true)

	lor := sparse.LorLand()
	for step := 1; front.NVals() > 0; step++ {
		// cancellation check (once per round)
		if err = o.Ctx.Err(); err != nil {
			return nil, fmt.Errorf("bfs: round %d: %w", step, err)
		}
		if o.MaxDepth > 0 && step > o.MaxDepth {
			break
		}

		// front<¬steps, replace> = front ⊗ G
		if err = sparse.VxMInto(front, front, g, lor, steps, sparse.DescRSC); err != nil {
			return nil, fmt.Errorf("bfs: round %d: %w", step, err)
		}
		if err = steps.AssignScalar(step, front, sparse.DescDefault); err != nil {
			return nil, fmt.Errorf("bfs: round %d: %w", step, err)
		}
		o.Logger.Debug("bfs round", "step", step, "frontier", front.NVals(), "visited", steps.NVals())
	}

	return steps.Dense(Unreached), nil
}

// BFSAny is BFS for callers holding an untyped matrix, such as
// coo.Graph.Matrix(). Anything but *sparse.Matrix[bool] is ErrTypeMismatch.
func BFSAny(m any, start int, opts ...Option) ([]int, error) {
	switch g := m.(type) {
	case nil:
		return nil, ErrGraphNil
	case *sparse.Matrix[bool]:
		return BFS(g, start, opts...)
	default:
		return nil, fmt.Errorf("%w: got %T", ErrTypeMismatch, m)
	}
}
