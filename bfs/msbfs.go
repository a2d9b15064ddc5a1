// SPDX-License-Identifier: MIT

package bfs

import (
	"fmt"

	"github.com/katalvlaran/grblas/sparse"
)

// MultiSourceBFS grows one shortest-path (hop count) tree per start vertex.
// Result i belongs to starts[i]; duplicates in starts are allowed and produce
// identical trees. An empty starts yields an empty result.
//
// Parents[v] is the predecessor of v on a shortest path, Root for the source
// itself and NoParent when v is unreachable. When several frontier vertices
// reach v in the same round, the smallest index wins.
func MultiSourceBFS(g *sparse.Matrix[bool], starts []int, opts ...Option) ([]ParentTree, error) {
	o, err := gatherOptions(opts)
	if err != nil {
		return nil, err
	}
	if err = validateGraph(g); err != nil {
		return nil, err
	}
	n, k := g.Rows(), len(starts)
	for _, s := range starts {
		if err = validateStart(s, n); err != nil {
			return nil, err
		}
	}
	if k == 0 {
		return []ParentTree{}, nil
	}

	// parents(r,v): recorded predecessor; front(r,v): label carried forward.
	parents, _ := sparse.NewMatrix[int](k, n)
	front, _ := sparse.NewMatrix[int](k, n)
	for r, s := range starts {
		_ = parents.Set(r, s, Root)
		_ = front.Set(r, s, s)
	}

	var reached *sparse.Matrix[int]
	minFirst := sparse.MinFirst[bool]()
	relabel := func(_, j int, _ int) int { return j }
	for round := 1; front.NVals() > 0; round++ {
		if err = o.Ctx.Err(); err != nil {
			return nil, fmt.Errorf("bfs: multi-source round %d: %w", round, err)
		}
		if o.MaxDepth > 0 && round > o.MaxDepth {
			break
		}

		// reached<¬parents> = front ⊗ G: each cell holds its smallest predecessor
		reached, err = sparse.MxM(front, g, minFirst, parents, sparse.DescRSC, sparse.WithWorkers(o.Workers))
		if err != nil {
			return nil, fmt.Errorf("bfs: multi-source round %d: %w", round, err)
		}
		if err = parents.Assign(reached, reached, sparse.DescDefault); err != nil {
			return nil, fmt.Errorf("bfs: multi-source round %d: %w", round, err)
		}
		if front, err = sparse.Apply(reached, relabel, nil, sparse.DescDefault); err != nil {
			return nil, fmt.Errorf("bfs: multi-source round %d: %w", round, err)
		}
		o.Logger.Debug("msbfs round", "round", round, "frontier", front.NVals(), "sources", k)
	}

	dense := parents.Dense(NoParent)
	out := make([]ParentTree, k)
	for r, s := range starts {
		out[r] = ParentTree{Source: s, Parents: dense[r]}
	}

	return out, nil
}

// MultiSourceBFSAny is MultiSourceBFS for an untyped matrix.
func MultiSourceBFSAny(m any, starts []int, opts ...Option) ([]ParentTree, error) {
	switch g := m.(type) {
	case nil:
		return nil, ErrGraphNil
	case *sparse.Matrix[bool]:
		return MultiSourceBFS(g, starts, opts...)
	default:
		return nil, fmt.Errorf("%w: got %T", ErrTypeMismatch, m)
	}
}
