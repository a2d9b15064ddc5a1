// SPDX-License-Identifier: MIT

package coo

import (
	"math"

	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/mat"
)

// ToGonum exports g as a gonum weighted directed graph with self weight 0 and
// absent weight +Inf. Every vertex is added, isolated ones included. Self-loops
// are skipped: gonum simple graphs reject them and every engine here treats the
// diagonal as distance 0 anyway. Without V all weights are 1.
func (g *Graph) ToGonum() (*simple.WeightedDirectedGraph, error) {
	if err := g.Validate(); err != nil {
		return nil, err
	}
	out := simple.NewWeightedDirectedGraph(0, math.Inf(1))
	for v := range g.order() {
		out.AddNode(simple.Node(v))
	}
	for k := range g.I {
		if g.I[k] == g.J[k] {
			continue
		}
		out.SetWeightedEdge(out.NewWeightedEdge(simple.Node(g.I[k]), simple.Node(g.J[k]), g.weight(k)))
	}

	return out, nil
}

// ToGonumUndirected exports g as a gonum weighted undirected graph; (i,j) and
// (j,i) collapse into one edge, the later listing winning.
func (g *Graph) ToGonumUndirected() (*simple.WeightedUndirectedGraph, error) {
	if err := g.Validate(); err != nil {
		return nil, err
	}
	out := simple.NewWeightedUndirectedGraph(0, math.Inf(1))
	for v := range g.order() {
		out.AddNode(simple.Node(v))
	}
	for k := range g.I {
		if g.I[k] == g.J[k] {
			continue
		}
		out.SetWeightedEdge(out.NewWeightedEdge(simple.Node(g.I[k]), simple.Node(g.J[k]), g.weight(k)))
	}

	return out, nil
}

// ToDense returns g as a dense gonum matrix holding weights (1 without V) and
// 0 where no edge is listed.
func (g *Graph) ToDense() (*mat.Dense, error) {
	if err := g.Validate(); err != nil {
		return nil, err
	}
	rows, cols := g.Shape()
	if rows == 0 || cols == 0 {
		// gonum panics on zero-sized matrices
		return &mat.Dense{}, nil
	}
	out := mat.NewDense(rows, cols, nil)
	for k := range g.I {
		out.Set(g.I[k], g.J[k], g.weight(k))
	}

	return out, nil
}

// order is the number of gonum nodes: the larger matrix dimension.
func (g *Graph) order() int {
	rows, cols := g.Shape()

	return max(rows, cols)
}

func (g *Graph) weight(k int) float64 {
	if g.Weighted() {
		return g.V[k]
	}

	return 1
}
