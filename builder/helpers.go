// SPDX-License-Identifier: MIT
// Package: grblas/builder
//
// helpers.go - shared vertex and edge emission.

package builder

import "github.com/katalvlaran/grblas/coo"

// addVertices reserves n new vertices and returns the index of the first.
func addVertices(g *coo.Graph, n int) int {
	base := g.Size
	g.Size += n

	return base
}

// drawWeight returns the next weight, or 0 for unweighted graphs (no draw).
func drawWeight(cfg builderConfig) float64 {
	if !cfg.weighted {
		return 0
	}

	return cfg.weightFn(cfg.rng)
}

// appendArc appends u→v with weight w.
func appendArc(g *coo.Graph, cfg builderConfig, u, v int, w float64) {
	g.I = append(g.I, u)
	g.J = append(g.J, v)
	if cfg.weighted {
		g.V = append(g.V, w)
	}
}

// addEdge emits one logical edge: u→v when directed, u→v and v→u otherwise.
// One weight is drawn per call.
func addEdge(g *coo.Graph, cfg builderConfig, u, v int) {
	w := drawWeight(cfg)
	appendArc(g, cfg, u, v, w)
	if !cfg.directed && u != v {
		appendArc(g, cfg, v, u, w)
	}
}

// addSymmetricEdge emits u→v and v→u regardless of direction.
func addSymmetricEdge(g *coo.Graph, cfg builderConfig, u, v int) {
	w := drawWeight(cfg)
	appendArc(g, cfg, u, v, w)
	appendArc(g, cfg, v, u, w)
}
