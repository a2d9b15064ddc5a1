// SPDX-License-Identifier: MIT

// Package builder generates deterministic coordinate-list graphs (coo.Graph)
// for tests, benchmarks, examples and the grblas CLI.
//
// Build resolves functional options into one immutable configuration and runs
// constructors in order. Every constructor appends its own block of vertices
// after the ones already present, so composing Path(3) and Cycle(4) yields a
// 7-vertex graph with two components.
//
// Direction
//
//	Undirected (default): every edge is emitted as the pair (u,v),(v,u) with one
//	shared weight, so the adjacency matrix is symmetric.
//	WithDirected(): Path, Cycle, Star and Grid emit forward arcs only; Complete
//	emits every ordered pair; Wheel spokes, CompleteBipartite and PlatonicSolid
//	stay symmetric.
//
// Weights
//
//	Without a weight option the graph is unweighted (V empty). WithWeightFn and
//	its helpers draw one weight per logical edge from the configured RNG.
//
// Determinism
//
//	Same options, seed and constructor order give an identical graph. Stochastic
//	constructors (RandomSparse, RandomRegular) require WithSeed or WithRand.
//
// Errors
//
//	Constructors validate their parameters and return sentinel errors
//	(ErrTooFewVertices, ErrInvalidProbability, ErrNeedRandSource,
//	ErrUnsupportedGraphMode, ErrConstructFailed); match them with errors.Is.
package builder
