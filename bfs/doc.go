// SPDX-License-Identifier: MIT

// Package bfs provides breadth-first search over a boolean sparse adjacency
// matrix, expressed as repeated vector×matrix products over the (OR, AND)
// semiring.
//
// What
//
//   - BFS: the step (hop count) at which each vertex is first reached from a
//     start vertex; -1 for vertices never reached.
//   - MultiSourceBFS: one shortest-path tree per source, as a predecessor
//     array; -1 marks the source itself, -2 an unreached vertex.
//   - BFSAny / MultiSourceBFSAny: untyped entry points that reject non-boolean
//     matrices with ErrTypeMismatch.
//
// How
//
//	BFS keeps a frontier vector and a steps vector. Each round computes
//	front = front ⊗ G masked by the complement of steps' structure (replace),
//	then writes the round number into steps wherever front is present. A
//	vertex enters steps once and never changes, so first arrival is the hop
//	distance. The loop ends when the frontier is empty, after at most n rounds.
//
//	MultiSourceBFS stacks one frontier row per source into a k×n matrix whose
//	values are vertex labels. front ⊗ G under (min, first) carries the smallest
//	label of any frontier predecessor into each newly reached cell; the cell is
//	recorded as that vertex's parent, then the frontier is relabeled with its
//	own column index for the next round.
//
// Determinism
//
//	Simultaneous arrivals resolve to the smallest predecessor index, so parent
//	arrays are reproducible bit for bit. WithWorkers does not change results.
//
// Complexity (n = vertices, m = edges, k = sources)
//
//   - BFS:            O(n + m) work over all rounds, O(n) memory.
//   - MultiSourceBFS: O(k·(n + m)) work, O(k·n) memory.
//
// Options
//
//   - WithContext(ctx):  checked once per round.
//   - WithLogger(l):     per-round Debug records (round, frontier size).
//   - WithMaxDepth(d):   stop after round d (d > 0); 0 means no limit.
//   - WithWorkers(n):    row-block workers for the MultiSourceBFS product.
//
// Errors
//
//   - ErrGraphNil         nil matrix.
//   - ErrNonSquare        rows != cols.
//   - ErrStartOutOfRange  start outside [0,n).
//   - ErrTypeMismatch     non-boolean matrix given to an ...Any entry point.
//   - ErrOptionViolation  invalid option value.
//   - ErrNoPath           PathTo on an unreached vertex.
package bfs
