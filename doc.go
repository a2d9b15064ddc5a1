// Package grblas runs classical graph algorithms as sparse linear algebra:
// a graph is its adjacency matrix, and swapping the semiring of a matrix
// product swaps the question being answered.
//
// What is in the box?
//
//	sparse/       — generic sparse Vector/Matrix, masks and descriptors,
//	                semirings, MxM/VxM/MxV, element-wise ops, reductions
//	bfs/          — hop-count BFS and multi-source parent trees (∨.∧, min.first)
//	shortestpath/ — bounded (min,+) relaxation and Floyd–Warshall with
//	                negative-cycle detection
//	triangles/    — per-vertex, Cohen and Sandia triangle counts (+.pair)
//	coo/          — coordinate-list graphs: JSON/YAML codec, gonum export
//	builder/      — deterministic graph families for tests and the CLI
//	fixture/      — table-driven test cases loaded from JSON/YAML
//	cmd/grblas/   — command-line front end
//
// Quick example (a directed square, hop counts from vertex 0):
//
//	0 → 1
//	↑   ↓
//	3 ← 2
//
//	g, _ := coo.NewBool(4, []int{0, 1, 2, 3}, []int{1, 2, 3, 0}).Bool()
//	steps, _ := bfs.BFS(g, 0) // [0 1 2 3]
//
// Every operation is synchronous. The only concurrency is opt-in row-block
// parallelism in matrix products (WithWorkers), which never changes results.
package grblas
