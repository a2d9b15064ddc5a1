// SPDX-License-Identifier: MIT

package bfs_test

import (
	"fmt"

	"github.com/katalvlaran/grblas/bfs"
	"github.com/katalvlaran/grblas/coo"
)

// ExampleBFS reports hop counts from vertex 0; vertex 4 only has an edge
// pointing away from it and stays unreached.
func ExampleBFS() {
	g, _ := coo.NewBool(5, []int{0, 1, 2, 2, 4}, []int{1, 2, 0, 3, 2}).Bool()

	steps, err := bfs.BFS(g, 0)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(steps)
	// Output: [0 1 2 3 -1]
}

// ExampleMultiSourceBFS grows one parent tree per source in a single pass.
func ExampleMultiSourceBFS() {
	g, _ := coo.NewBool(4, []int{0, 1, 2, 3}, []int{1, 2, 3, 0}).Bool()

	trees, err := bfs.MultiSourceBFS(g, []int{0, 2})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, tr := range trees {
		path, _ := tr.PathTo(3)
		fmt.Println(tr.Source, tr.Parents, path)
	}
	// Output:
	// 0 [-1 0 1 2] [0 1 2 3]
	// 2 [3 0 -1 2] [2 3]
}
