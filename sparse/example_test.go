// SPDX-License-Identifier: MIT

package sparse_test

import (
	"fmt"
	"math"

	"github.com/katalvlaran/grblas/sparse"
)

// ExampleMxM squares a weighted adjacency matrix under MinPlus: entry (i,k)
// becomes the cheapest two-hop walk i→j→k.
func ExampleMxM() {
	g, _ := sparse.FromTriples(3, 3,
		[]int{0, 0, 1},
		[]int{1, 2, 2},
		[]float64{1, 5, 2})

	two, err := sparse.MxM(g, g, sparse.MinPlus(), nil, sparse.DescDefault)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, row := range two.Dense(math.Inf(1)) {
		fmt.Println(row)
	}
	// Output:
	// [+Inf +Inf 3]
	// [+Inf +Inf +Inf]
	// [+Inf +Inf +Inf]
}

// ExampleVxMInto advances a BFS frontier in place, skipping visited vertices.
func ExampleVxMInto() {
	g, _ := sparse.FromTriples(4, 4,
		[]int{0, 1, 1, 2},
		[]int{1, 0, 2, 3},
		[]bool{true, true, true, true})

	visited, _ := sparse.NewVector[int](4)
	front, _ := sparse.NewVector[bool](4)
	_ = front.Set(0, true)

	for step := 0; front.NVals() > 0; step++ {
		_ = visited.AssignScalar(step, front, sparse.DescDefault)
		_ = sparse.VxMInto(front, front, g, sparse.LorLand(), visited, sparse.DescRSC)
	}
	fmt.Println(visited.Dense(-1))
	// Output:
	// [0 1 2 3]
}
