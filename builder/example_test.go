// SPDX-License-Identifier: MIT

package builder_test

import (
	"fmt"

	"github.com/katalvlaran/grblas/builder"
)

// ExampleBuild composes a directed weighted path and a cycle into one graph;
// the cycle's vertices follow the path's.
func ExampleBuild() {
	g, err := builder.Build(
		[]builder.BuilderOption{builder.WithDirected(), builder.WithConstantWeight(2)},
		builder.Path(3),
		builder.Cycle(3),
	)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(g.Size)
	fmt.Println(g.I)
	fmt.Println(g.J)
	fmt.Println(g.V)
	// Output:
	// 6
	// [0 1 3 4 5]
	// [1 2 4 5 3]
	// [2 2 2 2 2]
}
