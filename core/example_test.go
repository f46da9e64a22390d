// SPDX-License-Identifier: MIT
package core_test

import (
	"fmt"

	"github.com/katalvlaran/lvlsym/core"
)

// ExampleGraph_IsAutomorphism checks two relabelings of a colored triangle.
func ExampleGraph_IsAutomorphism() {
	g := core.NewGraph(3)
	_ = g.AddEdge(0, 1)
	_ = g.AddEdge(1, 2)
	_ = g.AddEdge(0, 2)
	_ = g.ChangeColor(2, 1)

	swap01, _ := g.IsAutomorphism([]int{1, 0, 2})
	swap12, _ := g.IsAutomorphism([]int{0, 2, 1})
	fmt.Println(swap01, swap12)
	// Output:
	// true false
}
