package pathcount_test

import (
	"fmt"

	"github.com/katalvlaran/puzzlegraph/core"
	"github.com/katalvlaran/puzzlegraph/pathcount"
)

// ExampleCounter_CountVia counts diamond paths with and without a waypoint.
func ExampleCounter_CountVia() {
	const (
		A core.NodeID = iota + 1
		B
		C
		D
	)
	g := core.NewGraph()
	_ = g.AddNode(A, B, C)
	_ = g.AddNode(B, D)
	_ = g.AddNode(C, D)
	_ = g.AddNode(D)

	c, _ := pathcount.NewCounter(g)
	all, _ := c.Count(A, D)
	via, _ := c.CountVia(A, D, []core.NodeID{B})

	fmt.Println("A→D:", all)
	fmt.Println("A→B→D:", via.Total, "stages:", len(via.Stages))

	// Output:
	// A→D: 2
	// A→B→D: 1 stages: 2
}
