package zdd_test

import (
	"fmt"

	"github.com/katalvlaran/lvlath/builder"
	"github.com/katalvlaran/lvlath/frontier"
	"github.com/katalvlaran/lvlath/specs"
	"github.com/katalvlaran/lvlath/zdd"
)

// ExampleBuild counts the single cycles in a 3x3 grid graph: the
// frontier method builds one ZDD node per distinct partial frontier
// state instead of one per edge subset, so Cardinality stays exact
// even though the 3x3 grid has 2^12 candidate edge subsets.
func ExampleBuild() {
	g, err := builder.BuildGraph(nil, builder.Grid(3, 3))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	sched, err := frontier.Build(g)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	dd, err := zdd.Build(specs.NewSingleCycle(g, sched))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println(dd.Cardinality())
	// Output:
	// 13
}
