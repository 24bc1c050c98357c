package floydwarshall_test

import (
	"fmt"

	"github.com/katalvlaran/apsp/core"
	fw "github.com/katalvlaran/apsp/floydwarshall"
)

// ExampleFloydWarshall settles a three-vertex triangle where the detour
// a→b→c (cost 2) beats the direct edge a—c (cost 3) and prints the
// lower-triangle distance table.
func ExampleFloydWarshall() {
	g := core.NewGraph(core.WithWeighted())
	_ = g.AddEdge("a", "b", 1)
	_ = g.AddEdge("b", "c", 1)
	_ = g.AddEdge("a", "c", 3)

	view, _ := fw.FromCore(g)
	d, _ := fw.FloydWarshall(view)
	fmt.Println(d)
	// Output:
	// 0
	// 1 0
	// 2 1 0
}

// ExampleFloydWarshallPathsLabeled reconstructs the cheapest route in
// vertex IDs: a→c costs 2 and passes through b.
func ExampleFloydWarshallPathsLabeled() {
	g := core.NewGraph(core.WithWeighted())
	_ = g.AddEdge("a", "b", 1)
	_ = g.AddEdge("b", "c", 1)
	_ = g.AddEdge("a", "c", 3)

	view, _ := fw.FromCore(g)
	pm, _ := fw.FloydWarshallPathsLabeled(view, view.LabelOf)

	a, _ := view.IndexOf("a")
	c, _ := view.IndexOf("c")
	fmt.Println(pm.PathLen(a, c))
	fmt.Println(pm.PathSeq(a, c))
	// Output:
	// 2
	// [b]
}
