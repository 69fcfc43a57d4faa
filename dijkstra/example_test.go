// Package dijkstra_test provides examples demonstrating shortest-path queries.
// Each example is runnable via "go test -run Example".
package dijkstra_test

import (
	"fmt"

	"github.com/katalvlaran/routegraph/core"
	"github.com/katalvlaran/routegraph/dijkstra"
)

// ExampleShortestPath computes the cheapest route between two intersections.
func ExampleShortestPath() {
	//	(1)──4──(2)──5──(3)      (4)
	g := core.NewGraph()
	for id := int64(1); id <= 4; id++ {
		g.AddNode(core.Node{ID: id})
	}
	g.AddEdge(core.Edge{NodeA: 1, NodeB: 2, Weight: 4})
	g.AddEdge(core.Edge{NodeA: 2, NodeB: 3, Weight: 5})

	fmt.Println(dijkstra.ShortestPath(g, 1, 3))
	fmt.Println(dijkstra.ShortestPath(g, 3, 1))
	fmt.Println(dijkstra.ShortestPath(g, 1, 4) == dijkstra.Unreachable)
	// Output:
	// 9
	// 9
	// true
}

// ExampleDistances prints the settled table from one source.
func ExampleDistances() {
	// Source graph g:
	//	    (5)
	//	  3/   \4
	//	  /     \
	//	(3)──10─(4)
	//	 |       |
	//	2|       |5
	//	 |       |
	//	(1)──4──(2)
	g := core.NewGraph()
	for id := int64(1); id <= 5; id++ {
		g.AddNode(core.Node{ID: id})
	}
	for _, e := range []core.Edge{
		{NodeA: 1, NodeB: 2, Weight: 4},
		{NodeA: 1, NodeB: 3, Weight: 2},
		{NodeA: 2, NodeB: 4, Weight: 5},
		{NodeA: 3, NodeB: 4, Weight: 10},
		{NodeA: 3, NodeB: 5, Weight: 3},
		{NodeA: 5, NodeB: 4, Weight: 4},
	} {
		g.AddEdge(e)
	}

	dist := dijkstra.Distances(g, 1)
	for _, id := range g.NodeIDs() {
		fmt.Printf("%d:%d ", id, dist[id])
	}
	fmt.Println()
	// Output: 1:0 2:4 3:2 4:9 5:5
}
