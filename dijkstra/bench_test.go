package dijkstra_test

import (
	"testing"

	"github.com/katalvlaran/routegraph/core"
	"github.com/katalvlaran/routegraph/dijkstra"
)

// gridGraph builds a side×side 4-connected grid with unit weights.
func gridGraph(side int64) *core.Graph {
	g := core.NewGraph()
	id := func(r, c int64) int64 { return r*side + c }
	for r := int64(0); r < side; r++ {
		for c := int64(0); c < side; c++ {
			g.AddNode(core.Node{ID: id(r, c), X: c, Y: r})
			if c > 0 {
				g.AddEdge(core.Edge{NodeA: id(r, c-1), NodeB: id(r, c), Weight: 1})
			}
			if r > 0 {
				g.AddEdge(core.Edge{NodeA: id(r-1, c), NodeB: id(r, c), Weight: 1})
			}
		}
	}

	return g
}

// BenchmarkShortestPath_Grid100 queries corner to corner on a 100×100 grid.
func BenchmarkShortestPath_Grid100(b *testing.B) {
	g := gridGraph(100)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = dijkstra.ShortestPath(g, 0, 100*100-1)
	}
}

// BenchmarkShortestPath_Neighbour shows the early exit on an adjacent target.
func BenchmarkShortestPath_Neighbour(b *testing.B) {
	g := gridGraph(100)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = dijkstra.ShortestPath(g, 0, 1)
	}
}
