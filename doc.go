// Package routegraph answers one question about a road network: what is the
// cheapest way to get from node A to node B?
//
// Under the hood, everything is organized under a few subpackages:
//
//	core/           — Node, Edge and the Graph adjacency builder
//	dijkstra/       — ShortestPath and Distances over a core.Graph
//	store/          — SQLite rows → core.Graph loader
//	cmd/routegraph/ — CLI: add nodes and edges, query distances
//
// Quick ASCII example:
//
//	(1)──4──(2)──5──(3)
//
// ShortestPath(g, 1, 3) == 9. A node in another component, or an id with no
// node record, yields dijkstra.Unreachable (math.MaxInt64).
//
//	go get github.com/katalvlaran/routegraph
package routegraph
