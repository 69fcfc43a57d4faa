// Package core provides the in-memory road graph: point nodes joined by
// weighted, undirected edges.
//
// The Graph G = (V,E) is built once and then queried:
//
//   - Nodes are keyed by an int64 id and carry X/Y coordinates for display.
//   - Each Edge is stored as two directed arcs, a→b and b→a, with the same
//     weight, so traversal works in both directions.
//   - Parallel edges and self-loops are kept as-is.
//   - Arcs may point at ids with no Node record; consumers decide what that
//     means (the dijkstra package treats such ids as unreachable).
//
// Core Methods:
//
//	// Construction
//	NewGraph() *Graph            // O(1)
//	AddNode(n Node)              // O(1), last write wins on id collision
//	AddEdge(e Edge)              // O(1), appends e and e.Reverse()
//
//	// Query
//	HasNode(id int64) bool       // O(1)
//	Node(id int64) (Node, bool)  // O(1)
//	NodeIDs() []int64            // O(V·log V), ascending
//	Arcs(id int64) []Edge        // O(d), copy in insertion order
//	EachArc(id int64, fn)        // O(d), no copy
//	NodeCount() int              // O(1)
//	ArcCount() int               // O(1)
//
//	// Cloning
//	Clone() *Graph               // O(V+E)
//
// Concurrency:
//
// Graph has no internal locks. Building must happen on one goroutine (or
// under an external lock). A fully built graph that is no longer mutated may
// be shared read-only by any number of goroutines.
package core
