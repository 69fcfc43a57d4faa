// Package dijkstra answers "what is the cheapest way from node A to node B"
// on a core.Graph with non-negative edge weights.
//
// Overview:
//
//   - ShortestPath runs Dijkstra's algorithm from one source and stops the
//     moment the target is popped from the min-heap.
//   - Distances runs the same search to exhaustion and returns the whole
//     settled table from one source.
//   - Each node moves through three states per query: unvisited, frontier
//     (enqueued, tentative), finalized (popped, optimal).
//
// Unreachable sentinel:
//
// Every query returns a value; there are no errors. The following all
// produce Unreachable (math.MaxInt64):
//
//   - the source or target id has no node record;
//   - the target is in a different component;
//   - the only paths cost more than int64 can hold (sums saturate).
//
// Arcs that point at ids with no node record are ignored during the search.
//
// Performance and complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E), allocated fresh per call.
//
// Thread safety:
//
//   - Queries never mutate the graph and share no state, so a fully built
//     graph may be queried from many goroutines at once.
//   - Queries must not overlap with AddNode/AddEdge on the same graph.
//
// Negative weights are a precondition violation; they are not detected and
// the result is unspecified.
package dijkstra
