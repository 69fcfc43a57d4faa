// Package dijkstra implements single-source shortest-path search over a
// core.Graph with non-negative integer weights.
//
// Notes on implementation choices:
//
//   - Node ids are mapped to dense indices once per query; working arrays are
//     indexed by that position and discarded when the query returns.
//   - We use a "lazy" decrease-key strategy: improved distances push a new
//     heap entry, stale entries are skipped when popped.
//   - Distances are summed with SaturatingAdd; a saturated candidate equals
//     Unreachable and can never improve anything.
//   - Arcs into ids without a node record are ignored.
package dijkstra

import (
	"container/heap"

	"github.com/katalvlaran/routegraph/core"
)

// ShortestPath returns the minimum total weight of any arc sequence from
// node from to node to, or Unreachable.
//
// Both ids must have node records; otherwise the result is Unreachable and
// no search is performed. ShortestPath(g, n, n) is 0 for every known n.
// The graph is only read.
//
// Complexity:
//   - Time:  O((V + E) log V) over the reachable part of the graph.
//   - Space: O(V + E).
func ShortestPath(g *core.Graph, from, to int64) int64 {
	if g == nil || !g.HasNode(from) || !g.HasNode(to) {
		return Unreachable
	}

	r := newRunner(g, from)
	d, _ := r.run(to, true)

	return d
}

// Distances returns the settled distance from node from to every node in g.
// Nodes that cannot be reached map to Unreachable. If from has no node
// record every entry is Unreachable; a nil graph yields nil.
//
// Complexity: O((V + E) log V).
func Distances(g *core.Graph, from int64) map[int64]int64 {
	if g == nil {
		return nil
	}
	if !g.HasNode(from) {
		out := make(map[int64]int64, g.NodeCount())
		for _, id := range g.NodeIDs() {
			out[id] = Unreachable
		}

		return out
	}

	r := newRunner(g, from)
	r.run(0, false)

	out := make(map[int64]int64, len(r.ids))
	for i, id := range r.ids {
		out[id] = r.dist[i]
	}

	return out
}

// runner holds the mutable state for a single query.
type runner struct {
	g      *core.Graph
	ids    []int64       // dense index → node id
	index  map[int64]int // node id → dense index
	dist   []int64       // best known distance per index
	status []status      // progress per index
	pq     nodePQ
}

// newRunner assigns dense indices and seeds the queue with (source, 0).
// source must have a node record.
func newRunner(g *core.Graph, source int64) *runner {
	ids := g.NodeIDs()
	r := &runner{
		g:      g,
		ids:    ids,
		index:  make(map[int64]int, len(ids)),
		dist:   make([]int64, len(ids)),
		status: make([]status, len(ids)),
		pq:     make(nodePQ, 0, len(ids)),
	}
	for i, id := range ids {
		r.index[id] = i
		r.dist[i] = Unreachable
	}

	src := r.index[source]
	r.dist[src] = 0
	r.status[src] = frontier
	heap.Push(&r.pq, nodeItem{idx: src, dist: 0})

	return r
}

// run drains the queue. With stopAtTarget it returns as soon as target is
// popped; the first pop is optimal because weights are non-negative.
// The bool reports whether target was reached.
func (r *runner) run(target int64, stopAtTarget bool) (int64, bool) {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(nodeItem)
		u := item.idx

		if stopAtTarget && r.ids[u] == target {
			return item.dist, true
		}

		// A better entry for u was already recorded.
		if item.dist > r.dist[u] || r.status[u] == finalized {
			continue
		}

		r.status[u] = finalized
		r.relax(u, item.dist)
	}

	return Unreachable, false
}

// relax pushes improved candidates for every non-finalized neighbour of u.
func (r *runner) relax(u int, du int64) {
	r.g.EachArc(r.ids[u], func(e core.Edge) {
		v, ok := r.index[e.NodeB]
		if !ok || r.status[v] == finalized {
			return
		}

		candidate := SaturatingAdd(du, e.Weight)
		if candidate < r.dist[v] {
			r.dist[v] = candidate
			r.status[v] = frontier
			heap.Push(&r.pq, nodeItem{idx: v, dist: candidate})
		}
	})
}
