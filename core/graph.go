// File: graph.go
// Role: Adjacency builder: accumulates nodes and arcs, exposes read-only views.
// Concurrency:
//   - No internal locking. Mutation must be externally synchronized.
//   - Once building is finished the Graph may be read from many goroutines.

package core

import "sort"

// Graph owns a node catalog and, per node id, the ordered list of outgoing arcs.
//
// Arcs may reference ids that have no Node record (added later or never);
// this is tolerated. Parallel edges are retained, never deduplicated.
type Graph struct {
	nodes map[int64]Node   // node id → Node
	arcs  map[int64][]Edge // node id → outgoing arcs (NodeA == key)
	nArcs int              // total number of stored arcs
}

// NewGraph returns an empty Graph.
// Complexity: O(1).
func NewGraph() *Graph {
	return &Graph{
		nodes: make(map[int64]Node),
		arcs:  make(map[int64][]Edge),
	}
}

// AddNode inserts n, replacing any node already stored under n.ID.
// Complexity: O(1) amortized.
func (g *Graph) AddNode(n Node) {
	g.nodes[n.ID] = n.Clone()
}

// AddEdge stores e as two arcs: e itself on NodeA's list and its reverse
// on NodeB's list. Neither endpoint has to exist yet. A self-loop therefore
// yields two identical a→a arcs.
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(e Edge) {
	g.arcs[e.NodeA] = append(g.arcs[e.NodeA], e.Clone())
	rev := e.Reverse()
	g.arcs[rev.NodeA] = append(g.arcs[rev.NodeA], rev)
	g.nArcs += 2
}

// HasNode reports whether a node record exists for id.
func (g *Graph) HasNode(id int64) bool {
	_, ok := g.nodes[id]

	return ok
}

// Node returns the node stored under id.
func (g *Graph) Node(id int64) (Node, bool) {
	n, ok := g.nodes[id]

	return n, ok
}

// NodeIDs returns all node ids in ascending order.
// Complexity: O(V log V).
func (g *Graph) NodeIDs() []int64 {
	ids := make([]int64, 0, len(g.nodes))
	for id := range g.nodes {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	return ids
}

// Arcs returns a copy of the outgoing arcs of id, in insertion order.
// The result is nil when id has no arcs.
func (g *Graph) Arcs(id int64) []Edge {
	src := g.arcs[id]
	if len(src) == 0 {
		return nil
	}
	out := make([]Edge, len(src))
	copy(out, src)

	return out
}

// EachArc calls fn for every outgoing arc of id without copying the list.
// fn must not mutate the Graph.
func (g *Graph) EachArc(id int64, fn func(e Edge)) {
	for _, e := range g.arcs[id] {
		fn(e)
	}
}

// NodeCount returns the number of node records.
func (g *Graph) NodeCount() int { return len(g.nodes) }

// ArcCount returns the number of stored directed arcs (twice the edge count).
func (g *Graph) ArcCount() int { return g.nArcs }

// Clone returns a deep copy of g.
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	c := &Graph{
		nodes: make(map[int64]Node, len(g.nodes)),
		arcs:  make(map[int64][]Edge, len(g.arcs)),
		nArcs: g.nArcs,
	}
	for id, n := range g.nodes {
		c.nodes[id] = n.Clone()
	}
	for id, list := range g.arcs {
		cp := make([]Edge, len(list))
		copy(cp, list)
		c.arcs[id] = cp
	}

	return c
}
