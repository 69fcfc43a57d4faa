// File: types.go
// Role: Entity model: Node and Edge value records.
// Policy:
//   - Plain values, no validation at construction.
//   - Referential integrity is checked at query time by the solver, never here.

package core

// Node is a uniquely identified point in the graph.
//
// ID is the unique key inside a Graph. X and Y are positional attributes
// carried for display; no algorithm reads them.
type Node struct {
	ID int64
	X  int64
	Y  int64
}

// Clone returns a copy of n.
func (n Node) Clone() Node {
	return Node{ID: n.ID, X: n.X, Y: n.Y}
}

// Edge is a weighted connection between NodeA and NodeB.
//
// At the model level an Edge is undirected. Inside a Graph it is stored as
// two directed arcs: NodeA→NodeB and NodeB→NodeA, both carrying Weight.
// Weight must be non-negative for shortest-path queries to be meaningful.
type Edge struct {
	NodeA  int64
	NodeB  int64
	Weight int64
}

// Clone returns a copy of e.
func (e Edge) Clone() Edge {
	return Edge{NodeA: e.NodeA, NodeB: e.NodeB, Weight: e.Weight}
}

// Reverse returns the arc with swapped endpoints and the same weight.
func (e Edge) Reverse() Edge {
	return Edge{NodeA: e.NodeB, NodeB: e.NodeA, Weight: e.Weight}
}
