package dijkstra

import "math"

// Unreachable is the distance reported when no path exists, when either
// endpoint has no node record, or when the path cost saturates int64.
// Callers cannot tell these cases apart.
const Unreachable int64 = math.MaxInt64

// status tracks a node's progress through one query.
type status uint8

const (
	// unvisited: never reached.
	unvisited status = iota
	// frontier: enqueued, distance tentative.
	frontier
	// finalized: popped and settled; distance is optimal.
	finalized
)

// SaturatingAdd returns a+b clamped to [math.MinInt64, Unreachable]
// instead of wrapping on overflow.
func SaturatingAdd(a, b int64) int64 {
	if b > 0 && a > Unreachable-b {
		return Unreachable
	}
	if b < 0 && a < math.MinInt64-b {
		return math.MinInt64
	}

	return a + b
}

// nodeItem is one queue entry: a dense node index and its tentative distance.
type nodeItem struct {
	idx  int
	dist int64
}

// nodePQ is a min-heap of nodeItem ordered by dist ascending. Ties pop in
// unspecified order. Stale duplicates are left in place and skipped on pop
// (lazy decrease-key).
type nodePQ []nodeItem

// Len returns the number of items in the heap.
func (pq nodePQ) Len() int { return len(pq) }

// Less orders by ascending distance.
func (pq nodePQ) Less(i, j int) bool { return pq[i].dist < pq[j].dist }

// Swap swaps two elements in the heap.
func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push is called by heap.Push; x must be a nodeItem.
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(nodeItem)) }

// Pop is called by heap.Pop and returns the last element.
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
