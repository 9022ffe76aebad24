package dijkstra

import "cmp"

// entry is a (node, tentative distance) pair waiting in the heap.
type entry[N cmp.Ordered] struct {
	node N
	dist float64
}

// minQueue is a binary min-heap of entries ordered by distance, then node.
// Improved distances are pushed as new entries; outdated ones are skipped
// when popped (lazy decrease-key).
type minQueue[N cmp.Ordered] []entry[N]

func (q minQueue[N]) Len() int { return len(q) }

func (q minQueue[N]) Less(i, j int) bool {
	if q[i].dist != q[j].dist {
		return q[i].dist < q[j].dist
	}

	return cmp.Less(q[i].node, q[j].node)
}

func (q minQueue[N]) Swap(i, j int) { q[i], q[j] = q[j], q[i] }

func (q *minQueue[N]) Push(x any) { *q = append(*q, x.(entry[N])) }

func (q *minQueue[N]) Pop() any {
	old := *q
	n := len(old)
	e := old[n-1]
	*q = old[:n-1]

	return e
}
