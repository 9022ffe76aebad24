// Package core provides the weighted graph model consumed by the shortest-path
// engine: a mapping from node to a mapping from neighbor to arc weight.
//
// The Graph G = (V, A) is a set of nodes and a set of weighted directed arcs:
//
//   - Nodes are any cmp.Ordered value (string names, integer ids, ...).
//     Ordering is used only to make enumeration deterministic.
//   - Every arc is directed. Undirected graphs are expressed by inserting both
//     directions with equal weight, which AddEdge does when the graph was built
//     WithUndirected().
//   - Re-adding an arc overwrites its weight; there are no parallel arcs.
//   - Self-loops are stored like any other arc.
//
// Weights:
//
//	Weights are float64. NaN is rejected at insertion (ErrBadWeight). Negative
//	weights are stored as given: whether they are acceptable is the consumer's
//	decision (the dijkstra package rejects them with its own sentinel).
//
// Concurrency:
//
//	All methods are guarded by a sync.RWMutex. A built graph may be shared
//	read-only by any number of goroutines.
//
// Determinism:
//
//	Nodes(), Neighbors() and Arcs() return results sorted ascending by node.
//
// Example:
//
//	g := core.New[string](core.WithUndirected())
//	_ = g.AddEdge("A", "B", 2)
//	_ = g.AddEdge("A", "D", 1)
//	fmt.Println(g.Nodes()) // [A B D]
package core
