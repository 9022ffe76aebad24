// Package dijkstra computes single-source shortest paths over core.Graph
// values with non-negative arc weights, and reconstructs individual routes
// from the resulting predecessor table.
//
// Overview:
//
//   - ShortestPaths runs classic Dijkstra from one source and returns a
//     Result holding a DistanceTable and a PredecessorTable.
//   - ReconstructPath (or Result.PathTo) turns the predecessor table into an
//     ordered Path from the source to any reachable destination.
//   - ShortestPathsFrom runs independent computations for several sources
//     concurrently over one shared, read-only graph.
//
// Algorithm:
//
//  1. dist[v] = +Inf for every node, dist[source] = 0, no predecessors.
//  2. Push (0, source) into a binary min-heap keyed by (distance, node).
//  3. Pop the smallest entry. If its distance exceeds dist[node] the entry is
//     stale and is skipped. Otherwise relax every outgoing arc u→v with
//     weight w: when dist[u]+w < dist[v], set dist[v], prev[v] = u and push
//     (dist[v], v).
//  4. Stop when the heap is empty.
//
// Ties between equal distances pop in ascending node order, so results are
// deterministic for a given graph. Relaxation uses a strict "<": the first
// settled predecessor of an equal-length alternative is kept.
//
// Complexity:
//
//   - Time:  O((V + A) log V). Each arc relaxation pushes at most one entry.
//   - Space: O(V + A) for the tables and the lazy decrease-key heap.
//
// Options:
//
//   - WithMaxDistance(d):      nodes farther than d are not settled and stay at +Inf.
//   - WithInfEdgeThreshold(t): arcs with weight >= t are impassable.
//   - WithConcurrency(n):      worker bound for ShortestPathsFrom.
//
// Errors (sentinel, test with errors.Is):
//
//   - ErrNilGraph               graph pointer is nil.
//   - ErrUnknownSource          source is not a node of the graph.
//   - ErrInvalidWeight          an arc weight is negative.
//   - ErrUnknownNode            path requested for a node absent from the tables.
//   - ErrUnreachableDestination path requested for a node with infinite distance.
//   - ErrBrokenChain            predecessor chain does not lead back to the source.
//   - ErrBadMaxDistance, ErrBadInfThreshold, ErrBadConcurrency for invalid options.
//
// Example:
//
//	g := core.New[string](core.WithUndirected())
//	_ = g.AddEdge("A", "B", 2)
//	_ = g.AddEdge("B", "C", 3)
//	res, err := dijkstra.ShortestPaths(g, "A")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	route, _ := res.PathTo("C") // [A B C]
package dijkstra
