package core

import (
	"cmp"
	"fmt"
	"math"
	"slices"
)

// Undirected reports whether AddEdge mirrors every edge.
func (g *Graph[N]) Undirected() bool {
	return g.undirected
}

// AddNode inserts n if missing. Adding an existing node is a no-op.
// Complexity: O(1) amortized.
func (g *Graph[N]) AddNode(n N) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.ensureNode(n)
}

// ensureNode must be called with g.mu held for writing.
func (g *Graph[N]) ensureNode(n N) {
	if _, ok := g.adj[n]; !ok {
		g.adj[n] = make(map[N]float64)
	}
}

// AddArc inserts the directed arc from→to with weight w, adding both
// endpoints as nodes if needed. An existing arc has its weight replaced.
//
// Errors:
//   - ErrBadWeight if w is NaN.
//
// Complexity: O(1) amortized.
func (g *Graph[N]) AddArc(from, to N, w float64) error {
	if math.IsNaN(w) {
		return fmt.Errorf("%w: arc %v→%v", ErrBadWeight, from, to)
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	g.setArc(from, to, w)

	return nil
}

// setArc must be called with g.mu held for writing.
func (g *Graph[N]) setArc(from, to N, w float64) {
	g.ensureNode(from)
	g.ensureNode(to)
	if _, ok := g.adj[from][to]; !ok {
		g.arcs++
	}
	g.adj[from][to] = w
}

// AddEdge inserts a→b with weight w and, in an undirected graph, also b→a
// with the same weight.
//
// Errors:
//   - ErrBadWeight if w is NaN.
func (g *Graph[N]) AddEdge(a, b N, w float64) error {
	if math.IsNaN(w) {
		return fmt.Errorf("%w: edge %v—%v", ErrBadWeight, a, b)
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	g.setArc(a, b, w)
	if g.undirected {
		g.setArc(b, a, w)
	}

	return nil
}

// HasNode reports whether n is in the node set.
func (g *Graph[N]) HasNode(n N) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.adj[n]

	return ok
}

// HasArc reports whether the directed arc from→to exists.
func (g *Graph[N]) HasArc(from, to N) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.adj[from][to]

	return ok
}

// Weight returns the weight of arc from→to.
//
// Errors:
//   - ErrArcNotFound if the arc does not exist.
func (g *Graph[N]) Weight(from, to N) (float64, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	w, ok := g.adj[from][to]
	if !ok {
		return 0, fmt.Errorf("%w: %v→%v", ErrArcNotFound, from, to)
	}

	return w, nil
}

// Order returns the number of nodes.
func (g *Graph[N]) Order() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.adj)
}

// Size returns the number of directed arcs. An undirected edge counts twice.
func (g *Graph[N]) Size() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.arcs
}

// Nodes returns all nodes sorted ascending.
// Complexity: O(V log V).
func (g *Graph[N]) Nodes() []N {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]N, 0, len(g.adj))
	for n := range g.adj {
		out = append(out, n)
	}
	slices.Sort(out)

	return out
}

// Neighbors returns the outgoing arcs of n sorted ascending by target.
//
// Errors:
//   - ErrNodeNotFound if n is not in the graph.
//
// Complexity: O(d log d) where d is the out-degree of n.
func (g *Graph[N]) Neighbors(n N) ([]Arc[N], error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	nbrs, ok := g.adj[n]
	if !ok {
		return nil, fmt.Errorf("%w: %v", ErrNodeNotFound, n)
	}

	return sortedArcs(n, nbrs), nil
}

// Arcs returns every arc, sorted by From and then To.
// Complexity: O(A log A).
func (g *Graph[N]) Arcs() []Arc[N] {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]Arc[N], 0, g.arcs)
	for from, nbrs := range g.adj {
		for to, w := range nbrs {
			out = append(out, Arc[N]{From: from, To: to, Weight: w})
		}
	}
	slices.SortFunc(out, compareArcs[N])

	return out
}

// Range calls fn for every outgoing arc of n in unspecified order, stopping
// early when fn returns false. It allocates nothing. fn runs under the read
// lock and must not mutate the graph.
//
// Errors:
//   - ErrNodeNotFound if n is not in the graph.
func (g *Graph[N]) Range(n N, fn func(to N, w float64) bool) error {
	g.mu.RLock()
	defer g.mu.RUnlock()
	nbrs, ok := g.adj[n]
	if !ok {
		return fmt.Errorf("%w: %v", ErrNodeNotFound, n)
	}
	for to, w := range nbrs {
		if !fn(to, w) {
			break
		}
	}

	return nil
}

// Map returns a deep copy of the adjacency in nested-map form. It is the
// inverse of FromMap.
func (g *Graph[N]) Map() map[N]map[N]float64 {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make(map[N]map[N]float64, len(g.adj))
	for from, nbrs := range g.adj {
		cp := make(map[N]float64, len(nbrs))
		for to, w := range nbrs {
			cp[to] = w
		}
		out[from] = cp
	}

	return out
}

func sortedArcs[N cmp.Ordered](from N, nbrs map[N]float64) []Arc[N] {
	out := make([]Arc[N], 0, len(nbrs))
	for to, w := range nbrs {
		out = append(out, Arc[N]{From: from, To: to, Weight: w})
	}
	slices.SortFunc(out, compareArcs[N])

	return out
}

func compareArcs[N cmp.Ordered](a, b Arc[N]) int {
	if c := cmp.Compare(a.From, b.From); c != 0 {
		return c
	}

	return cmp.Compare(a.To, b.To)
}
