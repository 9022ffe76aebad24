package dijkstra

import (
	"cmp"
	"container/heap"
	"fmt"
	"math"

	"github.com/katalvlaran/shortpath/core"
)

// ShortestPaths computes shortest distances and predecessor links from
// source to every node of g.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGraph).
//  2. opts must be valid (ErrBadMaxDistance, ErrBadInfThreshold, ErrBadConcurrency).
//  3. g must contain source (ErrUnknownSource).
//  4. No arc in g may have a negative weight (ErrInvalidWeight).
//
// The graph is only read; concurrent calls on the same graph are safe as
// long as nobody mutates it meanwhile.
//
// Complexity:
//
//   - Time:  O((V + A) log V)
//   - Space: O(V + A)
func ShortestPaths[N cmp.Ordered](g *core.Graph[N], source N, opts ...Option) (*Result[N], error) {
	if g == nil {
		return nil, ErrNilGraph
	}

	cfg, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}

	if !g.HasNode(source) {
		return nil, fmt.Errorf("%w: %v", ErrUnknownSource, source)
	}

	// Fail fast on negative weights before touching any table.
	nodes := g.Nodes()
	for _, a := range g.Arcs() {
		if a.Weight < 0 {
			return nil, fmt.Errorf("%w: arc %v→%v weight=%g", ErrInvalidWeight, a.From, a.To, a.Weight)
		}
	}

	r := &runner[N]{
		g:       g,
		options: cfg,
		dist:    make(DistanceTable[N], len(nodes)),
		prev:    make(PredecessorTable[N], len(nodes)),
		pq:      make(minQueue[N], 0, len(nodes)),
	}
	r.init(nodes, source)
	if err = r.process(); err != nil {
		return nil, err
	}

	return &Result[N]{Source: source, Dist: r.dist, Prev: r.prev}, nil
}

// runner holds the mutable state of a single run.
type runner[N cmp.Ordered] struct {
	g       *core.Graph[N]
	options Options
	dist    DistanceTable[N]
	prev    PredecessorTable[N]
	pq      minQueue[N]
}

// init sets every distance to +Inf except the source and seeds the heap.
func (r *runner[N]) init(nodes []N, source N) {
	// 1) dist[v] = +Inf for every v. prev stays empty: absence means "none".
	for _, n := range nodes {
		r.dist[n] = math.Inf(1)
	}

	// 2) Distance to the source is zero.
	r.dist[source] = 0

	// 3) Seed the heap with the source.
	heap.Push(&r.pq, entry[N]{node: source, dist: 0})
}

// process is the main loop. It pops the closest pending entry and relaxes its
// outgoing arcs.
//
// Loop termination conditions:
//
//   - The heap becomes empty (every reachable node settled).
//   - The smallest pending distance exceeds MaxDistance.
func (r *runner[N]) process() error {
	for r.pq.Len() > 0 {
		// 1) Pop the smallest (dist, node) entry.
		e := heap.Pop(&r.pq).(entry[N])

		// 2) Stale entry: a shorter distance was pushed after this one was queued.
		if e.dist > r.dist[e.node] {
			continue
		}

		// 3) Past the cap. Heap order guarantees nothing closer remains.
		if e.dist > r.options.MaxDistance {
			break
		}

		// 4) e.dist is final for e.node; relax its outgoing arcs.
		if err := r.relax(e.node); err != nil {
			return err
		}
	}

	return nil
}

// relax tries to improve every neighbor v of u through u. Arcs with weight
// >= InfEdgeThreshold are impassable; improvements past MaxDistance are
// dropped so those nodes stay at +Inf.
//
// Assumes r.dist[u] is final.
func (r *runner[N]) relax(u N) error {
	du := r.dist[u]
	var bad error

	// 1) Walk the outgoing arcs of u without allocating.
	err := r.g.Range(u, func(v N, w float64) bool {
		// 2) Second line against negative weights; the pre-scan should have caught them.
		if w < 0 {
			bad = fmt.Errorf("%w: arc %v→%v weight=%g", ErrInvalidWeight, u, v, w)
			return false
		}

		// 3) Impassable arc.
		if w >= r.options.InfEdgeThreshold {
			return true
		}

		// 4) Candidate distance source → … → u → v. Strict < keeps the first
		//    settled predecessor on ties.
		nd := du + w
		if nd > r.options.MaxDistance || nd >= r.dist[v] {
			return true
		}

		// 5) Record the improvement and queue v again (lazy decrease-key).
		r.dist[v] = nd
		r.prev[v] = u
		heap.Push(&r.pq, entry[N]{node: v, dist: nd})

		return true
	})
	if err != nil {
		return fmt.Errorf("dijkstra: neighbors of %v: %w", u, err)
	}

	return bad
}
