package dijkstra

import (
	"cmp"
	"fmt"
	"math"
	"slices"

	"github.com/katalvlaran/shortpath/core"
)

// ReconstructPath walks prev backwards from dest to source and returns the
// route in source→dest order. dist and prev must come from the same run
// from source.
//
// Errors:
//   - ErrUnknownNode if dest is not a key of dist.
//   - ErrUnreachableDestination if dist[dest] is infinite. No partial or
//     singleton path is returned in that case.
//   - ErrBrokenChain if the predecessor links never reach source.
//
// Complexity: O(L) for a path of L nodes.
func ReconstructPath[N cmp.Ordered](dist DistanceTable[N], prev PredecessorTable[N], source, dest N) (Path[N], error) {
	d, ok := dist[dest]
	if !ok {
		return nil, fmt.Errorf("%w: %v", ErrUnknownNode, dest)
	}
	if math.IsInf(d, 1) {
		return nil, fmt.Errorf("%w: %v→%v", ErrUnreachableDestination, source, dest)
	}

	path := Path[N]{dest}
	// A simple path visits each node at most once; longer walks mean a cycle.
	for cur := dest; cur != source; {
		p, ok := prev[cur]
		if !ok || len(path) > len(dist) {
			return nil, fmt.Errorf("%w: stuck at %v", ErrBrokenChain, cur)
		}
		path = append(path, p)
		cur = p
	}
	slices.Reverse(path)

	return path, nil
}

// Cost sums the arc weights along p in g.
//
// Errors:
//   - core.ErrArcNotFound if two consecutive nodes are not joined by an arc.
func (p Path[N]) Cost(g *core.Graph[N]) (float64, error) {
	if g == nil {
		return 0, ErrNilGraph
	}
	total := 0.0
	for i := 1; i < len(p); i++ {
		w, err := g.Weight(p[i-1], p[i])
		if err != nil {
			return 0, err
		}
		total += w
	}

	return total, nil
}
