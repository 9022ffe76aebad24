// Package dijkstra_test contains unit tests for the shortest-path engine:
// input validation, the reference eight-node graph, directed and unreachable
// cases, option handling and determinism.
package dijkstra_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/shortpath/core"
	"github.com/katalvlaran/shortpath/dijkstra"
)

// buildLetters returns the undirected eight-node graph A–H used throughout
// the tests. Edges: A—B 2, A—C 5, A—D 1, B—C 3, B—E 4, C—F 6, D—E 7,
// E—F 8, E—G 2, F—G 3, G—H 1.
func buildLetters(t *testing.T) *core.Graph[string] {
	t.Helper()
	g, err := core.FromMap(map[string]map[string]float64{
		"A": {"B": 2, "C": 5, "D": 1},
		"B": {"A": 2, "C": 3, "E": 4},
		"C": {"A": 5, "B": 3, "F": 6},
		"D": {"A": 1, "E": 7},
		"E": {"B": 4, "D": 7, "F": 8, "G": 2},
		"F": {"C": 6, "E": 8, "G": 3},
		"G": {"E": 2, "F": 3, "H": 1},
		"H": {"G": 1},
	})
	require.NoError(t, err)

	return g
}

// ------------------------------------------------------------------------
// 1. Validation
// ------------------------------------------------------------------------

func TestShortestPaths_NilGraph(t *testing.T) {
	_, err := dijkstra.ShortestPaths[string](nil, "A")
	require.ErrorIs(t, err, dijkstra.ErrNilGraph)
}

func TestShortestPaths_UnknownSource(t *testing.T) {
	g := core.New[string]()
	_, err := dijkstra.ShortestPaths(g, "Any")
	require.ErrorIs(t, err, dijkstra.ErrUnknownSource)

	g.AddNode("A")
	_, err = dijkstra.ShortestPaths(g, "X")
	require.ErrorIs(t, err, dijkstra.ErrUnknownSource)
	assert.Contains(t, err.Error(), "X")
}

func TestShortestPaths_NegativeWeight(t *testing.T) {
	g := buildLetters(t)
	require.NoError(t, g.AddArc("G", "H", -1))

	res, err := dijkstra.ShortestPaths(g, "A")
	require.ErrorIs(t, err, dijkstra.ErrInvalidWeight)
	assert.Nil(t, res)
	assert.Contains(t, err.Error(), "G→H")
}

func TestShortestPaths_NegativeWeightOutsideReach(t *testing.T) {
	// The eager scan covers arcs the search would never visit.
	g := core.New[string]()
	require.NoError(t, g.AddArc("A", "B", 1))
	require.NoError(t, g.AddArc("X", "Y", -3))

	_, err := dijkstra.ShortestPaths(g, "A")
	require.ErrorIs(t, err, dijkstra.ErrInvalidWeight)
}

func TestShortestPaths_BadOptions(t *testing.T) {
	g := buildLetters(t)
	tests := []struct {
		name string
		opt  dijkstra.Option
		want error
	}{
		{"negative max distance", dijkstra.WithMaxDistance(-1), dijkstra.ErrBadMaxDistance},
		{"NaN max distance", dijkstra.WithMaxDistance(math.NaN()), dijkstra.ErrBadMaxDistance},
		{"zero threshold", dijkstra.WithInfEdgeThreshold(0), dijkstra.ErrBadInfThreshold},
		{"negative threshold", dijkstra.WithInfEdgeThreshold(-5), dijkstra.ErrBadInfThreshold},
		{"zero concurrency", dijkstra.WithConcurrency(0), dijkstra.ErrBadConcurrency},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := dijkstra.ShortestPaths(g, "A", tc.opt)
			require.ErrorIs(t, err, tc.want)
		})
	}
}

// ------------------------------------------------------------------------
// 2. Reference graph
// ------------------------------------------------------------------------

func TestShortestPaths_LettersGraph(t *testing.T) {
	res, err := dijkstra.ShortestPaths(buildLetters(t), "A")
	require.NoError(t, err)

	want := dijkstra.DistanceTable[string]{
		"A": 0, "B": 2, "C": 5, "D": 1, "E": 6, "F": 11, "G": 8, "H": 9,
	}
	assert.Equal(t, want, res.Dist)

	_, hasPrev := res.Predecessor("A")
	assert.False(t, hasPrev, "source has no predecessor")

	path, err := res.PathTo("D")
	require.NoError(t, err)
	assert.Equal(t, dijkstra.Path[string]{"A", "D"}, path)

	path, err = res.PathTo("H")
	require.NoError(t, err)
	assert.Equal(t, dijkstra.Path[string]{"A", "B", "E", "G", "H"}, path)
}

func TestShortestPaths_LettersTieBreak(t *testing.T) {
	// C is reachable at cost 5 directly and via B; F at cost 11 via C and via G.
	// Strict relaxation keeps the first settled predecessor.
	res, err := dijkstra.ShortestPaths(buildLetters(t), "A")
	require.NoError(t, err)

	p, _ := res.Predecessor("C")
	assert.Equal(t, "A", p)
	p, _ = res.Predecessor("F")
	assert.Equal(t, "C", p)
}

// ------------------------------------------------------------------------
// 3. Directed and unreachable
// ------------------------------------------------------------------------

func TestShortestPaths_Directed(t *testing.T) {
	// A→B(2), A→C(1), C→B(1), B→D(3), C→D(5)
	g := core.New[string]()
	for _, a := range []core.Arc[string]{
		{From: "A", To: "B", Weight: 2},
		{From: "A", To: "C", Weight: 1},
		{From: "C", To: "B", Weight: 1},
		{From: "B", To: "D", Weight: 3},
		{From: "C", To: "D", Weight: 5},
	} {
		require.NoError(t, g.AddArc(a.From, a.To, a.Weight))
	}

	res, err := dijkstra.ShortestPaths(g, "A")
	require.NoError(t, err)
	assert.Equal(t, 2.0, res.Dist["B"])
	assert.Equal(t, 5.0, res.Dist["D"])

	// Nothing flows back against the arcs.
	back, err := dijkstra.ShortestPaths(g, "D")
	require.NoError(t, err)
	assert.False(t, back.Reachable("A"))
	assert.True(t, math.IsInf(back.Dist["A"], 1))
}

func TestShortestPaths_Unreachable(t *testing.T) {
	g := buildLetters(t)
	g.AddNode("Z")

	res, err := dijkstra.ShortestPaths(g, "A")
	require.NoError(t, err)

	d, known := res.Distance("Z")
	assert.True(t, known)
	assert.True(t, math.IsInf(d, 1))
	_, hasPrev := res.Predecessor("Z")
	assert.False(t, hasPrev)

	_, err = res.PathTo("Z")
	require.ErrorIs(t, err, dijkstra.ErrUnreachableDestination)
}

// ------------------------------------------------------------------------
// 4. Options
// ------------------------------------------------------------------------

func TestShortestPaths_MaxDistance(t *testing.T) {
	res, err := dijkstra.ShortestPaths(buildLetters(t), "A", dijkstra.WithMaxDistance(5))
	require.NoError(t, err)

	for _, n := range []string{"A", "B", "C", "D"} {
		assert.True(t, res.Reachable(n), n)
	}
	for _, n := range []string{"E", "F", "G", "H"} {
		assert.False(t, res.Reachable(n), n)
	}
}

func TestShortestPaths_MaxDistanceZero(t *testing.T) {
	res, err := dijkstra.ShortestPaths(buildLetters(t), "A", dijkstra.WithMaxDistance(0))
	require.NoError(t, err)
	assert.Equal(t, 0.0, res.Dist["A"])
	assert.False(t, res.Reachable("D"))
	assert.Empty(t, res.Prev)
}

func TestShortestPaths_InfEdgeThreshold(t *testing.T) {
	// Arcs of weight >= 4 are cut, which isolates E, F, G and H from A.
	res, err := dijkstra.ShortestPaths(buildLetters(t), "A", dijkstra.WithInfEdgeThreshold(4))
	require.NoError(t, err)

	assert.Equal(t, 5.0, res.Dist["C"], "A—B—C survives")
	assert.False(t, res.Reachable("E"))
	assert.False(t, res.Reachable("H"))
}

func TestShortestPaths_InfiniteWeightIsImpassable(t *testing.T) {
	g := core.New[string](core.WithUndirected())
	require.NoError(t, g.AddEdge("A", "B", math.Inf(1)))

	res, err := dijkstra.ShortestPaths(g, "A")
	require.NoError(t, err)
	assert.False(t, res.Reachable("B"))
}

// ------------------------------------------------------------------------
// 5. Edge cases and determinism
// ------------------------------------------------------------------------

func TestShortestPaths_SingleNode(t *testing.T) {
	g := core.New[string]()
	g.AddNode("Solo")

	res, err := dijkstra.ShortestPaths(g, "Solo")
	require.NoError(t, err)
	assert.Equal(t, dijkstra.DistanceTable[string]{"Solo": 0}, res.Dist)

	path, err := res.PathTo("Solo")
	require.NoError(t, err)
	assert.Equal(t, dijkstra.Path[string]{"Solo"}, path)
}

func TestShortestPaths_SelfLoopAndZeroWeights(t *testing.T) {
	g := core.New[string]()
	require.NoError(t, g.AddArc("X", "X", 0))
	require.NoError(t, g.AddArc("X", "Y", 0))

	res, err := dijkstra.ShortestPaths(g, "X")
	require.NoError(t, err)
	assert.Equal(t, 0.0, res.Dist["X"])
	assert.Equal(t, 0.0, res.Dist["Y"])
	_, hasPrev := res.Predecessor("X")
	assert.False(t, hasPrev, "a zero self-loop never becomes the source's predecessor")
}

func TestShortestPaths_FractionalWeights(t *testing.T) {
	g := core.New[int](core.WithUndirected())
	require.NoError(t, g.AddEdge(1, 2, 0.5))
	require.NoError(t, g.AddEdge(2, 3, 0.25))
	require.NoError(t, g.AddEdge(1, 3, 1))

	res, err := dijkstra.ShortestPaths(g, 1)
	require.NoError(t, err)
	assert.InDelta(t, 0.75, res.Dist[3], 1e-12)

	path, err := res.PathTo(3)
	require.NoError(t, err)
	assert.Equal(t, dijkstra.Path[int]{1, 2, 3}, path)
}

func TestShortestPaths_Idempotent(t *testing.T) {
	g := buildLetters(t)
	first, err := dijkstra.ShortestPaths(g, "A")
	require.NoError(t, err)
	second, err := dijkstra.ShortestPaths(g, "A")
	require.NoError(t, err)

	assert.Equal(t, first.Dist, second.Dist)
	assert.Equal(t, first.Prev, second.Prev, "heap tie-break is deterministic")

	// Results are independent values: mutating one leaves the other intact.
	first.Dist["B"] = 100
	assert.Equal(t, 2.0, second.Dist["B"])
}
