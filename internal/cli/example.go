package cli

import "github.com/katalvlaran/shortpath/core"

// lettersAdjacency is the built-in eight-node road graph, listed in both
// directions so that every edge is undirected.
var lettersAdjacency = map[string]map[string]float64{
	"A": {"B": 2, "C": 5, "D": 1},
	"B": {"A": 2, "C": 3, "E": 4},
	"C": {"A": 5, "B": 3, "F": 6},
	"D": {"A": 1, "E": 7},
	"E": {"B": 4, "D": 7, "F": 8, "G": 2},
	"F": {"C": 6, "E": 8, "G": 3},
	"G": {"E": 2, "F": 3, "H": 1},
	"H": {"G": 1},
}

// ExampleGraph returns a fresh copy of the built-in eight-node graph.
func ExampleGraph() *core.Graph[string] {
	g, err := core.FromMap(lettersAdjacency)
	if err != nil {
		// Static data without NaN weights.
		panic(err)
	}

	return g
}
