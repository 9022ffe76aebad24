package graphio

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/shortpath/core"
)

// description is the format-agnostic form every decoder produces.
type description struct {
	Undirected bool                          `json:"undirected" yaml:"undirected"`
	Nodes      []string                      `json:"nodes" yaml:"nodes"`
	Edges      []link                        `json:"edges" yaml:"edges"`
	Arcs       []link                        `json:"arcs" yaml:"arcs"`
	Adjacency  map[string]map[string]float64 `json:"adjacency" yaml:"adjacency"`

	// mirrorAll is set by the WithUndirected override: adjacency entries and
	// explicit arcs are mirrored too, not only edges.
	mirrorAll bool
}

// link is one weighted connection between two named nodes. Weight is a
// pointer so that a missing weight key is told apart from an explicit 0.
type link struct {
	From   string   `json:"from" yaml:"from"`
	To     string   `json:"to" yaml:"to"`
	Weight *float64 `json:"weight" yaml:"weight"`
}

func newLink(from, to string, w float64) link {
	return link{From: from, To: to, Weight: &w}
}

// build turns d into a graph. Adjacency is applied in sorted order so that a
// later explicit edge or arc deterministically wins over it. With mirrorAll
// every adjacency entry and arc also inserts its reverse, so when both
// directions are listed with different weights the later one wins.
func (d *description) build() (*core.Graph[string], error) {
	var gopts []core.Option
	if d.Undirected {
		gopts = append(gopts, core.WithUndirected())
	}
	g := core.New[string](gopts...)
	addArc := g.AddArc
	if d.mirrorAll {
		addArc = g.AddEdge
	}

	for _, n := range d.Nodes {
		if n == "" {
			return nil, ErrEmptyNode
		}
		g.AddNode(n)
	}

	froms := make([]string, 0, len(d.Adjacency))
	for from := range d.Adjacency {
		froms = append(froms, from)
	}
	sort.Strings(froms)
	for _, from := range froms {
		if from == "" {
			return nil, ErrEmptyNode
		}
		g.AddNode(from)
		for to, w := range d.Adjacency[from] {
			if err := addLink(addArc, newLink(from, to, w)); err != nil {
				return nil, err
			}
		}
	}

	for _, e := range d.Edges {
		if err := addLink(g.AddEdge, e); err != nil {
			return nil, err
		}
	}
	for _, a := range d.Arcs {
		if err := addLink(addArc, a); err != nil {
			return nil, err
		}
	}

	return g, nil
}

func addLink(add func(from, to string, w float64) error, l link) error {
	if l.From == "" || l.To == "" {
		return fmt.Errorf("%w: link %q→%q", ErrEmptyNode, l.From, l.To)
	}
	if l.Weight == nil {
		return fmt.Errorf("%w: link %s→%s: missing weight", ErrSyntax, l.From, l.To)
	}

	return add(l.From, l.To, *l.Weight)
}
