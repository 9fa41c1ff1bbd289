// SPDX-License-Identifier: MIT

package graphio

import (
	"fmt"
	"math"

	"github.com/katalvlaran/spanforest/core"
)

var (
	// ErrDuplicateNode indicates a label listed twice under nodes.
	ErrDuplicateNode = fmt.Errorf("graphio: duplicate node: %w", core.ErrInvalidArgument)

	// ErrDuplicateEdge indicates two edges joining the same unordered pair.
	ErrDuplicateEdge = fmt.Errorf("graphio: duplicate edge: %w", core.ErrInvalidArgument)

	// ErrInvalidWeight indicates a NaN weight.
	ErrInvalidWeight = fmt.Errorf("graphio: invalid weight: %w", core.ErrInvalidArgument)
)

// Document is the TOML shape of a graph.
type Document struct {
	Nodes []string  `toml:"nodes"`
	Edges []EdgeDoc `toml:"edges,omitempty"`
}

// EdgeDoc is one [[edges]] entry. A nil Weight is an unweighted edge.
// Directed exists only so that directed input is reported instead of
// silently read as undirected.
type EdgeDoc struct {
	From     string   `toml:"from"`
	To       string   `toml:"to"`
	Weight   *float64 `toml:"weight,omitempty"`
	Directed bool     `toml:"directed,omitempty"`
}

// ToDocument captures g in index order, with edges in g.Edges() order.
func ToDocument(g *core.Graph[string]) Document {
	doc := Document{Nodes: make([]string, 0, g.NodeCount())}
	for _, n := range g.Nodes() {
		doc.Nodes = append(doc.Nodes, n.Label())
	}
	doc.Edges = EdgeDocs(g.Edges())

	return doc
}

// EdgeDocs converts edges to their document form, preserving order.
func EdgeDocs(edges []core.Edge[string]) []EdgeDoc {
	out := make([]EdgeDoc, 0, len(edges))
	for _, e := range edges {
		d := EdgeDoc{From: e.Node1().Label(), To: e.Node2().Label(), Directed: e.Directed()}
		if e.HasWeight() {
			w := e.Weight()
			d.Weight = &w
		}
		out = append(out, d)
	}

	return out
}

// Graph builds a core graph from doc.
//
// Errors: ErrDuplicateNode, ErrDuplicateEdge, ErrInvalidWeight,
// core.ErrNodeNotFound for an unlisted endpoint and core.ErrDirectedEdge for
// a directed entry. Each is wrapped with the offending entry's position.
func (doc Document) Graph() (*core.Graph[string], error) {
	g := core.NewGraph[string]()
	for i, l := range doc.Nodes {
		added, err := g.AddLabel(l)
		if err != nil {
			return nil, fmt.Errorf("nodes[%d]: %w", i, err)
		}
		if !added {
			return nil, fmt.Errorf("nodes[%d] %q: %w", i, l, ErrDuplicateNode)
		}
	}

	for i, d := range doc.Edges {
		e, err := d.edge()
		if err != nil {
			return nil, fmt.Errorf("edges[%d]: %w", i, err)
		}
		added, err := g.AddEdge(e)
		if err != nil {
			return nil, fmt.Errorf("edges[%d]: %w", i, err)
		}
		if !added {
			return nil, fmt.Errorf("edges[%d] %v: %w", i, e, ErrDuplicateEdge)
		}
	}

	return g, nil
}

func (d EdgeDoc) edge() (core.Edge[string], error) {
	u, v := core.NewNode(d.From), core.NewNode(d.To)
	if d.Weight == nil {
		return core.NewEdge(u, v, d.Directed), nil
	}
	if math.IsNaN(*d.Weight) {
		return core.Edge[string]{}, fmt.Errorf("%s-%s: %w", d.From, d.To, ErrInvalidWeight)
	}

	return core.NewWeightedEdge(u, v, d.Directed, *d.Weight), nil
}
