// SPDX-License-Identifier: MIT

package components

import (
	"fmt"

	"github.com/katalvlaran/spanforest/bfs"
	"github.com/katalvlaran/spanforest/core"
	"github.com/katalvlaran/spanforest/disjointset"
	"github.com/katalvlaran/spanforest/internal/nilness"
)

// ErrDirectedGraph indicates that components were requested on a directed graph.
var ErrDirectedGraph = fmt.Errorf("components: connected components require an undirected graph: %w", core.ErrInvalidArgument)

// ConnectedComponents returns the maximal connected node sets of g.
//
// Errors: core.ErrNilInput for a nil graph, ErrDirectedGraph when g is directed.
func ConnectedComponents[L comparable](g core.GraphView[L]) ([][]core.Node[L], error) {
	forest, err := build("ConnectedComponents", g)
	if err != nil {
		return nil, err
	}

	return forest.Sets(), nil
}

// Count returns the number of connected components of g.
//
// Errors: as ConnectedComponents.
func Count[L comparable](g core.GraphView[L]) (int, error) {
	forest, err := build("Count", g)
	if err != nil {
		return 0, err
	}

	return forest.SetCount(), nil
}

// ComponentOf returns the component containing n, in g's node order.
// It walks only that component breadth-first instead of partitioning the
// whole graph.
//
// Errors: as ConnectedComponents, plus core.ErrNodeNotFound.
func ComponentOf[L comparable](g core.GraphView[L], n core.Node[L]) ([]core.Node[L], error) {
	if nilness.IsNil(g) {
		return nil, fmt.Errorf("ComponentOf: graph: %w", core.ErrNilInput)
	}
	if g.Directed() {
		return nil, fmt.Errorf("ComponentOf: %w", ErrDirectedGraph)
	}
	res, err := bfs.BFS(g, n)
	if err != nil {
		return nil, fmt.Errorf("ComponentOf: %w", err)
	}

	out := make([]core.Node[L], 0, len(res.Order))
	for _, v := range g.Nodes() {
		if res.Traversal.Color(v) == core.Finalized {
			out = append(out, v)
		}
	}

	return out, nil
}

// build fills a fresh forest with g's nodes, in g's order, and unions the
// endpoints of every edge.
func build[L comparable](op string, g core.GraphView[L]) (*disjointset.Forest[core.Node[L]], error) {
	if nilness.IsNil(g) {
		return nil, fmt.Errorf("%s: graph: %w", op, core.ErrNilInput)
	}
	if g.Directed() {
		return nil, fmt.Errorf("%s: %w", op, ErrDirectedGraph)
	}

	forest := disjointset.New[core.Node[L]]()
	for _, n := range g.Nodes() {
		if err := forest.MakeSet(n); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
	}
	for _, e := range g.Edges() {
		if err := forest.Union(e.Node1(), e.Node2()); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
	}

	return forest, nil
}
