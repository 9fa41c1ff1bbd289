// SPDX-License-Identifier: MIT
//
// File: methods_adjacent.go
// Role: Neighborhood queries (row scans) and the directed-only stubs.
// Determinism:
//   - Results are ordered by the neighbor's current index.
//   - A self-loop makes a node its own neighbor, listed once.

package core

import "fmt"

// AdjacentNodesOf returns the distinct neighbors of n in index order.
// Errors: ErrNilInput, ErrNodeNotFound.
// Complexity: O(V).
func (g *Graph[L]) AdjacentNodesOf(n Node[L]) ([]Node[L], error) {
	i, err := g.IndexOf(n)
	if err != nil {
		return nil, fmt.Errorf("AdjacentNodesOf: %w", err)
	}

	return g.adjacentNodes(i), nil
}

// AdjacentNodesAt returns the distinct neighbors of the node at index i.
// Errors: ErrIndexOutOfRange.
func (g *Graph[L]) AdjacentNodesAt(i int) ([]Node[L], error) {
	if !g.validIndex(i) {
		return nil, fmt.Errorf("AdjacentNodesAt(%d): size %d: %w", i, len(g.nodes), ErrIndexOutOfRange)
	}

	return g.adjacentNodes(i), nil
}

// EdgesOf returns every edge incident to n, in neighbor index order.
// Errors: ErrNilInput, ErrNodeNotFound.
// Complexity: O(V).
func (g *Graph[L]) EdgesOf(n Node[L]) ([]Edge[L], error) {
	i, err := g.IndexOf(n)
	if err != nil {
		return nil, fmt.Errorf("EdgesOf: %w", err)
	}

	return g.incidentEdges(i), nil
}

// EdgesAt returns every edge incident to the node at index i.
// Errors: ErrIndexOutOfRange.
func (g *Graph[L]) EdgesAt(i int) ([]Edge[L], error) {
	if !g.validIndex(i) {
		return nil, fmt.Errorf("EdgesAt(%d): size %d: %w", i, len(g.nodes), ErrIndexOutOfRange)
	}

	return g.incidentEdges(i), nil
}

// Degree returns the number of edges incident to n; a self-loop counts once.
// Errors: ErrNilInput, ErrNodeNotFound.
func (g *Graph[L]) Degree(n Node[L]) (int, error) {
	i, err := g.IndexOf(n)
	if err != nil {
		return 0, fmt.Errorf("Degree: %w", err)
	}
	d := 0
	for j := range g.nodes {
		if *g.cell(i, j) != nil {
			d++
		}
	}

	return d, nil
}

// PredecessorNodesOf is defined only for directed graphs.
// Always returns ErrUnsupported.
func (g *Graph[L]) PredecessorNodesOf(n Node[L]) ([]Node[L], error) {
	return nil, fmt.Errorf("PredecessorNodesOf(%v): %w", n, ErrUnsupported)
}

// IngoingEdgesOf is defined only for directed graphs.
// Always returns ErrUnsupported.
func (g *Graph[L]) IngoingEdgesOf(n Node[L]) ([]Edge[L], error) {
	return nil, fmt.Errorf("IngoingEdgesOf(%v): %w", n, ErrUnsupported)
}

// adjacentNodes scans the logical row i: cells (i,0..i) and (r,i) for r > i.
func (g *Graph[L]) adjacentNodes(i int) []Node[L] {
	var out []Node[L]
	for j := range g.nodes {
		if *g.cell(i, j) != nil {
			out = append(out, g.nodes[j])
		}
	}

	return out
}

// incidentEdges is adjacentNodes returning the edges instead of the nodes.
func (g *Graph[L]) incidentEdges(i int) []Edge[L] {
	var out []Edge[L]
	for j := range g.nodes {
		if e := *g.cell(i, j); e != nil {
			out = append(out, *e)
		}
	}

	return out
}
