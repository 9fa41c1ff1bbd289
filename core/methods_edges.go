// SPDX-License-Identifier: MIT
//
// File: methods_edges.go
// Role: Edge lifecycle and point lookups.
// Policy:
//   - Only undirected edges are accepted (ErrDirectedEdge otherwise).
//   - Both endpoints must already be present; edges never auto-add nodes.
//   - A slot holds at most one edge; adding over an occupied slot is a no-op.

package core

import (
	"fmt"

	"github.com/katalvlaran/spanforest/internal/nilness"
)

// AddEdge stores e in the slot of its endpoint pair.
//
// Returns false without modification if an equal edge already occupies the
// slot (weights are not compared), true once e is stored.
// Errors: ErrNilInput (nil endpoint label), ErrDirectedEdge, ErrNodeNotFound.
// Complexity: O(1).
func (g *Graph[L]) AddEdge(e Edge[L]) (bool, error) {
	i, j, err := g.endpoints("AddEdge", e)
	if err != nil {
		return false, err
	}

	slot := g.cell(i, j)
	if *slot != nil && (*slot).Equal(e) {
		return false, nil
	}
	stored := e
	*slot = &stored
	g.edgeCount++

	return true, nil
}

// AddEdgeBetween adds an unweighted edge between n1 and n2; see AddEdge.
func (g *Graph[L]) AddEdgeBetween(n1, n2 Node[L]) (bool, error) {
	return g.AddEdge(NewEdge(n1, n2, false))
}

// AddWeightedEdge adds a weighted edge between the nodes labelled l1 and l2;
// see AddEdge.
func (g *Graph[L]) AddWeightedEdge(l1, l2 L, weight float64) (bool, error) {
	return g.AddEdge(NewWeightedEdge(NewNode(l1), NewNode(l2), false, weight))
}

// AddEdgeAt adds an unweighted edge between the nodes at indices i and j.
// Returns ErrIndexOutOfRange for an invalid index.
func (g *Graph[L]) AddEdgeAt(i, j int) (bool, error) {
	n1, n2, err := g.nodePair("AddEdgeAt", i, j)
	if err != nil {
		return false, err
	}

	return g.AddEdge(NewEdge(n1, n2, false))
}

// AddWeightedEdgeAt adds a weighted edge between the nodes at indices i and j.
// Returns ErrIndexOutOfRange for an invalid index.
func (g *Graph[L]) AddWeightedEdgeAt(i, j int, weight float64) (bool, error) {
	n1, n2, err := g.nodePair("AddWeightedEdgeAt", i, j)
	if err != nil {
		return false, err
	}

	return g.AddEdge(NewWeightedEdge(n1, n2, false, weight))
}

// RemoveEdge clears the slot of e's endpoint pair.
//
// Errors: ErrNilInput, ErrDirectedEdge, ErrNodeNotFound, and ErrEdgeNotFound
// when the slot is empty.
// Complexity: O(1).
func (g *Graph[L]) RemoveEdge(e Edge[L]) error {
	i, j, err := g.endpoints("RemoveEdge", e)
	if err != nil {
		return err
	}

	return g.clearSlot("RemoveEdge", i, j)
}

// RemoveEdgeAt clears the slot between the nodes at indices i and j.
// Errors: ErrIndexOutOfRange, ErrEdgeNotFound.
func (g *Graph[L]) RemoveEdgeAt(i, j int) error {
	if _, _, err := g.nodePair("RemoveEdgeAt", i, j); err != nil {
		return err
	}

	return g.clearSlot("RemoveEdgeAt", i, j)
}

// Edge returns the edge joining n1 and n2. The boolean is false when the
// slot is empty.
// Errors: ErrNilInput, ErrNodeNotFound.
// Complexity: O(1).
func (g *Graph[L]) Edge(n1, n2 Node[L]) (Edge[L], bool, error) {
	i, j, err := g.endpoints("Edge", NewEdge(n1, n2, false))
	if err != nil {
		return Edge[L]{}, false, err
	}
	if e := *g.cell(i, j); e != nil {
		return *e, true, nil
	}

	return Edge[L]{}, false, nil
}

// EdgeAt returns the edge joining the nodes at indices i and j.
// Errors: ErrIndexOutOfRange.
func (g *Graph[L]) EdgeAt(i, j int) (Edge[L], bool, error) {
	if _, _, err := g.nodePair("EdgeAt", i, j); err != nil {
		return Edge[L]{}, false, err
	}
	if e := *g.cell(i, j); e != nil {
		return *e, true, nil
	}

	return Edge[L]{}, false, nil
}

// Edges returns every distinct edge exactly once, in row-major order of the
// triangular store: the edge {i,j} with i >= j is listed under row i.
// Complexity: O(V²).
func (g *Graph[L]) Edges() []Edge[L] {
	out := make([]Edge[L], 0, g.edgeCount)
	for _, row := range g.cells {
		for _, e := range row {
			if e != nil {
				out = append(out, *e)
			}
		}
	}

	return out
}

// endpoints validates e for this graph and resolves its endpoint indices.
func (g *Graph[L]) endpoints(op string, e Edge[L]) (int, int, error) {
	if nilness.IsNil(e.node1.label) || nilness.IsNil(e.node2.label) {
		return 0, 0, fmt.Errorf("%s: %w", op, ErrNilInput)
	}
	if e.directed {
		return 0, 0, fmt.Errorf("%s(%v): %w", op, e, ErrDirectedEdge)
	}
	i, ok := g.index[e.node1]
	if !ok {
		return 0, 0, fmt.Errorf("%s(%v): endpoint %v: %w", op, e, e.node1, ErrNodeNotFound)
	}
	j, ok := g.index[e.node2]
	if !ok {
		return 0, 0, fmt.Errorf("%s(%v): endpoint %v: %w", op, e, e.node2, ErrNodeNotFound)
	}

	return i, j, nil
}

// nodePair resolves two indices to nodes, rejecting out-of-range values.
func (g *Graph[L]) nodePair(op string, i, j int) (Node[L], Node[L], error) {
	if !g.validIndex(i) || !g.validIndex(j) {
		return Node[L]{}, Node[L]{}, fmt.Errorf("%s(%d,%d): size %d: %w", op, i, j, len(g.nodes), ErrIndexOutOfRange)
	}

	return g.nodes[i], g.nodes[j], nil
}

// clearSlot empties slot {i,j}, failing with ErrEdgeNotFound if it is empty.
func (g *Graph[L]) clearSlot(op string, i, j int) error {
	slot := g.cell(i, j)
	if *slot == nil {
		return fmt.Errorf("%s(%v,%v): %w", op, g.nodes[i], g.nodes[j], ErrEdgeNotFound)
	}
	*slot = nil
	g.edgeCount--

	return nil
}
