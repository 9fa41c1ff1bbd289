// SPDX-License-Identifier: MIT
//
// File: methods_nodes.go
// Role: Node lifecycle and node lookups.
// Policy:
//   - Every method validates all inputs before touching storage (atomic: all or nothing).
//   - Indices are dense and insertion-ordered; removal compacts higher indices by one.

package core

import (
	"fmt"

	"github.com/katalvlaran/spanforest/internal/nilness"
)

// AddNode inserts n at index NodeCount() and grows the adjacency store by one
// row and one column, all new cells empty.
//
// Returns false (and no error) if a node with the same label is already
// present; the graph is unchanged in that case.
// Returns ErrNilInput if the label is nil.
// Complexity: O(V) for the new row.
func (g *Graph[L]) AddNode(n Node[L]) (bool, error) {
	if nilness.IsNil(n.label) {
		return false, fmt.Errorf("AddNode: %w", ErrNilInput)
	}
	if _, exists := g.index[n]; exists {
		return false, nil
	}

	i := len(g.nodes)
	g.nodes = append(g.nodes, n)
	g.index[n] = i
	// Row i holds the slots (i,0)..(i,i); the column part of the new node
	// lives implicitly in the rows added after it.
	g.cells = append(g.cells, make([]*Edge[L], i+1))

	return true, nil
}

// AddLabel is shorthand for AddNode(NewNode(label)).
func (g *Graph[L]) AddLabel(label L) (bool, error) {
	return g.AddNode(NewNode(label))
}

// HasNode reports whether n is present.
// Complexity: O(1).
func (g *Graph[L]) HasNode(n Node[L]) bool {
	_, ok := g.index[n]
	return ok
}

// Node returns the stored node carrying label, if any.
// Complexity: O(1).
func (g *Graph[L]) Node(label L) (Node[L], bool) {
	n := NewNode(label)
	if _, ok := g.index[n]; !ok {
		return Node[L]{}, false
	}

	return n, true
}

// NodeAt returns the node at index i.
// Returns ErrIndexOutOfRange if i is outside [0, NodeCount()).
// Complexity: O(1).
func (g *Graph[L]) NodeAt(i int) (Node[L], error) {
	if !g.validIndex(i) {
		return Node[L]{}, fmt.Errorf("NodeAt(%d): size %d: %w", i, len(g.nodes), ErrIndexOutOfRange)
	}

	return g.nodes[i], nil
}

// IndexOf returns the current index of n.
// Returns ErrNilInput for a nil label and ErrNodeNotFound if n is absent.
// Complexity: O(1).
func (g *Graph[L]) IndexOf(n Node[L]) (int, error) {
	if nilness.IsNil(n.label) {
		return -1, fmt.Errorf("IndexOf: %w", ErrNilInput)
	}
	i, ok := g.index[n]
	if !ok {
		return -1, fmt.Errorf("IndexOf(%v): %w", n, ErrNodeNotFound)
	}

	return i, nil
}

// Nodes returns all nodes in index order. The slice is a fresh copy.
// Complexity: O(V).
func (g *Graph[L]) Nodes() []Node[L] {
	out := make([]Node[L], len(g.nodes))
	copy(out, g.nodes)

	return out
}

// RemoveNode deletes n together with every incident edge, then shifts the
// index of every node that followed n down by one.
//
// Returns ErrNilInput for a nil label and ErrNodeNotFound if n is absent.
// Complexity: O(V²) worst case (one column removal per later row).
func (g *Graph[L]) RemoveNode(n Node[L]) error {
	i, err := g.IndexOf(n)
	if err != nil {
		return fmt.Errorf("RemoveNode: %w", err)
	}
	g.removeAt(i)

	return nil
}

// RemoveLabel is shorthand for RemoveNode(NewNode(label)).
func (g *Graph[L]) RemoveLabel(label L) error {
	return g.RemoveNode(NewNode(label))
}

// RemoveNodeAt deletes the node at index i; see RemoveNode.
// Returns ErrIndexOutOfRange if i is outside [0, NodeCount()).
func (g *Graph[L]) RemoveNodeAt(i int) error {
	if !g.validIndex(i) {
		return fmt.Errorf("RemoveNodeAt(%d): size %d: %w", i, len(g.nodes), ErrIndexOutOfRange)
	}
	g.removeAt(i)

	return nil
}

// removeAt drops row k and column k of the store and compacts indices.
// k must be valid.
func (g *Graph[L]) removeAt(k int) {
	// 1) Count the edges that disappear: row k holds (k,0..k), the column
	//    part is cell (r,k) of every later row r.
	removed := 0
	for _, e := range g.cells[k] {
		if e != nil {
			removed++
		}
	}
	for r := k + 1; r < len(g.cells); r++ {
		if g.cells[r][k] != nil {
			removed++
		}
		// 2) Cut column k out of the later row; diagonal cells (self-loops)
		//    move from (r,r) to (r-1,r-1) together with their row.
		row := g.cells[r]
		copy(row[k:], row[k+1:])
		row[len(row)-1] = nil
		g.cells[r] = row[:len(row)-1]
	}

	// 3) Drop row k itself.
	copy(g.cells[k:], g.cells[k+1:])
	g.cells[len(g.cells)-1] = nil
	g.cells = g.cells[:len(g.cells)-1]

	// 4) Drop the node and renumber every successor by exactly one.
	delete(g.index, g.nodes[k])
	copy(g.nodes[k:], g.nodes[k+1:])
	g.nodes = g.nodes[:len(g.nodes)-1]
	for i := k; i < len(g.nodes); i++ {
		g.index[g.nodes[i]] = i
	}

	g.edgeCount -= removed
}
