// SPDX-License-Identifier: MIT
//
// File: graph.go
// Role: Graph storage layout, constructor and whole-graph maintenance.
// Storage:
//   - nodes[i]      : node at index i (insertion order, compacted on removal).
//   - index[n]      : reverse lookup node -> index.
//   - cells[i][j]   : edge between node i and node j for j <= i, nil if absent.
//     Row i has exactly i+1 cells, so the store is always a square matrix's
//     lower triangle and every undirected edge lives in exactly one cell.

package core

// Graph is a mutable undirected graph whose nodes are addressed both by
// label and by a dense insertion-order index.
//
// The zero value is not usable; call NewGraph.
type Graph[L comparable] struct {
	nodes []Node[L]
	index map[Node[L]]int
	cells [][]*Edge[L]

	// edgeCount is the number of populated cells (each edge, loops included, once).
	edgeCount int
}

// NewGraph creates an empty undirected Graph.
// Complexity: O(1).
func NewGraph[L comparable]() *Graph[L] {
	return &Graph[L]{
		index: make(map[Node[L]]int),
	}
}

// Directed reports whether the graph is directed. Always false.
func (g *Graph[L]) Directed() bool { return false }

// NodeCount returns the number of nodes.
// Complexity: O(1).
func (g *Graph[L]) NodeCount() int { return len(g.nodes) }

// EdgeCount returns the number of distinct edges.
//
// Every edge owns exactly one cell of the triangular store, a self-loop
// included, so the count never needs halving.
// Complexity: O(1).
func (g *Graph[L]) EdgeCount() int { return g.edgeCount }

// Clear removes every node and edge, discarding the index and the
// adjacency store.
// Complexity: O(1).
func (g *Graph[L]) Clear() {
	g.nodes = nil
	g.index = make(map[Node[L]]int)
	g.cells = nil
	g.edgeCount = 0
}

// Clone returns a deep copy of g: same nodes with the same indices and the
// same edges. Edge values are immutable, so the copy shares nothing mutable
// with g.
// Complexity: O(V²).
func (g *Graph[L]) Clone() *Graph[L] {
	out := &Graph[L]{
		nodes:     make([]Node[L], len(g.nodes)),
		index:     make(map[Node[L]]int, len(g.index)),
		cells:     make([][]*Edge[L], len(g.cells)),
		edgeCount: g.edgeCount,
	}
	copy(out.nodes, g.nodes)
	for n, i := range g.index {
		out.index[n] = i
	}
	for i, row := range g.cells {
		out.cells[i] = make([]*Edge[L], len(row))
		for j, e := range row {
			if e == nil {
				continue
			}
			ec := *e
			out.cells[i][j] = &ec
		}
	}

	return out
}

// cell returns a pointer to the slot for the unordered pair {i, j}.
// Callers must have validated both indices.
func (g *Graph[L]) cell(i, j int) **Edge[L] {
	if i < j {
		i, j = j, i
	}

	return &g.cells[i][j]
}

// validIndex reports whether i addresses an existing node.
func (g *Graph[L]) validIndex(i int) bool {
	return i >= 0 && i < len(g.nodes)
}
