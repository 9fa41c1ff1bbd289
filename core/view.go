// SPDX-License-Identifier: MIT
//
// File: view.go
// Role: Read-only graph surface consumed by the algorithms.

package core

// GraphView is the read-only surface the spanning-forest and components
// algorithms need. *Graph implements it; accepting the interface lets the
// algorithms reject other, directed implementations explicitly.
type GraphView[L comparable] interface {
	// Directed reports whether edges are one-way.
	Directed() bool
	// NodeCount returns |V|.
	NodeCount() int
	// Nodes returns all nodes in a stable order.
	Nodes() []Node[L]
	// HasNode reports membership.
	HasNode(n Node[L]) bool
	// Edges returns each distinct edge once.
	Edges() []Edge[L]
	// AdjacentNodesOf returns the distinct neighbors of n.
	AdjacentNodesOf(n Node[L]) ([]Node[L], error)
	// Edge returns the edge joining n1 and n2, if any.
	Edge(n1, n2 Node[L]) (Edge[L], bool, error)
}

var _ GraphView[string] = (*Graph[string])(nil)
