// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Node and Edge value types shared by the graph and every algorithm.
// Policy:
//   - Both types are immutable after construction (unexported fields, value receivers).
//   - Node identity is label identity; Node is comparable and usable as a map key.
//   - Edge identity ignores weight; undirected edges compare symmetrically.

package core

import (
	"fmt"
	"math"
)

// Node represents a vertex of the graph, identified solely by its label.
//
// Node is a comparable value: two nodes are == iff their labels are ==.
// Per-algorithm scratch data (color, distance, predecessor) is kept out of
// Node on purpose; see Traversal.
type Node[L comparable] struct {
	label L
}

// NewNode wraps label into a Node.
// Complexity: O(1).
func NewNode[L comparable](label L) Node[L] {
	return Node[L]{label: label}
}

// Label returns the immutable label of n.
func (n Node[L]) Label() L { return n.label }

// String renders the label with fmt's default verb.
func (n Node[L]) String() string { return fmt.Sprint(n.label) }

// Edge connects two nodes, optionally carrying a weight.
//
// An Edge built with NewEdge is unweighted: HasWeight reports false and
// Weight returns NaN. This state is distinct from a zero weight.
type Edge[L comparable] struct {
	node1    Node[L]
	node2    Node[L]
	directed bool
	weighted bool
	weight   float64
}

// NewEdge returns an unweighted edge between n1 and n2.
// Complexity: O(1).
func NewEdge[L comparable](n1, n2 Node[L], directed bool) Edge[L] {
	return Edge[L]{node1: n1, node2: n2, directed: directed}
}

// NewWeightedEdge returns an edge between n1 and n2 with the given weight.
// A NaN weight yields an unweighted edge, mirroring NewEdge.
// Complexity: O(1).
func NewWeightedEdge[L comparable](n1, n2 Node[L], directed bool, weight float64) Edge[L] {
	if math.IsNaN(weight) {
		return NewEdge(n1, n2, directed)
	}

	return Edge[L]{node1: n1, node2: n2, directed: directed, weighted: true, weight: weight}
}

// Node1 returns the first endpoint (the source for directed edges).
func (e Edge[L]) Node1() Node[L] { return e.node1 }

// Node2 returns the second endpoint (the target for directed edges).
func (e Edge[L]) Node2() Node[L] { return e.node2 }

// Directed reports whether the edge is one-way.
func (e Edge[L]) Directed() bool { return e.directed }

// HasWeight reports whether a weight was assigned.
func (e Edge[L]) HasWeight() bool { return e.weighted }

// Weight returns the edge weight, or NaN when the edge is unweighted.
func (e Edge[L]) Weight() float64 {
	if !e.weighted {
		return math.NaN()
	}

	return e.weight
}

// IsLoop reports whether both endpoints are the same node.
func (e Edge[L]) IsLoop() bool { return e.node1 == e.node2 }

// Other returns the endpoint opposite to n. The boolean is false when n is
// not an endpoint of e. For a self-loop on n, Other returns n itself.
// Complexity: O(1).
func (e Edge[L]) Other(n Node[L]) (Node[L], bool) {
	switch n {
	case e.node1:
		return e.node2, true
	case e.node2:
		return e.node1, true
	default:
		var zero Node[L]
		return zero, false
	}
}

// Equal reports whether e and o denote the same connection.
//
// Directedness must match. Undirected edges are equal when they join the same
// unordered pair of nodes, so edge(a,b) equals edge(b,a). Directed edges also
// require the same orientation. Weights are not part of identity.
// Complexity: O(1).
func (e Edge[L]) Equal(o Edge[L]) bool {
	if e.directed != o.directed {
		return false
	}
	if e.node1 == o.node1 && e.node2 == o.node2 {
		return true
	}

	return !e.directed && e.node1 == o.node2 && e.node2 == o.node1
}

// String renders the edge as "A-B(w)" or "A->B(w)", omitting the weight
// when the edge is unweighted.
func (e Edge[L]) String() string {
	sep := "-"
	if e.directed {
		sep = "->"
	}
	if !e.weighted {
		return fmt.Sprintf("%v%s%v", e.node1.label, sep, e.node2.label)
	}

	return fmt.Sprintf("%v%s%v(%g)", e.node1.label, sep, e.node2.label, e.weight)
}
