// SPDX-License-Identifier: MIT
//
// File: traversal.go
// Role: Per-run scratch state for traversal algorithms, kept beside the graph.
// Policy:
//   - A Traversal is created per run and never shared; the Graph stays untouched.
//   - Unknown nodes read as Unvisited, +Inf distance, no predecessor.

package core

import (
	"fmt"
	"math"
)

// Color is the visitation state of a node during a traversal.
type Color uint8

const (
	// Unvisited marks a node not yet reached.
	Unvisited Color = iota
	// Discovered marks a node reached but not yet finalized.
	Discovered
	// Finalized marks a node whose distance and predecessor are settled.
	Finalized
)

// String returns the lower-case color name.
func (c Color) String() string {
	switch c {
	case Unvisited:
		return "unvisited"
	case Discovered:
		return "discovered"
	case Finalized:
		return "finalized"
	default:
		return fmt.Sprintf("color(%d)", uint8(c))
	}
}

// NodeState holds the scratch fields a traversal attaches to one node.
type NodeState[L comparable] struct {
	Color          Color
	Distance       float64
	Predecessor    Node[L]
	HasPredecessor bool
}

// Traversal is a side table from node to NodeState, rooted at a source node.
//
// It replaces scratch fields embedded in nodes: two traversals over the same
// graph never observe each other's state.
type Traversal[L comparable] struct {
	source Node[L]
	order  []Node[L]
	states map[Node[L]]*NodeState[L]
}

// NewTraversal creates a traversal over nodes with every state reset to
// Unvisited, +Inf distance and no predecessor. The source distance is left
// at +Inf; algorithms set it explicitly.
// Complexity: O(V).
func NewTraversal[L comparable](source Node[L], nodes []Node[L]) *Traversal[L] {
	t := &Traversal[L]{
		source: source,
		order:  make([]Node[L], len(nodes)),
		states: make(map[Node[L]]*NodeState[L], len(nodes)),
	}
	copy(t.order, nodes)
	for _, n := range nodes {
		t.states[n] = &NodeState[L]{Color: Unvisited, Distance: math.Inf(1)}
	}

	return t
}

// Source returns the root of the traversal.
func (t *Traversal[L]) Source() Node[L] { return t.source }

// Nodes returns the tracked nodes in the order they were supplied.
func (t *Traversal[L]) Nodes() []Node[L] {
	out := make([]Node[L], len(t.order))
	copy(out, t.order)

	return out
}

// State returns a copy of n's state; false if n is not tracked.
func (t *Traversal[L]) State(n Node[L]) (NodeState[L], bool) {
	s, ok := t.states[n]
	if !ok {
		return NodeState[L]{Color: Unvisited, Distance: math.Inf(1)}, false
	}

	return *s, true
}

// Distance returns n's current distance, +Inf if unknown or unreached.
func (t *Traversal[L]) Distance(n Node[L]) float64 {
	s, _ := t.State(n)
	return s.Distance
}

// Color returns n's current color.
func (t *Traversal[L]) Color(n Node[L]) Color {
	s, _ := t.State(n)
	return s.Color
}

// Predecessor returns n's predecessor; false for the source, unreached or
// untracked nodes.
func (t *Traversal[L]) Predecessor(n Node[L]) (Node[L], bool) {
	s, _ := t.State(n)
	return s.Predecessor, s.HasPredecessor
}

// Reachable reports whether n obtained a finite distance.
func (t *Traversal[L]) Reachable(n Node[L]) bool {
	return !math.IsInf(t.Distance(n), 1)
}

// SetDistance overwrites n's distance without touching its predecessor.
// Untracked nodes are ignored.
func (t *Traversal[L]) SetDistance(n Node[L], d float64) {
	if s, ok := t.states[n]; ok {
		s.Distance = d
	}
}

// Relax records pred as n's predecessor at distance d and marks n Discovered.
// Untracked nodes are ignored.
func (t *Traversal[L]) Relax(n, pred Node[L], d float64) {
	if s, ok := t.states[n]; ok {
		s.Distance = d
		s.Predecessor = pred
		s.HasPredecessor = true
		s.Color = Discovered
	}
}

// Finalize marks n Finalized. Untracked nodes are ignored.
func (t *Traversal[L]) Finalize(n Node[L]) {
	if s, ok := t.states[n]; ok {
		s.Color = Finalized
	}
}

// PathTo walks predecessor links from n back to the source and returns the
// path source → … → n. The boolean is false if n is untracked or the chain
// does not end at the source (n unreachable).
// Complexity: O(V).
func (t *Traversal[L]) PathTo(n Node[L]) ([]Node[L], bool) {
	if _, ok := t.states[n]; !ok {
		return nil, false
	}

	var rev []Node[L]
	cur := n
	// The chain is a tree path, so it is at most |V| long; the bound also
	// guards against a malformed cycle of predecessor links.
	for steps := 0; steps <= len(t.order); steps++ {
		rev = append(rev, cur)
		if cur == t.source {
			out := make([]Node[L], len(rev))
			for i := range rev {
				out[i] = rev[len(rev)-1-i]
			}

			return out, true
		}
		pred, ok := t.Predecessor(cur)
		if !ok {
			return nil, false
		}
		cur = pred
	}

	return nil, false
}
