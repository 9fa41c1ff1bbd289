// SPDX-License-Identifier: MIT
// Package core_test contains shared fixtures for the core tests.

package core_test

import "github.com/katalvlaran/spanforest/core"

// Common node labels used across core tests.
const (
	LabelA = "A"
	LabelB = "B"
	LabelC = "C"
	LabelD = "D"
	LabelX = "X"
)

// Common weights used across core tests.
const (
	Weight1 = 1.0
	Weight2 = 2.0
	Weight3 = 3.0
	Weight4 = 4.0
	Weight5 = 5.0
)

// n is a terse node constructor for string-labelled fixtures.
func n(label string) core.Node[string] { return core.NewNode(label) }

// labels projects nodes onto their labels, preserving order.
func labels(nodes []core.Node[string]) []string {
	out := make([]string, 0, len(nodes))
	for _, v := range nodes {
		out = append(out, v.Label())
	}
	return out
}

// edgeStrings renders edges with Edge.String, preserving order.
func edgeStrings(edges []core.Edge[string]) []string {
	out := make([]string, 0, len(edges))
	for _, e := range edges {
		out = append(out, e.String())
	}
	return out
}

// newGraph builds a string graph with the given nodes in order.
func newGraph(nodes ...string) *core.Graph[string] {
	g := core.NewGraph[string]()
	for _, l := range nodes {
		_, _ = g.AddLabel(l)
	}
	return g
}
