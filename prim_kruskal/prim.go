// Package prim_kruskal provides an implementation of Prim's Minimum Spanning Tree algorithm.
// It grows the tree from a source node with a linear-scan priority list.
package prim_kruskal

import (
	"fmt"
	"math"

	"github.com/katalvlaran/spanforest/core"
	"github.com/katalvlaran/spanforest/internal/nilness"
)

// Prim computes a Minimum Spanning Tree of the component of g containing
// source and returns it encoded in a core.Traversal.
//
// For every finalized node other than source, Predecessor is its parent in
// the tree and Distance is the weight of the edge joining the two. Source has
// Distance 0 and no predecessor. Nodes unreachable from source stay
// Unvisited at +Inf with no predecessor.
//
// Error Conditions:
//   - core.ErrNilInput     : g is nil or source's label is nil.
//   - ErrDirectedGraph     : g.Directed() == true.
//   - ErrUnweightedEdge    : some edge has no weight.
//   - ErrNegativeWeight    : some edge weight is < 0.
//   - core.ErrNodeNotFound : source is not in g.
//
// Steps:
//  1. Validate g and source.
//  2. Reset every node to Unvisited, +Inf, no predecessor; source distance = 0.
//  3. Candidates = all nodes in index order.
//  4. While candidates remain:
//     a. Extract the candidate with the smallest distance; the first one wins ties.
//     b. If its distance is +Inf the rest are unreachable: stop.
//     c. Mark it Finalized.
//     d. For each neighbor still in candidates: if w(u,v) < dist(v), Relax(v, u, w).
//
// Complexity: O(V²) time, O(V) memory.
func Prim[L comparable](g core.GraphView[L], source core.Node[L]) (*core.Traversal[L], error) {
	// 1. Validate.
	if nilness.IsNil(g) || nilness.IsNil(source.Label()) {
		return nil, fmt.Errorf("Prim: %w", core.ErrNilInput)
	}
	if err := validate("Prim", g); err != nil {
		return nil, err
	}
	if !g.HasNode(source) {
		return nil, fmt.Errorf("Prim: source %v: %w", source, core.ErrNodeNotFound)
	}

	// 2–3. Initial state and candidate list.
	nodes := g.Nodes()
	t := core.NewTraversal(source, nodes)
	t.SetDistance(source, 0)
	candidates := make([]core.Node[L], len(nodes))
	copy(candidates, nodes)
	pending := make(map[core.Node[L]]bool, len(nodes))
	for _, n := range nodes {
		pending[n] = true
	}

	// 4. Main loop.
	for len(candidates) > 0 {
		k := extractMin(t, candidates)
		u := candidates[k]
		if math.IsInf(t.Distance(u), 1) {
			break
		}
		candidates = append(candidates[:k], candidates[k+1:]...)
		delete(pending, u)
		t.Finalize(u)

		neighbors, err := g.AdjacentNodesOf(u)
		if err != nil {
			return nil, fmt.Errorf("Prim: %w", err)
		}
		for _, v := range neighbors {
			if !pending[v] {
				continue
			}
			e, ok, err := g.Edge(u, v)
			if err != nil {
				return nil, fmt.Errorf("Prim: %w", err)
			}
			if ok && e.Weight() < t.Distance(v) {
				t.Relax(v, u, e.Weight())
			}
		}
	}

	return t, nil
}

// extractMin returns the position of the first candidate with the smallest distance.
func extractMin[L comparable](t *core.Traversal[L], candidates []core.Node[L]) int {
	best := 0
	for i := 1; i < len(candidates); i++ {
		if t.Distance(candidates[i]) < t.Distance(candidates[best]) {
			best = i
		}
	}

	return best
}
