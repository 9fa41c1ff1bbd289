// Package prim_kruskal provides an implementation of Kruskal's Minimum Spanning Forest algorithm.
package prim_kruskal

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/spanforest/core"
	"github.com/katalvlaran/spanforest/disjointset"
)

// Kruskal computes a minimum spanning forest of an undirected, weighted graph.
// It uses a fresh disjointset.Forest (path compression, union by rank) per call.
//
// Error Conditions:
//   - core.ErrNilInput  : g is nil.
//   - ErrDirectedGraph  : g.Directed() == true.
//   - ErrUnweightedEdge : some edge has no weight.
//   - ErrNegativeWeight : some edge weight is < 0.
//
// Steps:
//  1. Validate g (see above).
//  2. MakeSet every node of g.
//  3. Stable-sort g.Edges() by ascending weight.
//  4. For each edge (u,v): if FindSet(u) != FindSet(v), accept the edge and Union(u,v).
//  5. Stop early once |V|-1 edges are accepted.
//
// A disconnected graph yields a forest with |V| - components edges; no error.
// Self-loops are never accepted since both endpoints share a representative.
//
// Complexity: O(V² + E log E) time, O(V + E) memory.
func Kruskal[L comparable](g core.GraphView[L]) ([]core.Edge[L], float64, error) {
	// 1. Validate.
	if err := validate("Kruskal", g); err != nil {
		return nil, 0, err
	}

	// 2. One singleton set per node.
	nodes := g.Nodes()
	forest := disjointset.New[core.Node[L]]()
	for _, n := range nodes {
		if err := forest.MakeSet(n); err != nil {
			return nil, 0, fmt.Errorf("Kruskal: %w", err)
		}
	}

	// 3. Stable sort keeps Edges() order among equal weights.
	edges := g.Edges()
	sort.SliceStable(edges, func(i, j int) bool {
		return edges[i].Weight() < edges[j].Weight()
	})

	// 4. Greedy acceptance.
	mst := make([]core.Edge[L], 0, max(len(nodes)-1, 0))
	var total float64
	for _, e := range edges {
		ru, _, err := forest.FindSet(e.Node1())
		if err != nil {
			return nil, 0, fmt.Errorf("Kruskal: %w", err)
		}
		rv, _, err := forest.FindSet(e.Node2())
		if err != nil {
			return nil, 0, fmt.Errorf("Kruskal: %w", err)
		}
		if ru == rv {
			continue
		}
		if err = forest.Union(e.Node1(), e.Node2()); err != nil {
			return nil, 0, fmt.Errorf("Kruskal: %w", err)
		}
		mst = append(mst, e)
		total += e.Weight()
		// 5. A spanning tree is complete.
		if len(mst) == len(nodes)-1 {
			break
		}
	}

	return mst, total, nil
}
