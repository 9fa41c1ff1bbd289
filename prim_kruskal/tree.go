package prim_kruskal

import (
	"fmt"

	"github.com/katalvlaran/spanforest/core"
	"github.com/katalvlaran/spanforest/internal/nilness"
)

// TreeEdges rebuilds the edge list of the tree encoded in t by predecessor
// links, in the order t tracks its nodes, and returns it with its total
// weight. Each edge is the one stored in g, so its orientation and weight
// are those of g.
//
// Errors: core.ErrNilInput; core.ErrEdgeNotFound if a predecessor link has
// no backing edge in g (t was produced on a different graph).
// Complexity: O(V).
func TreeEdges[L comparable](g core.GraphView[L], t *core.Traversal[L]) ([]core.Edge[L], float64, error) {
	if nilness.IsNil(g) || t == nil {
		return nil, 0, fmt.Errorf("TreeEdges: %w", core.ErrNilInput)
	}

	var (
		out   []core.Edge[L]
		total float64
	)
	for _, n := range t.Nodes() {
		pred, ok := t.Predecessor(n)
		if !ok {
			continue
		}
		e, found, err := g.Edge(pred, n)
		if err != nil {
			return nil, 0, fmt.Errorf("TreeEdges: %w", err)
		}
		if !found {
			return nil, 0, fmt.Errorf("TreeEdges: %v-%v: %w", pred, n, core.ErrEdgeNotFound)
		}
		out = append(out, e)
		total += e.Weight()
	}
	if out == nil {
		out = []core.Edge[L]{}
	}

	return out, total, nil
}
