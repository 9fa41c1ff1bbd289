// Package builder provides internal helpers shared by the constructors.
package builder

import (
	"fmt"
	"strconv"

	"github.com/katalvlaran/spanforest/core"
)

// addVertices inserts ids in order. Labels already present are kept.
// Complexity: O(len(ids)·V) for the row growth of the triangular store.
func addVertices(method string, g *core.Graph[string], ids ...string) error {
	for _, id := range ids {
		if _, err := g.AddLabel(id); err != nil {
			return fmt.Errorf("%s: AddLabel(%s): %w: %w", method, id, ErrConstructFailed, err)
		}
	}

	return nil
}

// addEdge joins u and v with a weight drawn from cfg.weightFn, or with an
// unweighted edge when no weight function is configured. An edge already
// present is left untouched.
// Complexity: O(1).
func addEdge(method string, g *core.Graph[string], cfg builderConfig, u, v string) error {
	var e core.Edge[string]
	if cfg.weightFn == nil {
		e = core.NewEdge(core.NewNode(u), core.NewNode(v), false)
	} else {
		e = core.NewWeightedEdge(core.NewNode(u), core.NewNode(v), false, cfg.weightFn(cfg.rng))
	}
	if _, err := g.AddEdge(e); err != nil {
		return fmt.Errorf("%s: AddEdge(%v): %w: %w", method, e, ErrConstructFailed, err)
	}

	return nil
}

// validateMin ensures got ≥ min.
func validateMin(method string, got, min int) error {
	if got < min {
		return fmt.Errorf("%s: n=%d < min=%d: %w", method, got, min, ErrTooFewVertices)
	}

	return nil
}

// labels renders idFn(0..n-1).
func labels(idFn IDFn, n int) []string {
	ids := make([]string, n)
	for i := range ids {
		ids[i] = idFn(i)
	}

	return ids
}

// gridVertexID formats a grid coordinate as "r,c".
func gridVertexID(r, c int) string {
	return strconv.Itoa(r) + "," + strconv.Itoa(c)
}
