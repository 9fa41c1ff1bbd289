// SPDX-License-Identifier: MIT
// Package: spanforest/builder
//
// impl_path.go - implementation of Path(n) constructor.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - Adds vertices idFn(0..n-1) in ascending order.
//   - Emits edges {i-1, i} for i=1..n-1 in increasing order.
//
// Complexity: O(n) vertices + O(n-1) edges.

package builder

import "github.com/katalvlaran/spanforest/core"

// Path returns a Constructor that builds a simple path P_n.
func Path(n int) Constructor {
	return func(g *core.Graph[string], cfg builderConfig) error {
		if err := validateMin(MethodPath, n, MinPathNodes); err != nil {
			return err
		}
		ids := labels(cfg.idFn, n)
		if err := addVertices(MethodPath, g, ids...); err != nil {
			return err
		}
		for i := 1; i < n; i++ {
			if err := addEdge(MethodPath, g, cfg, ids[i-1], ids[i]); err != nil {
				return err
			}
		}

		return nil
	}
}
