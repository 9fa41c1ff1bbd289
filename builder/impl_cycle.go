// SPDX-License-Identifier: MIT
// Package: spanforest/builder
//
// impl_cycle.go - implementation of Cycle(n) constructor.
//
// Contract:
//   - n ≥ 3 (else ErrTooFewVertices).
//   - Emits ring edges {i, (i+1) mod n} for i=0..n-1; the closing edge comes last.
//
// Complexity: O(n) vertices + O(n) edges.

package builder

import "github.com/katalvlaran/spanforest/core"

// Cycle returns a Constructor that builds the simple cycle C_n.
func Cycle(n int) Constructor {
	return func(g *core.Graph[string], cfg builderConfig) error {
		if err := validateMin(MethodCycle, n, MinCycleNodes); err != nil {
			return err
		}
		ids := labels(cfg.idFn, n)
		if err := addVertices(MethodCycle, g, ids...); err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			if err := addEdge(MethodCycle, g, cfg, ids[i], ids[(i+1)%n]); err != nil {
				return err
			}
		}

		return nil
	}
}
