// SPDX-License-Identifier: MIT
// Package: spanforest/builder
//
// impl_star.go - implementation of Star(n) constructor.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - The hub is always labelled CenterVertexID and inserted first.
//   - Leaves are idFn(1..n-1); each gets one spoke to the hub, in order.
//
// Complexity: O(n) vertices + O(n-1) edges.

package builder

import "github.com/katalvlaran/spanforest/core"

// Star returns a Constructor that builds a star with n-1 leaves.
func Star(n int) Constructor {
	return func(g *core.Graph[string], cfg builderConfig) error {
		if err := validateMin(MethodStar, n, MinStarNodes); err != nil {
			return err
		}
		if err := addVertices(MethodStar, g, CenterVertexID); err != nil {
			return err
		}
		for i := 1; i < n; i++ {
			leaf := cfg.idFn(i)
			if err := addVertices(MethodStar, g, leaf); err != nil {
				return err
			}
			if err := addEdge(MethodStar, g, cfg, CenterVertexID, leaf); err != nil {
				return err
			}
		}

		return nil
	}
}
