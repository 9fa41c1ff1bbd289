// SPDX-License-Identifier: MIT
// Package: spanforest/builder
//
// impl_random_sparse.go - implementation of RandomSparse(n, p) constructor.
//
// Canonical model:
//   - Erdős–Rényi-like: each unordered pair {i,j}, i<j, is included
//     independently with probability p. No self-loops.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices).
//   - 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - cfg.rng is required for 0 < p < 1 (else ErrNeedRandSource).
//
// Complexity: O(n) vertices + O(n²) Bernoulli trials.
//
// Determinism:
//   - Trial order is i asc, then j asc; one rng draw per trial, followed by
//     the weight draw when the pair is kept.

package builder

import (
	"fmt"

	"github.com/katalvlaran/spanforest/core"
)

// RandomSparse returns a Constructor that samples a random graph over n
// vertices with independent edge probability p.
func RandomSparse(n int, p float64) Constructor {
	return func(g *core.Graph[string], cfg builderConfig) error {
		if err := validateMin(MethodRandomSparse, n, MinRandomSparseNodes); err != nil {
			return err
		}
		if p < MinProbability || p > MaxProbability {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				MethodRandomSparse, p, MinProbability, MaxProbability, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > MinProbability && p < MaxProbability {
			return fmt.Errorf("%s: rng is required: %w", MethodRandomSparse, ErrNeedRandSource)
		}

		ids := labels(cfg.idFn, n)
		if err := addVertices(MethodRandomSparse, g, ids...); err != nil {
			return err
		}

		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if !keep(cfg, p) {
					continue
				}
				if err := addEdge(MethodRandomSparse, g, cfg, ids[i], ids[j]); err != nil {
					return err
				}
			}
		}

		return nil
	}
}

// keep runs one Bernoulli trial; p ∈ {0,1} is decided without the rng.
func keep(cfg builderConfig, p float64) bool {
	switch {
	case p == MinProbability:
		return false
	case p == MaxProbability:
		return true
	default:
		return cfg.rng.Float64() < p
	}
}
