// SPDX-License-Identifier: MIT
// Package: spanforest/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • idFn     = DefaultIDFn       ("0","1","2",...)
//   • rng      = nil               (no randomness unless seeded)
//   • weightFn = DefaultWeightFn   (every edge weighs DefaultEdgeWeight)

package builder

import "math/rand"

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors.
type builderConfig struct {
	// Vertex ID strategy: index -> label.
	idFn IDFn
	// RNG for stochastic choices and weight draws; nil means "no randomness".
	rng *rand.Rand
	// Weight generator; nil emits unweighted edges.
	weightFn WeightFn
}

// newBuilderConfig applies opts in order (last wins) over the defaults.
// Complexity: O(len(opts)).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:     DefaultIDFn,
		weightFn: DefaultWeightFn,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
