// Package builder provides deterministic "functional-options" style
// constructors for core.Graph[string] fixtures: paths, cycles, stars,
// complete graphs, grids and Erdős–Rényi-like random sparse graphs.
//
// The fixtures feed the spanning-forest and components tests, their
// benchmarks, and the `spanforest generate` command.
//
// The package offers the following key components:
//
//   - Orchestration:
//     BuildGraph(bopts, cons...) creates a graph and applies constructors in order.
//   - Configuration primitives:
//     BuilderOption mutates builderConfig (RNG, ID scheme, weight function).
//   - Vertex-ID schemes (IDFn):
//     DefaultIDFn ("0","1",…), SymbolIDFn ("A"…"Z"), ExcelColumnIDFn ("A","Z","AA",…),
//     SymbolNumberIDFn(prefix) ("v0","v1",…).
//   - Edge-weight distributions (WeightFn):
//     DefaultWeightFn, ConstantWeightFn, UniformWeightFn, IntegerWeightFn.
//     WithoutWeights() emits unweighted edges instead.
//
// Guarantees:
//
//   - Determinism: same options, seed and constructor order yield identical graphs,
//     including node indices and Edges() order.
//   - Option constructors panic on meaningless inputs (nil functions, negative weights);
//     Constructors themselves never panic and return wrapped sentinel errors.
//   - Composing constructors that reuse IDs is safe: existing nodes are kept and an edge
//     already present is left as is.
package builder
