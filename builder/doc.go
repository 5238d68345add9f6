// Package builder provides deterministic graph fixtures for walk generation,
// composed in the functional-options style of the core package.
//
//   - Orchestrator: BuildGraph(gopts, bopts, cons...) creates a core.Graph and
//     applies Constructor closures in order.
//   - Topologies: Cycle, Path, Star, Wheel, Complete, CompleteBipartite, Grid,
//     RandomSparse.
//   - Vertex-ID schemes (IDFn): DefaultIDFn ("0","1",…), SymbolIDFn ("A"…"Z"),
//     ExcelColumnIDFn ("A","Z","AA",…), SymbolNumberIDFn ("v0","v1",…),
//     PaddedIDFn ("v000","v001",…).
//   - Edge-weight distributions (WeightFn): DefaultWeightFn (1.0),
//     ConstantWeightFn, UniformWeightFn, ExponentialWeightFn. Consulted only
//     when the graph is weighted; every generator yields finite weights > 0.
//
// Guarantees:
//
//   - Same options, seed and constructor order ⇒ identical graphs.
//   - Option constructors panic on meaningless input; Constructors return
//     sentinel errors (ErrTooFewVertices, ErrInvalidProbability,
//     ErrNeedRandSource, ErrConstructFailed) and never panic.
package builder
