// Package builder provides deterministic, functional-options constructors
// for colored test graphs: fixtures for the symmetry search, the format
// round-trips and the catalog.
//
// The package offers:
//
//   - BuildGraph(gopts, bopts, cons...): one orchestrator that creates a
//     core.Graph and applies constructors in order. Constructors append
//     vertices after the existing ones, so several constructors yield a
//     disjoint union.
//   - Topologies: Cycle, Path, Star, Wheel, Complete, CompleteBipartite,
//     Grid, Petersen, PlatonicSolid, RandomSparse, RandomRegular.
//   - Options: WithSeed / WithRand (stochastic constructors),
//     WithColorScheme (vertex colors by local index),
//     WithPartitionColors (bipartite side colors).
//
// Guarantees:
//
//   - Fast-fail on invalid option parameters via panics in option constructors.
//   - Sentinel errors (ErrTooFewVertices, ErrInvalidProbability,
//     ErrNeedRandSource, ErrConstructFailed, ErrOptionViolation) wrapped with
//     the constructor name for invalid build parameters.
//   - Same options, seed and constructor order give the same graph.
package builder
