// Package builder produces deterministic link lists for affinity propagation
// fixtures, tests and benchmarks.
//
// The node universe is fixed up front (BuildLinks(n, ...)). Every
// constructor works on a contiguous block of nodes [offset, offset+size),
// so planted communities are assembled by composing constructors on
// disjoint blocks and joining them with Bridge.
//
// Components:
//
//   - Configuration primitives:
//     – BuilderOption: a function that mutates builderConfig before use.
//     – builderConfig: holds the RNG and the symmetric-emission flag.
//   - Topologies (Constructor factories):
//     – Path, Cycle, Star, Clique, RandomSparse, Bridge.
//   - Validation helpers:
//     – validateBlock: size minimum + block inside [0, n).
//     – validateProbability: p ∈ [0,1].
//
// Guarantees:
//
//   - Determinism: same n, options, seed and constructor order ⇒ identical
//     link lists, in a documented emission order.
//   - Links are directed. WithSymmetric mirrors every emitted link.
//   - Constructors never panic; option constructors panic on nil inputs.
//   - Errors are sentinels wrapped with the constructor name.
package builder
