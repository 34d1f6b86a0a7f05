// SPDX-License-Identifier: MIT
// Package: apclust/builder
//
// impl_random_sparse.go — implementation of RandomSparse(offset, size, p).
//
// Contract:
//   • size ≥ 1 (else ErrTooFewVertices); block inside [0,n) (else ErrOutOfRange).
//   • p ∈ [0,1] (else ErrInvalidProbability).
//   • 0 < p < 1 requires cfg.rng (else ErrNeedRandSource).
//   • Each ordered pair u≠v is an independent Bernoulli(p) trial, visited
//     u ascending then v ascending, so a fixed seed yields a fixed list.
//   • p == 0 emits nothing; p == 1 emits the clique without consuming the RNG.
//
// Complexity:
//   • Time: O(size²) trials. Space: O(p·size²) links.

package builder

import "fmt"

// RandomSparse returns a Constructor that adds each ordered pair of the
// block with probability p.
func RandomSparse(offset, size int, p float64) Constructor {
	return func(s *linkSet, cfg builderConfig) error {
		if err := validateBlock(MethodRandomSparse, s, offset, size, MinRandomSparseNodes); err != nil {
			return err
		}
		if err := validateProbability(MethodRandomSparse, p); err != nil {
			return err
		}
		if p == MinProbability {
			return nil
		}
		stochastic := p < MaxProbability
		if stochastic && cfg.rng == nil {
			return fmt.Errorf("%s: p=%.6f: %w", MethodRandomSparse, p, ErrNeedRandSource)
		}

		end := offset + size
		for u := offset; u < end; u++ {
			for v := offset; v < end; v++ {
				if u == v {
					continue
				}
				if !stochastic || cfg.rng.Float64() < p {
					s.add(u, v, cfg.symmetric)
				}
			}
		}

		return nil
	}
}
