// SPDX-License-Identifier: MIT
// Package: apclust/builder
//
// impl_star.go — implementation of Star(offset, size) constructor.
//
// Contract:
//   • size ≥ 2 (else ErrTooFewVertices); block inside [0,n) (else ErrOutOfRange).
//   • Hub is offset; every leaf links to the hub, leaves in ascending order.
//   • WithSymmetric adds hub→leaf right after each leaf→hub.
//
// Complexity:
//   • Time: O(size). Space: O(1) extra.

package builder

// Star returns a Constructor that points every node of the block at its
// first node.
func Star(offset, size int) Constructor {
	return func(s *linkSet, cfg builderConfig) error {
		if err := validateBlock(MethodStar, s, offset, size, MinStarNodes); err != nil {
			return err
		}
		hub := offset
		for leaf := offset + 1; leaf < offset+size; leaf++ {
			s.add(leaf, hub, cfg.symmetric)
		}

		return nil
	}
}
