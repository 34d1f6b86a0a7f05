// SPDX-License-Identifier: MIT
// Package: apclust/builder
//
// impl_clique.go — implementation of Clique(offset, size) constructor.
//
// Contract:
//   • size ≥ 2 (else ErrTooFewVertices); block inside [0,n) (else ErrOutOfRange).
//   • Emits every ordered pair u≠v of the block, u ascending then v ascending.
//   • Already symmetric; WithSymmetric is ignored.
//
// Complexity:
//   • Time: O(size²). Space: O(1) extra.

package builder

// Clique returns a Constructor that links every node of the block to every
// other node of the block.
func Clique(offset, size int) Constructor {
	return func(s *linkSet, _ builderConfig) error {
		if err := validateBlock(MethodClique, s, offset, size, MinCliqueNodes); err != nil {
			return err
		}
		end := offset + size
		for u := offset; u < end; u++ {
			for v := offset; v < end; v++ {
				if u != v {
					s.add(u, v, false)
				}
			}
		}

		return nil
	}
}
