// SPDX-License-Identifier: MIT
// Package: apclust/builder
//
// impl_path.go — implementation of Path(offset, size) constructor.
//
// Contract:
//   • size ≥ 2 (else ErrTooFewVertices); block inside [0,n) (else ErrOutOfRange).
//   • Emits links in stable order v→v+1 for v = offset..offset+size-2.
//   • WithSymmetric adds v+1→v right after each link.
//
// Complexity:
//   • Time: O(size). Space: O(1) extra.

package builder

// Path returns a Constructor that chains the block [offset, offset+size)
// into a directed path.
func Path(offset, size int) Constructor {
	return func(s *linkSet, cfg builderConfig) error {
		if err := validateBlock(MethodPath, s, offset, size, MinPathNodes); err != nil {
			return err
		}
		for v := offset; v < offset+size-1; v++ {
			s.add(v, v+1, cfg.symmetric)
		}

		return nil
	}
}
