// SPDX-License-Identifier: MIT
// Package: apclust/builder
//
// impl_cycle.go — implementation of Cycle(offset, size) constructor.
//
// Contract:
//   • size ≥ 3 (else ErrTooFewVertices); block inside [0,n) (else ErrOutOfRange).
//   • Emits links in stable order v→next(v), closing back to offset.
//
// Complexity:
//   • Time: O(size). Space: O(1) extra.

package builder

// Cycle returns a Constructor that closes the block [offset, offset+size)
// into a directed ring.
func Cycle(offset, size int) Constructor {
	return func(s *linkSet, cfg builderConfig) error {
		if err := validateBlock(MethodCycle, s, offset, size, MinCycleNodes); err != nil {
			return err
		}
		for i := 0; i < size; i++ {
			s.add(offset+i, offset+(i+1)%size, cfg.symmetric)
		}

		return nil
	}
}
