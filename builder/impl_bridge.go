// SPDX-License-Identifier: MIT
// Package: apclust/builder
//
// impl_bridge.go — implementation of Bridge(u, v) constructor.

package builder

import "fmt"

// Bridge returns a Constructor that adds the single link u→v (plus v→u with
// WithSymmetric). Used to join blocks built by other constructors.
func Bridge(u, v int) Constructor {
	return func(s *linkSet, cfg builderConfig) error {
		if u < 0 || u >= s.n || v < 0 || v >= s.n {
			return fmt.Errorf("%s: %d→%d outside [0,%d): %w", MethodBridge, u, v, s.n, ErrOutOfRange)
		}
		s.add(u, v, cfg.symmetric)

		return nil
	}
}
