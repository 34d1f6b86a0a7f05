// Package builder provides validation helpers shared by the constructors.
package builder

import "fmt"

// validateBlock checks size ≥ minSize and that [offset, offset+size) lies
// inside the universe of s.
// Complexity: O(1).
func validateBlock(method string, s *linkSet, offset, size, minSize int) error {
	if size < minSize {
		return fmt.Errorf("%s: size=%d < min=%d: %w", method, size, minSize, ErrTooFewVertices)
	}
	if offset < 0 || offset+size > s.n {
		return fmt.Errorf("%s: block [%d,%d) outside [0,%d): %w",
			method, offset, offset+size, s.n, ErrOutOfRange)
	}

	return nil
}

// validateProbability enforces p ∈ [MinProbability, MaxProbability].
func validateProbability(method string, p float64) error {
	if !(p >= MinProbability && p <= MaxProbability) {
		return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
			method, p, MinProbability, MaxProbability, ErrInvalidProbability)
	}

	return nil
}
