// SPDX-License-Identifier: MIT
// Package: apclust/builder
//
// config.go — internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • rng       = nil   (pure/deterministic unless seeded)
//   • symmetric = false (links emitted in one direction only)

package builder

import "math/rand"

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors.
type builderConfig struct {
	// RNG for stochastic choices; nil means "no randomness".
	rng *rand.Rand
	// symmetric mirrors every emitted link u→v with v→u.
	symmetric bool
}

// newBuilderConfig applies options in order on top of the defaults.
// Complexity: O(len(opts)).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	var cfg builderConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
