// SPDX-License-Identifier: MIT
// Package: apclust/builder
//
// api.go — public entry point of the builder package.
//
// Design contract:
//   - One orchestrator: BuildLinks(n, bopts, cons...). Resolves cfg, runs cons in order.
//   - Factories are implemented in impl_*.go.
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical links.
//   - Safety: constructors return sentinel errors and never panic.

package builder

import (
	"fmt"

	"github.com/katalvlaran/apclust/affinity"
)

// Constructor appends links to s using the resolved builderConfig.
// Constructors MUST validate their block early, emit links in a stable
// order and return sentinel errors.
type Constructor func(s *linkSet, cfg builderConfig) error

// linkSet is the link list under construction for a universe of n nodes.
type linkSet struct {
	n     int
	links []affinity.Link
}

// add appends u→v, and v→u when symmetric is set.
func (s *linkSet) add(u, v int, symmetric bool) {
	s.links = append(s.links, affinity.Link{Source: u, Target: v})
	if symmetric {
		s.links = append(s.links, affinity.Link{Source: v, Target: u})
	}
}

// BuildLinks resolves the options and applies every constructor in order to
// an empty link list over n nodes.
//
// Errors:
//   - ErrTooFewVertices if n < 1.
//   - ErrConstructFailed for a nil constructor.
//   - any constructor error, wrapped with "BuildLinks: %w".
//
// Complexity: Σ cost of each constructor.
func BuildLinks(n int, bopts []BuilderOption, cons ...Constructor) ([]affinity.Link, error) {
	if n < 1 {
		return nil, fmt.Errorf("%s: n=%d: %w", MethodBuildLinks, n, ErrTooFewVertices)
	}

	cfg := newBuilderConfig(bopts...)
	s := &linkSet{n: n}
	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("%s: nil constructor at index %d: %w", MethodBuildLinks, i, ErrConstructFailed)
		}
		if err := fn(s, cfg); err != nil {
			return nil, fmt.Errorf("%s: %w", MethodBuildLinks, err)
		}
	}

	return s.links, nil
}
