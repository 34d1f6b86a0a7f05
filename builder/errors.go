// SPDX-License-Identifier: MIT
// Package: apclust/builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers use errors.Is.
//   • Implementations attach context with %w and the constructor name.
//   • Constructors never panic; option constructors may.

package builder

import "errors"

// ErrTooFewVertices indicates a block or universe smaller than the
// constructor's minimum.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrOutOfRange indicates a block or endpoint outside the node universe.
var ErrOutOfRange = errors.New("builder: node outside universe")

// ErrInvalidProbability indicates a probability outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates a stochastic constructor ran without an RNG
// (use WithSeed or WithRand).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates a programmer error such as a nil constructor.
var ErrConstructFailed = errors.New("builder: construction failed")
