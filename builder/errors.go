// SPDX-License-Identifier: MIT
// Package: wgraph/builder
//
// errors.go: sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables (package-level) are exposed.
//   • Callers use errors.Is(err, ErrX) to branch on semantics.
//   • Constructors attach context with `%w`; option constructors panic instead.

package builder

import "errors"

// ErrTooFewVertices indicates that a numeric parameter (n, rows, cols)
// is smaller than the allowed minimum for the requested constructor.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates that a probability value is outside the
// closed interval [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates that a stochastic constructor needs an RNG
// (WithSeed or WithRand) to stay reproducible.
var ErrNeedRandSource = errors.New("builder: random source required")

// ErrConstructFailed indicates a nil constructor or a failed graph build.
var ErrConstructFailed = errors.New("builder: construction failed")
