// SPDX-License-Identifier: MIT
//
// errors.go — sentinel errors for the builder package.
//
// Error policy:
//   - Only package-level sentinels are exposed; callers branch with errors.Is.
//   - Implementations attach context via fmt.Errorf("...: %w", ...).
//   - Constructors never panic at runtime.

package builder

import "errors"

// ErrTooFewVertices indicates that a size parameter is smaller than the
// minimum the requested constructor supports.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates that a probability lies outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates that a stochastic constructor requires a
// seeded RNG (use WithSeed).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates that a constructor could not complete, e.g.
// a nil Constructor was passed to BuildGraph.
var ErrConstructFailed = errors.New("builder: construction failed")
