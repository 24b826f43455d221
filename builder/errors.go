// SPDX-License-Identifier: MIT
// Package: mincut/builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy (explicit and strict):
//   • Only sentinel variables (package-level) are exposed.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach context using `%w`.
//   • Constructors MUST NOT panic at runtime; validation panics are confined to
//     option constructor functions (WithX...).
//
// Priority when several validations fail:
//   ErrTooFewVertices → ErrInvalidCount → ErrNeedRandSource → ErrConstructFailed.

package builder

import (
	"errors"
)

// ErrTooFewVertices indicates that a size parameter (n, rows, cols)
// is smaller than the allowed minimum for the requested constructor.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidCount indicates that a count parameter (bridges, extra edges)
// is outside its admissible range.
var ErrInvalidCount = errors.New("builder: count out of range")

// ErrNeedRandSource indicates that a stochastic constructor requires a non-nil
// *rand.Rand in the resolved builderConfig (WithSeed/WithRand must be set).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates that construction could not proceed
// (nil constructor, core graph rejection).
var ErrConstructFailed = errors.New("builder: construction failed")
