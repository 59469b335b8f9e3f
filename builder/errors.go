// SPDX-License-Identifier: MIT
//
// File: errors.go
// Role: sentinel errors for the builder package.
//
// Callers branch with errors.Is; constructors add context with %w.

package builder

import "errors"

// ErrTooFewAtoms indicates a size parameter below the constructor minimum.
var ErrTooFewAtoms = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates a stochastic constructor ran without an RNG.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates a constructor could not finish, for example
// a Link to a missing atom or a nil constructor.
var ErrConstructFailed = errors.New("builder: construction failed")
