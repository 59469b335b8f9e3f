// SPDX-License-Identifier: MIT
//
// File: validators.go
// Role: parameter checks shared by constructors.

package builder

import "fmt"

// validateMin returns ErrTooFewAtoms when got < floor.
func validateMin(method, param string, got, floor int) error {
	if got < floor {
		return fmt.Errorf("%s: %s=%d < min=%d: %w", method, param, got, floor, ErrTooFewAtoms)
	}

	return nil
}

// validateProbability returns ErrInvalidProbability unless p is in [0,1].
func validateProbability(method string, p float64) error {
	if p < MinProbability || p > MaxProbability {
		return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w", method, p, MinProbability, MaxProbability, ErrInvalidProbability)
	}

	return nil
}

// validateRand returns ErrNeedRandSource when cfg carries no RNG.
func validateRand(method string, cfg builderConfig) error {
	if cfg.rng == nil {
		return fmt.Errorf("%s: %w", method, ErrNeedRandSource)
	}

	return nil
}
