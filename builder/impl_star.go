// SPDX-License-Identifier: MIT
//
// File: impl_star.go
// Role: Star and Link constructors.
//
// Contract:
//   - Star(n): a center atom followed by n-1 leaves bonded to it.
//   - Link(a, b, order): one bond between existing atoms.

package builder

import (
	"fmt"

	"github.com/katalvlaran/molfrag/molecule"
)

// Star returns a Constructor for a center with n-1 substituents, e.g.
// Star(5) is neopentane's skeleton.
func Star(n int) Constructor {
	return func(m *molecule.Molecule, cfg builderConfig) error {
		if err := validateMin(MethodStar, "n", n, MinStarAtoms); err != nil {
			return err
		}
		center, err := m.AddAtom(cfg.element, cfg.atomOptions()...)
		if err != nil {
			return fmt.Errorf("%s: AddAtom: %w", MethodStar, err)
		}
		for i := 1; i < n; i++ {
			leaf, err := m.AddAtom(cfg.element, cfg.atomOptions()...)
			if err != nil {
				return fmt.Errorf("%s: AddAtom: %w", MethodStar, err)
			}
			if _, err = m.AddBond(center, leaf, cfg.order); err != nil {
				return fmt.Errorf("%s: AddBond(%d,%d): %w", MethodStar, center, leaf, err)
			}
		}
		return nil
	}
}

// Link returns a Constructor that bonds two atoms added earlier.
func Link(a, b int, order molecule.BondOrder) Constructor {
	return func(m *molecule.Molecule, _ builderConfig) error {
		if _, err := m.AddBond(a, b, order); err != nil {
			return fmt.Errorf("%s: AddBond(%d,%d): %v: %w", MethodLink, a, b, err, ErrConstructFailed)
		}
		return nil
	}
}
