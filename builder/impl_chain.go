// SPDX-License-Identifier: MIT
//
// File: impl_chain.go
// Role: Atom and Chain constructors.
//
// Contract:
//   - Atom(z) appends one atom of element z.
//   - Chain(n) appends n atoms of cfg.element bonded i -> i+1 with cfg.order.

package builder

import (
	"fmt"

	"github.com/katalvlaran/molfrag/molecule"
)

// Atom returns a Constructor that appends a single atom of element z,
// ignoring WithElement.
func Atom(z int, opts ...molecule.AtomOption) Constructor {
	return func(m *molecule.Molecule, cfg builderConfig) error {
		if _, err := m.AddAtom(z, opts...); err != nil {
			return fmt.Errorf("%s: AddAtom(%d): %w", MethodAtom, z, err)
		}
		return nil
	}
}

// Chain returns a Constructor that appends an acyclic chain of n atoms.
// Complexity: O(n).
func Chain(n int) Constructor {
	return func(m *molecule.Molecule, cfg builderConfig) error {
		if err := validateMin(MethodChain, "n", n, MinChainAtoms); err != nil {
			return err
		}
		_, err := addPath(m, cfg, MethodChain, n, cfg.order)
		return err
	}
}

// addPath appends n atoms linked in order and returns their indices.
func addPath(m *molecule.Molecule, cfg builderConfig, method string, n int, order molecule.BondOrder) ([]int, error) {
	idx := make([]int, n)
	for i := 0; i < n; i++ {
		a, err := m.AddAtom(cfg.element, cfg.atomOptions()...)
		if err != nil {
			return nil, fmt.Errorf("%s: AddAtom: %w", method, err)
		}
		idx[i] = a
		if i > 0 {
			if _, err = m.AddBond(idx[i-1], a, order); err != nil {
				return nil, fmt.Errorf("%s: AddBond(%d,%d): %w", method, idx[i-1], a, err)
			}
		}
	}

	return idx, nil
}
