// SPDX-License-Identifier: MIT
//
// File: partition.go
// Role: Verify that fragments partition the input atoms.

package fragment

import (
	"fmt"

	"github.com/katalvlaran/molfrag/molecule"
)

// CheckPartition verifies that every live atom of mol appears in exactly
// one fragment, that no fragment invents a source atom, and that every
// atom without a source is a flagged placeholder.
//
// Complexity: O(V + total fragment atoms).
func CheckPartition(mol *molecule.Molecule, frags []*Fragment) error {
	if mol == nil {
		return ErrNilMolecule
	}
	seen := make(map[int]int, mol.LiveAtomCount())
	assigned := 0
	for fi, fr := range frags {
		if fr == nil || fr.Molecule == nil {
			return fmt.Errorf("fragment %d is empty: %w", fi, ErrPartition)
		}
		if len(fr.SourceAtoms) != fr.Molecule.AtomCount() {
			return fmt.Errorf("fragment %d: %d source entries for %d atoms: %w",
				fi, len(fr.SourceAtoms), fr.Molecule.AtomCount(), ErrPartition)
		}
		for i, s := range fr.SourceAtoms {
			if s < 0 {
				a, err := fr.Molecule.Atom(i)
				if err != nil || !a.Placeholder || a.AtomicNumber != molecule.Pseudo {
					return fmt.Errorf("fragment %d atom %d has no source and is not a placeholder: %w", fi, i, ErrPartition)
				}
				continue
			}
			if !mol.HasAtom(s) {
				return fmt.Errorf("fragment %d atom %d: source %d not in molecule: %w", fi, i, s, ErrPartition)
			}
			if prev, dup := seen[s]; dup {
				return fmt.Errorf("source atom %d in fragments %d and %d: %w", s, prev, fi, ErrPartition)
			}
			seen[s] = fi
			assigned++
		}
	}
	if assigned != mol.LiveAtomCount() {
		return fmt.Errorf("%d of %d atoms assigned: %w", assigned, mol.LiveAtomCount(), ErrPartition)
	}

	return nil
}
