// SPDX-License-Identifier: MIT
//
// File: query.go
// Role: Read-only queries over MolecularArrays.

package snapshot

import (
	"fmt"

	"github.com/katalvlaran/molfrag/molecule"
)

// Molecule returns the private clone the arrays were built from.
// Source indices refer to its slots.
func (a *MolecularArrays) Molecule() *molecule.Molecule {
	return a.owned
}

// AtomHoles returns the number of removed atom slots in the input.
func (a *MolecularArrays) AtomHoles() int {
	return a.NominalAtomCount - len(a.Atoms)
}

// BondHoles returns the number of removed bond slots in the input.
func (a *MolecularArrays) BondHoles() int {
	return a.NominalBondCount - len(a.Bonds)
}

// Sparse reports whether the input had any atom or bond holes.
func (a *MolecularArrays) Sparse() bool {
	return a.AtomHoles() > 0 || a.BondHoles() > 0
}

// IndexOf maps an input slot index to its dense index.
func (a *MolecularArrays) IndexOf(source int) (int, bool) {
	if source < 0 || source >= len(a.atomByID) {
		return -1, false
	}
	i := a.atomByID[source]

	return i, i >= 0
}

// Other returns the endpoint of bond b opposite to atom, or -1.
func (a *MolecularArrays) Other(b, atom int) int {
	e := a.Bonds[b]
	switch atom {
	case e.Begin:
		return e.End
	case e.End:
		return e.Begin
	default:
		return -1
	}
}

// BondBetween returns the dense bond index joining u and v.
func (a *MolecularArrays) BondBetween(u, v int) (int, bool) {
	if u < 0 || u >= len(a.Atoms) {
		return -1, false
	}
	for k, w := range a.Atoms[u].Neighbors {
		if w == v {
			return a.Atoms[u].Bonds[k], true
		}
	}

	return -1, false
}

// AttachedHydrogen reports whether atom i is an explicit hydrogen with a
// single neighbor that is a heavy atom. Such atoms travel with that neighbor.
func (a *MolecularArrays) AttachedHydrogen(i int) bool {
	n := a.Atoms[i]
	if n.AtomicNumber != molecule.Hydrogen || len(n.Neighbors) != 1 {
		return false
	}

	return a.Atoms[n.Neighbors[0]].AtomicNumber > molecule.Hydrogen
}

// HasPseudo reports whether any atom has atomic number 0.
func (a *MolecularArrays) HasPseudo() bool {
	for _, n := range a.Atoms {
		if n.Pseudo {
			return true
		}
	}

	return false
}

// Validate checks index alignment, endpoint ranges and adjacency symmetry.
// Complexity: O(V + E).
func (a *MolecularArrays) Validate() error {
	for i, n := range a.Atoms {
		if n.Index != i {
			return fmt.Errorf("Validate: atom %d carries index %d: %w", i, n.Index, ErrInconsistent)
		}
		if len(n.Neighbors) != len(n.Bonds) {
			return fmt.Errorf("Validate: atom %d neighbor/bond length mismatch: %w", i, ErrInconsistent)
		}
		for k, bi := range n.Bonds {
			if bi < 0 || bi >= len(a.Bonds) || a.Other(bi, i) != n.Neighbors[k] {
				return fmt.Errorf("Validate: atom %d bond %d: %w", i, bi, ErrInconsistent)
			}
		}
	}
	for j, e := range a.Bonds {
		if e.Index != j {
			return fmt.Errorf("Validate: bond %d carries index %d: %w", j, e.Index, ErrInconsistent)
		}
		if e.Begin < 0 || e.Begin >= len(a.Atoms) || e.End < 0 || e.End >= len(a.Atoms) {
			return fmt.Errorf("Validate: bond %d endpoint out of range: %w", j, ErrInconsistent)
		}
	}

	return nil
}
