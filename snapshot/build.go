// SPDX-License-Identifier: MIT
//
// File: build.go
// Role: Build a MolecularArrays from a private clone of the input.
//
// Determinism:
//   - Dense indices follow ascending source slot order.
//
// Concurrency:
//   - The input is read once through Clone (one read lock); everything
//     afterwards works on the private copy.

package snapshot

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/molfrag/molecule"
)

// Build clones mol and compacts the clone into dense arrays.
//
// Complexity: O(V + E log Δ) where Δ is the maximum degree.
func Build(mol *molecule.Molecule) (*MolecularArrays, error) {
	if mol == nil {
		return nil, ErrNilMolecule
	}
	own := mol.Clone()

	arr := &MolecularArrays{
		NominalAtomCount: own.AtomCount(),
		NominalBondCount: own.BondCount(),
		owned:            own,
	}

	arr.atomByID = make([]int, arr.NominalAtomCount)
	for i := range arr.atomByID {
		arr.atomByID[i] = -1
	}
	atoms := own.Atoms()
	arr.Atoms = make([]AtomNode, len(atoms))
	for i, a := range atoms {
		arr.atomByID[a.Index] = i
		arr.Atoms[i] = AtomNode{
			Index:             i,
			Source:            a.Index,
			AtomicNumber:      a.AtomicNumber,
			Charge:            a.Charge,
			ImplicitHydrogens: a.ImplicitHydrogens,
			Aromatic:          a.Aromatic,
			Pseudo:            a.AtomicNumber == molecule.Pseudo,
		}
	}

	bonds := own.Bonds()
	arr.Bonds = make([]BondEdge, len(bonds))
	for j, b := range bonds {
		u, ok1 := arr.IndexOf(b.Begin)
		v, ok2 := arr.IndexOf(b.End)
		if !ok1 || !ok2 {
			return nil, fmt.Errorf("Build: bond %d (%d-%d): %w", b.Index, b.Begin, b.End, ErrDanglingBond)
		}
		arr.Bonds[j] = BondEdge{
			Index:         j,
			Source:        b.Index,
			Begin:         u,
			End:           v,
			Order:         b.Order,
			AnnotatedRing: b.InRing,
		}
		arr.Atoms[u].Bonds = append(arr.Atoms[u].Bonds, j)
		arr.Atoms[v].Bonds = append(arr.Atoms[v].Bonds, j)
	}

	for i := range arr.Atoms {
		n := &arr.Atoms[i]
		sort.Slice(n.Bonds, func(x, y int) bool {
			return arr.Other(n.Bonds[x], i) < arr.Other(n.Bonds[y], i)
		})
		n.Neighbors = make([]int, len(n.Bonds))
		for k, bi := range n.Bonds {
			n.Neighbors[k] = arr.Other(bi, i)
		}
	}

	return arr, nil
}
