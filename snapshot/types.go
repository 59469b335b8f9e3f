// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: AtomNode, BondEdge, MolecularArrays and sentinel errors.

package snapshot

import (
	"errors"

	"github.com/katalvlaran/molfrag/molecule"
)

var (
	// ErrNilMolecule is returned by Build when the input is nil.
	ErrNilMolecule = errors.New("snapshot: molecule is nil")

	// ErrDanglingBond is returned when a bond endpoint is not a live atom.
	ErrDanglingBond = errors.New("snapshot: bond references a missing atom")

	// ErrInconsistent is returned by Validate on broken alignment or adjacency.
	ErrInconsistent = errors.New("snapshot: inconsistent arrays")
)

// AtomNode is the dense view of one atom.
type AtomNode struct {
	Index             int // dense index
	Source            int // slot index in the input molecule
	AtomicNumber      int
	Charge            int
	ImplicitHydrogens int
	Aromatic          bool
	Pseudo            bool // AtomicNumber == 0

	// Neighbors lists adjacent dense atom indices in ascending order;
	// Bonds[k] is the dense bond joining this atom to Neighbors[k].
	Neighbors []int
	Bonds     []int
}

// BondEdge is the dense view of one bond.
type BondEdge struct {
	Index         int
	Source        int
	Begin         int
	End           int
	Order         molecule.BondOrder
	AnnotatedRing bool // Bond.InRing on the input
}

// MolecularArrays holds the compacted atom and bond arrays of one molecule.
type MolecularArrays struct {
	Atoms []AtomNode
	Bonds []BondEdge

	// NominalAtomCount and NominalBondCount are the input's slot counts.
	NominalAtomCount int
	NominalBondCount int

	owned    *molecule.Molecule
	atomByID []int // source slot -> dense index, -1 for holes
}
