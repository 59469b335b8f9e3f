// Package snapshot compacts a molecule.Molecule into dense, index-aligned
// arrays that the marker and fragment passes work on.
//
// Build first clones the input (clone-then-own), then drops holes:
//
//	arr.Atoms[i].Index == i
//	arr.Bonds[j].Index == j
//	arr.Bonds[j].Begin/End are snapshot atom indices
//	arr.Atoms[i].Source is the slot index in the input molecule
//
// NominalAtomCount/NominalBondCount keep the input's slot counts so a sparse
// input stays observable (Sparse, AtomHoles, BondHoles). The mapping is
// rebuilt on every call; a MolecularArrays value is never shared between
// two fragmentation calls.
//
// Errors:
//
//	ErrNilMolecule   – Build(nil)
//	ErrDanglingBond  – a bond references a missing atom
//	ErrInconsistent  – Validate found broken index alignment or adjacency
package snapshot
