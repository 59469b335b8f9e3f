// SPDX-License-Identifier: MIT
//
// File: emit.go
// Role: Turn atom groups into fragment molecules with cut handling.
//
// Determinism:
//   - Fragment atoms follow ascending source order; placeholders follow,
//     in ascending cut-bond order.

package fragment

import (
	"github.com/katalvlaran/molfrag/molecule"
	"github.com/katalvlaran/molfrag/settings"
	"github.com/katalvlaran/molfrag/snapshot"
)

func emit(arr *snapshot.MolecularArrays, groups []group, sat settings.Saturation) []*Fragment {
	src := arr.Molecule()
	owner := make([]int, len(arr.Atoms))
	local := make([]int, len(arr.Atoms))
	frags := make([]*Fragment, len(groups))

	for gi, g := range groups {
		fr := &Fragment{
			Molecule:    molecule.New(molecule.WithTitle(src.Title()), molecule.WithCapacity(len(g.atoms), len(g.atoms))),
			Kind:        g.kind,
			SourceAtoms: make([]int, 0, len(g.atoms)),
		}
		for _, a := range g.atoms {
			owner[a] = gi
			local[a] = copyAtom(src, fr.Molecule, arr.Atoms[a].Source)
			fr.SourceAtoms = append(fr.SourceAtoms, arr.Atoms[a].Source)
		}
		frags[gi] = fr
	}

	for _, e := range arr.Bonds {
		gu, gv := owner[e.Begin], owner[e.End]
		if gu == gv {
			copyBond(src, frags[gu].Molecule, e.Source, local[e.Begin], local[e.End])
			continue
		}
		cut(arr, frags[gu], e, e.Begin, e.End, local[e.Begin], sat)
		cut(arr, frags[gv], e, e.End, e.Begin, local[e.End], sat)
	}

	return frags
}

// cut caps fragment atom at (dense index self) where bond e used to lead
// to other.
func cut(arr *snapshot.MolecularArrays, fr *Fragment, e snapshot.BondEdge, self, other, at int, sat settings.Saturation) {
	att := Attachment{
		Atom:           at,
		Placeholder:    -1,
		SourceAtom:     arr.Atoms[self].Source,
		SourceNeighbor: arr.Atoms[other].Source,
		SourceBond:     e.Source,
		Order:          e.Order,
	}

	if sat == settings.SaturationHydrogen {
		_, _ = fr.Molecule.AddImplicitHydrogens(at, e.Order.Valence())
	} else {
		p, _ := fr.Molecule.AddAtom(molecule.Pseudo, molecule.WithPlaceholder())
		_, _ = fr.Molecule.AddBond(at, p, e.Order)
		fr.SourceAtoms = append(fr.SourceAtoms, -1)
		fr.Placeholders = append(fr.Placeholders, p)
		att.Placeholder = p
	}
	fr.Attachments = append(fr.Attachments, att)
}

func copyAtom(src, dst *molecule.Molecule, slot int) int {
	a, _ := src.Atom(slot)
	opts := []molecule.AtomOption{
		molecule.WithCharge(a.Charge),
		molecule.WithImplicitHydrogens(a.ImplicitHydrogens),
	}
	if a.Aromatic {
		opts = append(opts, molecule.WithAromatic())
	}
	if a.Placeholder {
		opts = append(opts, molecule.WithPlaceholder())
	}
	for k, v := range a.Metadata {
		opts = append(opts, molecule.WithAtomMetadata(k, v))
	}
	idx, _ := dst.AddAtom(a.AtomicNumber, opts...)

	return idx
}

func copyBond(src, dst *molecule.Molecule, slot, u, v int) {
	b, _ := src.Bond(slot)
	opts := make([]molecule.BondOption, 0, len(b.Metadata)+1)
	if b.InRing {
		opts = append(opts, molecule.WithRingFlag())
	}
	for key, val := range b.Metadata {
		opts = append(opts, molecule.WithBondMetadata(key, val))
	}
	_, _ = dst.AddBond(u, v, b.Order, opts...)
}
