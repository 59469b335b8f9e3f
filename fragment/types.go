// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Fragment, Kind, Attachment and sentinel errors.

package fragment

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/molfrag/molecule"
)

var (
	// ErrNilMolecule is returned for a nil input molecule.
	ErrNilMolecule = errors.New("fragment: molecule is nil")

	// ErrNotFragmentable is returned by CanBeFragmented for empty molecules
	// and molecules holding pseudo atoms.
	ErrNotFragmentable = errors.New("fragment: molecule cannot be fragmented")

	// ErrPartition is returned by CheckPartition when fragments do not
	// partition the input atoms.
	ErrPartition = errors.New("fragment: fragments do not partition the molecule")
)

// Kind tells what rule produced a fragment.
type Kind int

const (
	KindRing Kind = iota
	KindConjugated
	KindMultiBond
	KindChain
	KindBranch
	KindPassThrough
)

var kindNames = [...]string{"ring", "conjugated", "multibond", "chain", "branch", "passthrough"}

// String returns the lower-case kind name.
func (k Kind) String() string {
	if k >= 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}

	return fmt.Sprintf("Kind(%d)", int(k))
}

// MarshalText renders the kind name.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText parses a kind name written by MarshalText.
func (k *Kind) UnmarshalText(text []byte) error {
	for i, name := range kindNames {
		if name == string(text) {
			*k = Kind(i)
			return nil
		}
	}

	return fmt.Errorf("fragment: unknown kind %q", text)
}

// Attachment records one side of a cut bond.
type Attachment struct {
	// Atom is the real atom in the fragment molecule.
	Atom int `json:"atom"`

	// Placeholder is the placeholder atom in the fragment molecule, or -1
	// when the cut was saturated with hydrogen.
	Placeholder int `json:"placeholder"`

	// SourceAtom, SourceNeighbor and SourceBond are slot indices in the
	// input molecule.
	SourceAtom     int `json:"sourceAtom"`
	SourceNeighbor int `json:"sourceNeighbor"`
	SourceBond     int `json:"sourceBond"`

	Order molecule.BondOrder `json:"order"`
}

// Fragment is one piece of the partition.
type Fragment struct {
	Molecule *molecule.Molecule `json:"-"`
	Kind     Kind               `json:"kind"`

	// SourceAtoms[i] is the input slot of fragment atom i, -1 for placeholders.
	SourceAtoms []int `json:"sourceAtoms"`

	// Placeholders lists the placeholder atom indices in the fragment.
	Placeholders []int `json:"placeholders"`

	Attachments []Attachment `json:"attachments"`
}

// RealAtomCount returns the number of atoms that came from the input.
func (f *Fragment) RealAtomCount() int {
	n := 0
	for _, s := range f.SourceAtoms {
		if s >= 0 {
			n++
		}
	}

	return n
}

// IsPlaceholder reports whether fragment atom i is a placeholder.
func (f *Fragment) IsPlaceholder(i int) bool {
	return i >= 0 && i < len(f.SourceAtoms) && f.SourceAtoms[i] < 0
}
