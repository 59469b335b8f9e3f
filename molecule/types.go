// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Atom, Bond, BondOrder, Molecule, functional options and sentinel errors.
// Concurrency:
//   - Molecule.mu guards atoms, bonds and incident; Atom/Bond values are plain data.

package molecule

import (
	"errors"
	"fmt"
	"sync"
)

// Sentinel errors for molecule operations.
var (
	// ErrAtomNotFound indicates an index that is out of range or points at a removed atom.
	ErrAtomNotFound = errors.New("molecule: atom not found")

	// ErrBondNotFound indicates an index that is out of range or points at a removed bond.
	ErrBondNotFound = errors.New("molecule: bond not found")

	// ErrBadAtomicNumber indicates an atomic number outside 0..MaxAtomicNumber.
	ErrBadAtomicNumber = errors.New("molecule: atomic number out of range")

	// ErrBadBondOrder indicates OrderUnset or an unknown bond order.
	ErrBadBondOrder = errors.New("molecule: bad bond order")

	// ErrSelfBond indicates an attempt to bond an atom to itself.
	ErrSelfBond = errors.New("molecule: self-bond not allowed")

	// ErrDuplicateBond indicates an attempt to add a second bond between the same atoms.
	ErrDuplicateBond = errors.New("molecule: atoms already bonded")

	// ErrBadHydrogenCount indicates a negative implicit hydrogen count.
	ErrBadHydrogenCount = errors.New("molecule: negative hydrogen count")
)

// MaxAtomicNumber is the largest accepted atomic number (oganesson).
const MaxAtomicNumber = 118

// BondOrder is the multiplicity of a bond.
type BondOrder int

// Bond orders. OrderAromatic marks a delocalised bond written with lowercase
// atoms in SMILES; it is treated as a multiple bond by conjugation logic.
const (
	OrderUnset BondOrder = iota
	OrderSingle
	OrderDouble
	OrderTriple
	OrderAromatic
)

// String returns the lowercase name of the order.
func (o BondOrder) String() string {
	switch o {
	case OrderSingle:
		return "single"
	case OrderDouble:
		return "double"
	case OrderTriple:
		return "triple"
	case OrderAromatic:
		return "aromatic"
	case OrderUnset:
		return "unset"
	default:
		return fmt.Sprintf("order(%d)", int(o))
	}
}

// Valid reports whether o is one of the four concrete orders.
func (o BondOrder) Valid() bool {
	return o >= OrderSingle && o <= OrderAromatic
}

// IsMultiple reports whether o is double, triple or aromatic.
func (o BondOrder) IsMultiple() bool {
	return o == OrderDouble || o == OrderTriple || o == OrderAromatic
}

// Valence is the number of valence electrons pairs the bond consumes on each
// endpoint. Aromatic bonds count as one; the aromatic atom contributes the
// remaining electron itself.
func (o BondOrder) Valence() int {
	switch o {
	case OrderDouble:
		return 2
	case OrderTriple:
		return 3
	case OrderSingle, OrderAromatic:
		return 1
	default:
		return 0
	}
}

// Atom is a vertex of a Molecule.
//
// Index is the slot index inside the owning molecule. Metadata is copied
// entry by entry by Copy and Clone.
type Atom struct {
	// Index is the slot index of this atom in its Molecule.
	Index int

	// AtomicNumber is 1..118 for elements and 0 for pseudo/placeholder atoms.
	AtomicNumber int

	// Charge is the formal charge.
	Charge int

	// ImplicitHydrogens is the number of hydrogens not represented as atoms.
	ImplicitHydrogens int

	// Aromatic marks an atom that is part of an aromatic system.
	Aromatic bool

	// Placeholder marks an attachment point inserted at a cut bond.
	Placeholder bool

	// Metadata stores arbitrary caller data.
	Metadata map[string]interface{}
}

// Bond is an undirected edge between two atoms of a Molecule.
type Bond struct {
	// Index is the slot index of this bond in its Molecule.
	Index int

	// Begin and End are the slot indices of the endpoint atoms.
	Begin int
	End   int

	// Order is the bond multiplicity.
	Order BondOrder

	// InRing is an externally supplied ring-membership signal.
	InRing bool

	// Metadata stores arbitrary caller data.
	Metadata map[string]interface{}
}

// Other returns the endpoint of b opposite to atom, or -1 if atom is not an endpoint.
func (b *Bond) Other(atom int) int {
	switch atom {
	case b.Begin:
		return b.End
	case b.End:
		return b.Begin
	default:
		return -1
	}
}

// Option configures a Molecule at construction time.
type Option func(m *Molecule)

// WithTitle sets the molecule title (free text, e.g. a name or an input line).
func WithTitle(title string) Option {
	return func(m *Molecule) { m.title = title }
}

// WithCapacity pre-sizes the atom and bond slot slices.
func WithCapacity(atoms, bonds int) Option {
	return func(m *Molecule) {
		if atoms > 0 {
			m.atoms = make([]*Atom, 0, atoms)
			m.incident = make([][]int, 0, atoms)
		}
		if bonds > 0 {
			m.bonds = make([]*Bond, 0, bonds)
		}
	}
}

// AtomOption configures an atom when added.
type AtomOption func(a *Atom)

// WithCharge sets the formal charge.
func WithCharge(charge int) AtomOption {
	return func(a *Atom) { a.Charge = charge }
}

// WithImplicitHydrogens sets the implicit hydrogen count.
func WithImplicitHydrogens(n int) AtomOption {
	return func(a *Atom) {
		if n >= 0 {
			a.ImplicitHydrogens = n
		}
	}
}

// WithAromatic marks the atom aromatic.
func WithAromatic() AtomOption {
	return func(a *Atom) { a.Aromatic = true }
}

// WithPlaceholder marks the atom as a cut-bond attachment point.
func WithPlaceholder() AtomOption {
	return func(a *Atom) { a.Placeholder = true }
}

// WithAtomMetadata stores key/value on the atom.
func WithAtomMetadata(key string, value interface{}) AtomOption {
	return func(a *Atom) { a.Metadata[key] = value }
}

// BondOption configures a bond when added.
type BondOption func(b *Bond)

// WithRingFlag marks the bond as a ring bond (external annotation).
func WithRingFlag() BondOption {
	return func(b *Bond) { b.InRing = true }
}

// WithBondMetadata stores key/value on the bond.
func WithBondMetadata(key string, value interface{}) BondOption {
	return func(b *Bond) { b.Metadata[key] = value }
}

// Molecule is the in-memory molecular graph.
//
// atoms and bonds are slot slices: a nil entry is a hole left by a removal.
// incident[i] lists the bond indices touching atom slot i.
type Molecule struct {
	mu sync.RWMutex

	title string

	atoms     []*Atom
	bonds     []*Bond
	incident  [][]int
	liveAtoms int
	liveBonds int
}

// New creates an empty Molecule.
// Complexity: O(1)
func New(opts ...Option) *Molecule {
	m := &Molecule{}
	for _, opt := range opts {
		opt(m)
	}

	return m
}

// Title returns the molecule title.
func (m *Molecule) Title() string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.title
}

// SetTitle replaces the molecule title.
func (m *Molecule) SetTitle(title string) {
	m.mu.Lock()
	m.title = title
	m.mu.Unlock()
}
