// Package molecule provides a thread-safe, index-addressed molecular graph:
// atoms are vertices, bonds are edges.
//
// The Molecule type is the representation every other molfrag package
// consumes. It holds:
//
//   - Atoms carry an atomic number, formal charge, implicit hydrogen count,
//     an aromatic flag and a Placeholder flag (attachment markers produced at
//     cut bonds have atomic number 0 and Placeholder == true).
//   - Bonds carry two endpoint atom indices, a BondOrder (single, double,
//     triple, aromatic) and an InRing flag that an external ring/aromaticity
//     annotator may set.
//   - Indices are slots. Removing an atom or bond leaves a hole (nil slot),
//     so AtomCount()/BondCount() report the nominal slot count while
//     LiveAtomCount()/LiveBondCount() report what is actually present.
//     Consumers that need dense indices must compact (see package snapshot).
//
// Core Methods:
//
//	// Atom lifecycle
//	AddAtom(z int, opts ...AtomOption) (int, error)  // O(1) amortized
//	RemoveAtom(i int) error                          // O(deg(i)), leaves a hole
//	Atom(i int) (*Atom, error)                       // O(1)
//	Atoms() []*Atom                                  // O(V), ascending index
//
//	// Bond lifecycle
//	AddBond(a, b int, order BondOrder, opts ...BondOption) (int, error)
//	RemoveBond(i int) error
//	Bond(i int) (*Bond, error)
//	BondBetween(a, b int) (*Bond, bool)
//	Bonds() []*Bond                                  // O(E), ascending index
//
//	// Adjacency
//	Neighbors(i int) ([]int, error)                  // ascending
//	IncidentBonds(i int) ([]int, error)              // ascending bond index
//	Degree(i int) (int, error)
//
//	// Cloning
//	Clone() *Molecule                                // deep copy, holes preserved
//	(*Atom).Copy(), (*Bond).Copy()                   // detached copies
//
// Concurrency:
//
// A single sync.RWMutex guards atoms, bonds and adjacency. Returned *Atom and
// *Bond values point into the molecule and must be treated as read-only; use
// Copy or Clone to obtain private, mutable values.
//
// Errors:
//
//	ErrAtomNotFound        – index is out of range or a hole
//	ErrBondNotFound        – index is out of range or a hole
//	ErrBadAtomicNumber     – atomic number outside 0..118
//	ErrBadBondOrder        – OrderUnset or unknown order
//	ErrSelfBond            – both endpoints are the same atom
//	ErrDuplicateBond       – the two atoms are already bonded
package molecule
