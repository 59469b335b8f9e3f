// SPDX-License-Identifier: MIT
//
// File: methods_atoms.go
// Role: Atom lifecycle & queries.
//
// Determinism:
//   - Atoms() returns live atoms in ascending slot index.
//
// Concurrency:
//   - All methods take m.mu (read or write).

package molecule

import "fmt"

// AddAtom appends an atom with atomic number z and returns its slot index.
//
// Errors:
//   - ErrBadAtomicNumber: z outside 0..MaxAtomicNumber.
//
// Complexity: O(1) amortized.
func (m *Molecule) AddAtom(z int, opts ...AtomOption) (int, error) {
	if z < 0 || z > MaxAtomicNumber {
		return -1, fmt.Errorf("AddAtom(%d): %w", z, ErrBadAtomicNumber)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	a := &Atom{Index: len(m.atoms), AtomicNumber: z, Metadata: make(map[string]interface{})}
	for _, opt := range opts {
		opt(a)
	}
	// options must not move the atom
	a.Index = len(m.atoms)

	m.atoms = append(m.atoms, a)
	m.incident = append(m.incident, nil)
	m.liveAtoms++

	return a.Index, nil
}

// HasAtom reports whether slot i holds a live atom.
func (m *Molecule) HasAtom(i int) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.atomAt(i) != nil
}

// Atom returns the live atom at slot i. The pointer is owned by m and is
// read after the lock is released: treat it as read-only when m is shared
// and change hydrogens through SetImplicitHydrogens or AddImplicitHydrogens.
func (m *Molecule) Atom(i int) (*Atom, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	a := m.atomAt(i)
	if a == nil {
		return nil, fmt.Errorf("Atom(%d): %w", i, ErrAtomNotFound)
	}

	return a, nil
}

// SetImplicitHydrogens sets the implicit hydrogen count of atom i.
//
// Errors:
//   - ErrAtomNotFound: i is out of range or a hole.
//   - ErrBadHydrogenCount: n < 0.
func (m *Molecule) SetImplicitHydrogens(i, n int) error {
	if n < 0 {
		return fmt.Errorf("SetImplicitHydrogens(%d, %d): %w", i, n, ErrBadHydrogenCount)
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	a := m.atomAt(i)
	if a == nil {
		return fmt.Errorf("SetImplicitHydrogens(%d): %w", i, ErrAtomNotFound)
	}
	a.ImplicitHydrogens = n

	return nil
}

// AddImplicitHydrogens adds delta implicit hydrogens to atom i under one
// lock and returns the new count. The count never drops below zero.
//
// Errors:
//   - ErrAtomNotFound: i is out of range or a hole.
//   - ErrBadHydrogenCount: the result would be negative; the atom is unchanged.
func (m *Molecule) AddImplicitHydrogens(i, delta int) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	a := m.atomAt(i)
	if a == nil {
		return 0, fmt.Errorf("AddImplicitHydrogens(%d): %w", i, ErrAtomNotFound)
	}
	if a.ImplicitHydrogens+delta < 0 {
		return a.ImplicitHydrogens, fmt.Errorf("AddImplicitHydrogens(%d, %d): %w", i, delta, ErrBadHydrogenCount)
	}
	a.ImplicitHydrogens += delta

	return a.ImplicitHydrogens, nil
}

// RemoveAtom deletes the atom at slot i together with every incident bond.
// The slots become holes; indices of other atoms and bonds do not change.
//
// Errors:
//   - ErrAtomNotFound: i is out of range or already a hole.
//
// Complexity: O(deg(i) · deg(neighbor)).
func (m *Molecule) RemoveAtom(i int) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.atomAt(i) == nil {
		return fmt.Errorf("RemoveAtom(%d): %w", i, ErrAtomNotFound)
	}

	// copy: removeBondLocked rewrites incident[i]
	for _, bi := range append([]int(nil), m.incident[i]...) {
		m.removeBondLocked(bi)
	}
	m.atoms[i] = nil
	m.incident[i] = nil
	m.liveAtoms--

	return nil
}

// Atoms returns the live atoms in ascending slot index. The pointers are
// owned by m; the same read-only rule as Atom applies.
// Complexity: O(V).
func (m *Molecule) Atoms() []*Atom {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]*Atom, 0, m.liveAtoms)
	for _, a := range m.atoms {
		if a != nil {
			out = append(out, a)
		}
	}

	return out
}

// AtomCount returns the nominal number of atom slots, holes included.
func (m *Molecule) AtomCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return len(m.atoms)
}

// LiveAtomCount returns the number of atoms actually present.
func (m *Molecule) LiveAtomCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.liveAtoms
}

// IsEmpty reports whether the molecule holds no live atom.
func (m *Molecule) IsEmpty() bool {
	return m.LiveAtomCount() == 0
}

// atomAt returns the atom at slot i or nil. Caller holds m.mu.
func (m *Molecule) atomAt(i int) *Atom {
	if i < 0 || i >= len(m.atoms) {
		return nil
	}

	return m.atoms[i]
}
