// SPDX-License-Identifier: MIT
//
// File: methods_bonds.go
// Role: Bond lifecycle & queries.
//
// Determinism:
//   - Bonds() returns live bonds in ascending slot index.
//
// Concurrency:
//   - All methods take m.mu (read or write).

package molecule

import "fmt"

// AddBond connects atoms a and b with the given order and returns the bond
// slot index. Begin is always a and End is always b.
//
// Errors:
//   - ErrBadBondOrder: order is not a concrete order.
//   - ErrSelfBond: a == b.
//   - ErrAtomNotFound: either endpoint is missing.
//   - ErrDuplicateBond: a and b are already bonded.
//
// Complexity: O(deg(a)).
func (m *Molecule) AddBond(a, b int, order BondOrder, opts ...BondOption) (int, error) {
	if !order.Valid() {
		return -1, fmt.Errorf("AddBond(%d,%d,%s): %w", a, b, order, ErrBadBondOrder)
	}
	if a == b {
		return -1, fmt.Errorf("AddBond(%d,%d): %w", a, b, ErrSelfBond)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.atomAt(a) == nil {
		return -1, fmt.Errorf("AddBond(%d,%d): atom %d: %w", a, b, a, ErrAtomNotFound)
	}
	if m.atomAt(b) == nil {
		return -1, fmt.Errorf("AddBond(%d,%d): atom %d: %w", a, b, b, ErrAtomNotFound)
	}
	if m.bondBetweenLocked(a, b) != nil {
		return -1, fmt.Errorf("AddBond(%d,%d): %w", a, b, ErrDuplicateBond)
	}

	bd := &Bond{Begin: a, End: b, Order: order, Metadata: make(map[string]interface{})}
	for _, opt := range opts {
		opt(bd)
	}
	bd.Index = len(m.bonds)
	bd.Begin, bd.End = a, b

	m.bonds = append(m.bonds, bd)
	m.incident[a] = append(m.incident[a], bd.Index)
	m.incident[b] = append(m.incident[b], bd.Index)
	m.liveBonds++

	return bd.Index, nil
}

// Bond returns the live bond at slot i. The pointer is owned by m.
func (m *Molecule) Bond(i int) (*Bond, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	b := m.bondAt(i)
	if b == nil {
		return nil, fmt.Errorf("Bond(%d): %w", i, ErrBondNotFound)
	}

	return b, nil
}

// BondBetween returns the bond joining a and b, if any.
func (m *Molecule) BondBetween(a, b int) (*Bond, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	bd := m.bondBetweenLocked(a, b)

	return bd, bd != nil
}

// RemoveBond deletes the bond at slot i, leaving a hole.
//
// Errors:
//   - ErrBondNotFound: i is out of range or already a hole.
func (m *Molecule) RemoveBond(i int) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.bondAt(i) == nil {
		return fmt.Errorf("RemoveBond(%d): %w", i, ErrBondNotFound)
	}
	m.removeBondLocked(i)

	return nil
}

// Bonds returns the live bonds in ascending slot index.
// Complexity: O(E).
func (m *Molecule) Bonds() []*Bond {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]*Bond, 0, m.liveBonds)
	for _, b := range m.bonds {
		if b != nil {
			out = append(out, b)
		}
	}

	return out
}

// BondCount returns the nominal number of bond slots, holes included.
func (m *Molecule) BondCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return len(m.bonds)
}

// LiveBondCount returns the number of bonds actually present.
func (m *Molecule) LiveBondCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.liveBonds
}

func (m *Molecule) bondAt(i int) *Bond {
	if i < 0 || i >= len(m.bonds) {
		return nil
	}

	return m.bonds[i]
}

func (m *Molecule) bondBetweenLocked(a, b int) *Bond {
	if a < 0 || a >= len(m.incident) {
		return nil
	}
	for _, bi := range m.incident[a] {
		if bd := m.bonds[bi]; bd != nil && bd.Other(a) == b {
			return bd
		}
	}

	return nil
}

// removeBondLocked drops bond i from the catalog and both incident lists.
// Caller holds the write lock and has checked that the bond is live.
func (m *Molecule) removeBondLocked(i int) {
	bd := m.bonds[i]
	m.incident[bd.Begin] = dropIndex(m.incident[bd.Begin], i)
	m.incident[bd.End] = dropIndex(m.incident[bd.End], i)
	m.bonds[i] = nil
	m.liveBonds--
}

func dropIndex(s []int, v int) []int {
	out := s[:0]
	for _, x := range s {
		if x != v {
			out = append(out, x)
		}
	}

	return out
}
