// SPDX-License-Identifier: MIT
//
// File: methods_adjacent.go
// Role: Neighborhood queries.
//
// Determinism:
//   - Neighbors and IncidentBonds are returned in ascending index.

package molecule

import (
	"fmt"
	"sort"
)

// Neighbors returns the indices of atoms bonded to i, ascending.
func (m *Molecule) Neighbors(i int) ([]int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.atomAt(i) == nil {
		return nil, fmt.Errorf("Neighbors(%d): %w", i, ErrAtomNotFound)
	}
	out := make([]int, 0, len(m.incident[i]))
	for _, bi := range m.incident[i] {
		out = append(out, m.bonds[bi].Other(i))
	}
	sort.Ints(out)

	return out, nil
}

// IncidentBonds returns the indices of bonds touching atom i, ascending.
func (m *Molecule) IncidentBonds(i int) ([]int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.atomAt(i) == nil {
		return nil, fmt.Errorf("IncidentBonds(%d): %w", i, ErrAtomNotFound)
	}
	out := append([]int(nil), m.incident[i]...)
	sort.Ints(out)

	return out, nil
}

// Degree returns the number of bonds touching atom i.
func (m *Molecule) Degree(i int) (int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.atomAt(i) == nil {
		return 0, fmt.Errorf("Degree(%d): %w", i, ErrAtomNotFound)
	}

	return len(m.incident[i]), nil
}
