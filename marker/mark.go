// SPDX-License-Identifier: MIT
//
// File: mark.go
// Role: Mark runs the four passes in their fixed order.

package marker

import (
	"fmt"

	"github.com/katalvlaran/molfrag/snapshot"
)

// Mark allocates fresh Marks for arr and runs MarkNeighbors, MarkRings,
// MarkConjugatedSystems and MarkIsolatedMultiBonds.
//
// Errors:
//   - ErrNilArrays: arr is nil.
//   - ErrOptionViolation: an option was invalid.
func Mark(arr *snapshot.MolecularArrays, opts ...Option) (*Marks, error) {
	if arr == nil {
		return nil, ErrNilArrays
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, fmt.Errorf("marker: Mark: %w", o.err)
	}

	m := NewMarks(arr)
	MarkNeighbors(arr, m)
	MarkRings(arr, m, o.Finder, o.MaxRingsPerSystem)
	MarkConjugatedSystems(arr, m)
	MarkIsolatedMultiBonds(arr, m)

	return m, nil
}

// InRingUnit reports whether atom i belongs to a preserved ring unit.
func (m *Marks) InRingUnit(i int) bool {
	return m.RingUnitOf[i] >= 0
}
