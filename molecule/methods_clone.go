// SPDX-License-Identifier: MIT
//
// File: methods_clone.go
// Role: Deep copies of atoms, bonds and whole molecules.
//
// Contract:
//   - Clone preserves holes, so every index valid in m is valid in the copy.
//   - Metadata maps are copied entry by entry; values themselves are shared.

package molecule

// Copy returns a deep copy of a.
func (a *Atom) Copy() *Atom {
	c := *a
	c.Metadata = copyMeta(a.Metadata)

	return &c
}

// Copy returns a deep copy of b.
func (b *Bond) Copy() *Bond {
	c := *b
	c.Metadata = copyMeta(b.Metadata)

	return &c
}

// Clone returns an independent deep copy of m.
// Complexity: O(V + E).
func (m *Molecule) Clone() *Molecule {
	m.mu.RLock()
	defer m.mu.RUnlock()

	c := &Molecule{
		title:     m.title,
		atoms:     make([]*Atom, len(m.atoms)),
		bonds:     make([]*Bond, len(m.bonds)),
		incident:  make([][]int, len(m.incident)),
		liveAtoms: m.liveAtoms,
		liveBonds: m.liveBonds,
	}
	for i, a := range m.atoms {
		if a != nil {
			c.atoms[i] = a.Copy()
		}
	}
	for i, b := range m.bonds {
		if b != nil {
			c.bonds[i] = b.Copy()
		}
	}
	for i, inc := range m.incident {
		if inc != nil {
			c.incident[i] = append([]int(nil), inc...)
		}
	}

	return c
}

func copyMeta(src map[string]interface{}) map[string]interface{} {
	dst := make(map[string]interface{}, len(src))
	for k, v := range src {
		dst[k] = v
	}

	return dst
}
