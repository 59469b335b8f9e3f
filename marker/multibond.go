// SPDX-License-Identifier: MIT
//
// File: multibond.go
// Role: Pass 4, isolated multiple bonds.

package marker

import "github.com/katalvlaran/molfrag/snapshot"

// MarkIsolatedMultiBonds tags every double, triple or aromatic bond that is
// neither inside a conjugated system nor a ring bond between preserved ring
// atoms of one unit. A multiple bond in a block released by dissection, or
// one joining two dissected blocks at their shared atom, is therefore still
// kept intact.
//
// Complexity: O(E).
func MarkIsolatedMultiBonds(arr *snapshot.MolecularArrays, m *Marks) {
	for j, e := range arr.Bonds {
		if !e.Order.IsMultiple() || m.ConjugatedBond[j] {
			continue
		}
		if m.RingBond[j] && m.RingUnitOf[e.Begin] >= 0 && m.RingUnitOf[e.Begin] == m.RingUnitOf[e.End] {
			continue
		}
		m.IsolatedMultiBond[j] = true
		m.IsolatedMultiBonds = append(m.IsolatedMultiBonds, j)
	}
}
