// SPDX-License-Identifier: MIT
//
// File: neighbors.go
// Role: Pass 1, heavy-atom degree and topology role.

package marker

import "github.com/katalvlaran/molfrag/snapshot"

// MarkNeighbors fills m.Degree and m.Role. Explicit hydrogens attached to a
// heavy atom are tagged RoleHydrogen and excluded from their neighbor's
// degree.
//
// Complexity: O(V + E).
func MarkNeighbors(arr *snapshot.MolecularArrays, m *Marks) {
	for i, n := range arr.Atoms {
		if arr.AttachedHydrogen(i) {
			m.Degree[i] = 1
			m.Role[i] = RoleHydrogen
			continue
		}
		d := 0
		for _, v := range n.Neighbors {
			if !arr.AttachedHydrogen(v) {
				d++
			}
		}
		m.Degree[i] = d
		m.Role[i] = roleForDegree(d)
	}
}

func roleForDegree(d int) Role {
	switch {
	case d == 0:
		return RoleIsolated
	case d == 1:
		return RoleTerminal
	case d == 2:
		return RoleChain
	case d == 3:
		return RoleBranchTertiary
	default:
		return RoleBranchQuaternary
	}
}
