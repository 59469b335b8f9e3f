// SPDX-License-Identifier: MIT
//
// File: conjugated.go
// Role: Pass 3, conjugated systems.

package marker

import (
	"sort"

	"github.com/katalvlaran/molfrag/snapshot"
)

// MarkConjugatedSystems finds maximal spans of atoms joined by alternating
// multiple bonds. Candidate atoms carry at least one double, triple or
// aromatic bond; two bonded candidates are linked whatever the bond order.
// A linked component holding two or more multiple bonds is a conjugated
// system.
//
// Complexity: O(V + E α(V)).
func MarkConjugatedSystems(arr *snapshot.MolecularArrays, m *Marks) {
	cand := make([]bool, len(arr.Atoms))
	for _, e := range arr.Bonds {
		if e.Order.IsMultiple() && m.Role[e.Begin] != RoleHydrogen && m.Role[e.End] != RoleHydrogen {
			cand[e.Begin] = true
			cand[e.End] = true
		}
	}
	linked := func(b int) bool {
		e := arr.Bonds[b]
		return cand[e.Begin] && cand[e.End]
	}

	dsu := NewDisjointSet(len(arr.Atoms))
	for j := range arr.Bonds {
		if linked(j) {
			dsu.Union(arr.Bonds[j].Begin, arr.Bonds[j].End)
		}
	}

	multi := make(map[int]int)
	members := make(map[int][]int)
	links := make(map[int][]int)
	for j, e := range arr.Bonds {
		if !linked(j) {
			continue
		}
		r := dsu.Find(e.Begin)
		links[r] = append(links[r], j)
		if e.Order.IsMultiple() {
			multi[r]++
		}
	}
	var roots []int
	for i := range arr.Atoms {
		if !cand[i] {
			continue
		}
		r := dsu.Find(i)
		if multi[r] < 2 {
			continue
		}
		if len(members[r]) == 0 {
			roots = append(roots, r)
		}
		members[r] = append(members[r], i)
	}

	// roots were discovered in ascending lowest-atom order
	for _, r := range roots {
		id := len(m.ConjugatedSystems)
		bonds := links[r]
		sort.Ints(bonds)
		m.ConjugatedSystems = append(m.ConjugatedSystems, ConjugatedSystem{Atoms: members[r], Bonds: bonds})
		for _, a := range members[r] {
			m.ConjugatedOf[a] = id
		}
		for _, b := range bonds {
			m.ConjugatedBond[b] = true
		}
	}
}
