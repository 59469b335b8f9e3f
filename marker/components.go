// SPDX-License-Identifier: MIT
//
// File: components.go
// Role: Connected components over a filtered subgraph of the snapshot.

package marker

import (
	"sort"

	"github.com/katalvlaran/molfrag/snapshot"
)

// Components returns the connected components of the subgraph whose atoms
// satisfy keepAtom and whose bonds satisfy keepBond. Components are ordered
// by their lowest atom; atoms inside a component are ascending.
//
// Time:   O(V + E log V).
// Memory: O(V).
func Components(arr *snapshot.MolecularArrays, keepAtom func(int) bool, keepBond func(int) bool) [][]int {
	seen := make([]bool, len(arr.Atoms))
	var comps [][]int

	for i := range arr.Atoms {
		if seen[i] || !keepAtom(i) {
			continue
		}
		queue := []int{i}
		seen[i] = true
		for qi := 0; qi < len(queue); qi++ {
			u := queue[qi]
			n := arr.Atoms[u]
			for k, v := range n.Neighbors {
				if seen[v] || !keepAtom(v) || !keepBond(n.Bonds[k]) {
					continue
				}
				seen[v] = true
				queue = append(queue, v)
			}
		}
		sort.Ints(queue)
		comps = append(comps, queue)
	}

	return comps
}
