// SPDX-License-Identifier: MIT
//
// File: rings.go
// Role: Pass 2, ring systems, blocks, spiro atoms and dissection.
//
// Determinism:
//   - Systems ordered by lowest atom; blocks inside a system likewise.

package marker

import (
	"sort"

	"github.com/katalvlaran/molfrag/snapshot"
)

// MarkRings asks finder for ring bonds, groups them into ring systems
// (connected components of ring bonds, so spiro-joined rings form one
// system), splits each system into biconnected blocks and tags atoms shared
// by two or more blocks as RoleSpiro.
//
// When maxRings > 0 a system with more rings is dissected: each of its
// blocks with at most maxRings rings becomes its own ring unit, an atom
// shared between kept blocks stays with the lowest one, and larger blocks
// are left unpreserved.
//
// Complexity: O(V + E log E).
func MarkRings(arr *snapshot.MolecularArrays, m *Marks, finder RingFinder, maxRings int) {
	if finder == nil {
		finder = BridgeFinder{}
	}
	m.RingFinder = finder.Name()
	m.RingBond = finder.RingBonds(arr)
	for j, e := range arr.Bonds {
		if m.RingBond[j] {
			m.RingAtom[e.Begin] = true
			m.RingAtom[e.End] = true
		}
	}

	comps := Components(arr,
		func(i int) bool { return m.RingAtom[i] },
		func(b int) bool { return m.RingBond[b] })
	for si, atoms := range comps {
		for _, a := range atoms {
			m.RingSystemOf[a] = si
		}
		m.RingSystems = append(m.RingSystems, RingSystem{Atoms: atoms})
	}
	for j := range arr.Bonds {
		if m.RingBond[j] {
			si := m.RingSystemOf[arr.Bonds[j].Begin]
			m.RingSystems[si].Bonds = append(m.RingSystems[si].Bonds, j)
		}
	}

	for _, blk := range ringBlocks(arr, m.RingBond) {
		si := m.RingSystemOf[arr.Bonds[blk.Bonds[0]].Begin]
		m.RingSystems[si].Blocks = append(m.RingSystems[si].Blocks, blk)
	}

	blockCount := make([]int, len(arr.Atoms))
	for si := range m.RingSystems {
		sys := &m.RingSystems[si]
		sys.RingCount = len(sys.Bonds) - len(sys.Atoms) + 1
		sort.Slice(sys.Blocks, func(i, j int) bool { return sys.Blocks[i].Atoms[0] < sys.Blocks[j].Atoms[0] })
		for _, blk := range sys.Blocks {
			for _, a := range blk.Atoms {
				blockCount[a]++
			}
		}
		for _, a := range sys.Atoms {
			if blockCount[a] >= 2 {
				sys.SpiroAtoms = append(sys.SpiroAtoms, a)
				m.Role[a] = RoleSpiro
			}
		}

		if maxRings > 0 && sys.RingCount > maxRings {
			sys.Dissected = true
			for _, blk := range sys.Blocks {
				if blk.RingCount > maxRings {
					continue
				}
				var unit []int
				for _, a := range blk.Atoms {
					if m.RingUnitOf[a] < 0 {
						unit = append(unit, a)
					}
				}
				m.addRingUnit(unit)
			}
			continue
		}
		m.addRingUnit(sys.Atoms)
	}
}

func (m *Marks) addRingUnit(atoms []int) {
	if len(atoms) == 0 {
		return
	}
	id := len(m.RingUnits)
	m.RingUnits = append(m.RingUnits, atoms)
	for _, a := range atoms {
		m.RingUnitOf[a] = id
	}
}

// ringBlocks returns the biconnected components of the ring-bond subgraph
// using Tarjan's edge-stack algorithm.
func ringBlocks(arr *snapshot.MolecularArrays, ringBond []bool) []RingBlock {
	disc := make([]int, len(arr.Atoms))
	low := make([]int, len(arr.Atoms))
	timer := 0
	var stack []int
	var blocks []RingBlock

	pop := func(until int) {
		var bonds []int
		for {
			b := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			bonds = append(bonds, b)
			if b == until {
				break
			}
		}
		blocks = append(blocks, newBlock(arr, bonds))
	}

	var visit func(u, viaBond int)
	visit = func(u, viaBond int) {
		timer++
		disc[u], low[u] = timer, timer
		n := arr.Atoms[u]
		for k, v := range n.Neighbors {
			b := n.Bonds[k]
			if !ringBond[b] || b == viaBond {
				continue
			}
			if disc[v] == 0 {
				stack = append(stack, b)
				visit(v, b)
				low[u] = min(low[u], low[v])
				if low[v] >= disc[u] {
					pop(b)
				}
			} else if disc[v] < disc[u] {
				stack = append(stack, b)
				low[u] = min(low[u], disc[v])
			}
		}
	}
	for u := range arr.Atoms {
		if disc[u] == 0 {
			visit(u, -1)
		}
	}

	return blocks
}

func newBlock(arr *snapshot.MolecularArrays, bonds []int) RingBlock {
	sort.Ints(bonds)
	seen := make(map[int]struct{}, len(bonds)+1)
	atoms := make([]int, 0, len(bonds)+1)
	for _, b := range bonds {
		for _, a := range [2]int{arr.Bonds[b].Begin, arr.Bonds[b].End} {
			if _, ok := seen[a]; !ok {
				seen[a] = struct{}{}
				atoms = append(atoms, a)
			}
		}
	}
	sort.Ints(atoms)

	return RingBlock{Atoms: atoms, Bonds: bonds, RingCount: len(bonds) - len(atoms) + 1}
}
