// SPDX-License-Identifier: MIT
//
// File: walker.go
// Role: Assign every snapshot atom to exactly one group.
//
// Determinism:
//   - Seeds are taken in ascending atom index; chains grow depth-first
//     over neighbors in ascending index.

package fragment

import (
	"sort"

	"github.com/katalvlaran/molfrag/marker"
	"github.com/katalvlaran/molfrag/molecule"
	"github.com/katalvlaran/molfrag/settings"
	"github.com/katalvlaran/molfrag/snapshot"
)

// group is one fragment-to-be: dense atom indices and a kind.
type group struct {
	atoms []int
	kind  Kind
}

type walker struct {
	arr   *snapshot.MolecularArrays
	marks *marker.Marks
	cfg   settings.Settings

	heavy      []bool // not an explicit hydrogen riding on a neighbor
	inUnit     []bool
	isolatable []bool
	units      map[int][]int // DSU root -> atoms ascending
	unitKind   map[int]Kind
	dsu        *marker.DisjointSet

	owner  []int
	groups []group
}

func newWalker(arr *snapshot.MolecularArrays, marks *marker.Marks, cfg settings.Settings) *walker {
	n := len(arr.Atoms)
	w := &walker{
		arr:        arr,
		marks:      marks,
		cfg:        cfg,
		heavy:      make([]bool, n),
		inUnit:     make([]bool, n),
		isolatable: make([]bool, n),
		units:      make(map[int][]int),
		unitKind:   make(map[int]Kind),
		dsu:        marker.NewDisjointSet(n),
		owner:      make([]int, n),
	}
	for i := range w.owner {
		w.owner[i] = -1
		w.heavy[i] = marks.Role[i] != marker.RoleHydrogen
	}

	return w
}

func (w *walker) run() []group {
	w.buildUnits()
	w.markIsolatable()

	for a := range w.arr.Atoms {
		if !w.heavy[a] || w.owner[a] >= 0 {
			continue
		}
		switch {
		case w.inUnit[a]:
			root := w.dsu.Find(a)
			kind := w.unitKind[root]
			w.claim(w.units[root], kind)
			if kind == KindRing && w.cfg.SeparateBranchPointFromRing {
				w.splitBranchPoints(w.units[root])
			}
		case !w.cfg.FragmentSideChains:
			w.claim(w.plainComponent(a), KindChain)
		case w.isolatable[a]:
			w.claim([]int{a}, KindBranch)
		default:
			w.claim(w.growChain(a), KindChain)
		}
	}
	w.attachHydrogens()

	return w.groups
}

// buildUnits merges every preserved unit in one disjoint set.
func (w *walker) buildUnits() {
	ringish := make([]bool, len(w.arr.Atoms))
	conj := make([]bool, len(w.arr.Atoms))

	join := func(atoms []int) {
		for _, a := range atoms {
			w.inUnit[a] = true
			w.dsu.Union(atoms[0], a)
		}
	}
	for _, unit := range w.marks.RingUnits {
		join(unit)
		for _, a := range unit {
			ringish[a] = true
		}
	}
	for _, cs := range w.marks.ConjugatedSystems {
		join(cs.Atoms)
		for _, a := range cs.Atoms {
			conj[a] = true
		}
	}
	for _, b := range w.marks.IsolatedMultiBonds {
		e := w.arr.Bonds[b]
		join([]int{e.Begin, e.End})
	}
	if w.cfg.FragmentSideChains && !w.cfg.SeparateBranchPointFromRing {
		for a := range w.arr.Atoms {
			if ring := w.ringNeighbor(a); ring >= 0 {
				join([]int{ring, a})
			}
		}
	}

	for a := range w.arr.Atoms {
		if !w.inUnit[a] {
			continue
		}
		root := w.dsu.Find(a)
		w.units[root] = append(w.units[root], a)
		k, seen := w.unitKind[root]
		switch {
		case ringish[a]:
			k = KindRing
		case conj[a] && (!seen || k != KindRing):
			k = KindConjugated
		case !seen:
			k = KindMultiBond
		}
		w.unitKind[root] = k
	}
}

// ringNeighbor returns the lowest preserved ring atom bonded to a when a is
// an acyclic branch point, or -1.
func (w *walker) ringNeighbor(a int) int {
	if !w.heavy[a] || w.marks.InRingUnit(a) || w.marks.Degree[a] < 3 {
		return -1
	}
	for _, v := range w.arr.Atoms[a].Neighbors {
		if w.marks.InRingUnit(v) {
			return v
		}
	}

	return -1
}

func (w *walker) markIsolatable() {
	if !w.cfg.FragmentSideChains {
		return
	}
	for a, n := range w.arr.Atoms {
		if !w.heavy[a] || w.inUnit[a] || w.marks.Degree[a] < 3 {
			continue
		}
		if w.cfg.IsolateQuaternaryCarbons && n.AtomicNumber == molecule.Carbon {
			w.isolatable[a] = true
		}
		if w.cfg.SeparateBranchPointFromRing && w.ringNeighbor(a) >= 0 {
			w.isolatable[a] = true
		}
	}
}

// splitBranchPoints emits each still-free branch atom bonded to the unit
// as its own fragment, right after the ring.
func (w *walker) splitBranchPoints(unit []int) {
	for _, r := range unit {
		for _, v := range w.arr.Atoms[r].Neighbors {
			if w.isolatable[v] && w.owner[v] < 0 && w.ringNeighbor(v) >= 0 {
				w.claim([]int{v}, KindBranch)
			}
		}
	}
}

// plainComponent collects the connected heavy atoms outside units.
func (w *walker) plainComponent(seed int) []int {
	seen := map[int]bool{seed: true}
	queue := []int{seed}
	for qi := 0; qi < len(queue); qi++ {
		for _, v := range w.arr.Atoms[queue[qi]].Neighbors {
			if seen[v] || !w.heavy[v] || w.inUnit[v] || w.owner[v] >= 0 {
				continue
			}
			seen[v] = true
			queue = append(queue, v)
		}
	}

	return queue
}

// growChain collects up to MaxChainLength free plain atoms depth-first.
func (w *walker) growChain(seed int) []int {
	limit := w.cfg.MaxChainLength
	chain := make([]int, 0, min(limit, len(w.arr.Atoms)))
	taken := map[int]bool{}

	var grow func(u int)
	grow = func(u int) {
		taken[u] = true
		chain = append(chain, u)
		for _, v := range w.arr.Atoms[u].Neighbors {
			if len(chain) >= limit {
				return
			}
			if taken[v] || !w.heavy[v] || w.inUnit[v] || w.isolatable[v] || w.owner[v] >= 0 {
				continue
			}
			grow(v)
		}
	}
	grow(seed)

	return chain
}

func (w *walker) claim(atoms []int, kind Kind) {
	id := len(w.groups)
	for _, a := range atoms {
		w.owner[a] = id
	}
	w.groups = append(w.groups, group{atoms: atoms, kind: kind})
}

// attachHydrogens puts each riding hydrogen in its neighbor's group.
func (w *walker) attachHydrogens() {
	for a := range w.arr.Atoms {
		if w.heavy[a] {
			continue
		}
		g := w.owner[w.arr.Atoms[a].Neighbors[0]]
		w.owner[a] = g
		w.groups[g].atoms = append(w.groups[g].atoms, a)
	}
	for i := range w.groups {
		sort.Ints(w.groups[i].atoms)
	}
}
