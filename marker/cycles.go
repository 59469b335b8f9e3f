// SPDX-License-Identifier: MIT
//
// File: cycles.go
// Role: CycleFinder, a DFS back-edge cycle basis with canonical rotation.
//
// Determinism:
//   - Atoms are visited in ascending index, neighbors in ascending index.
//   - Each cycle is rotated to its lexicographically minimal form (Booth),
//     in whichever direction is smaller, and the basis is sorted.

package marker

import (
	"sort"
	"strconv"
	"strings"

	"github.com/katalvlaran/molfrag/snapshot"
)

// Three-color DFS states.
const (
	white = iota
	gray
	black
)

// CycleFinder derives ring bonds from a fundamental cycle basis: every
// back edge closes one cycle and all bonds on it are ring bonds.
type CycleFinder struct{}

// Name implements RingFinder.
func (CycleFinder) Name() string { return KindCycles.String() }

// RingBonds implements RingFinder.
func (f CycleFinder) RingBonds(arr *snapshot.MolecularArrays) []bool {
	ring, _ := f.walk(arr)

	return ring
}

// Basis returns the fundamental cycles as canonical, open atom sequences
// (the closing atom is not repeated), sorted.
//
// Complexity: O(V + E + C·L) for C cycles of average length L.
func (f CycleFinder) Basis(arr *snapshot.MolecularArrays) [][]int {
	_, cycles := f.walk(arr)

	return cycles
}

func (CycleFinder) walk(arr *snapshot.MolecularArrays) ([]bool, [][]int) {
	ring := make([]bool, len(arr.Bonds))
	state := make([]int, len(arr.Atoms))
	path := make([]int, 0, len(arr.Atoms))  // atoms on the DFS stack
	entry := make([]int, 0, len(arr.Atoms)) // bond used to enter path[k], -1 for roots
	seen := make(map[string]struct{})
	var cycles [][]int

	var visit func(u, viaBond int)
	visit = func(u, viaBond int) {
		state[u] = gray
		path = append(path, u)
		entry = append(entry, viaBond)

		n := arr.Atoms[u]
		for k, v := range n.Neighbors {
			b := n.Bonds[k]
			if b == viaBond {
				continue
			}
			switch state[v] {
			case white:
				visit(v, b)
			case gray:
				idx := indexOf(path, v)
				ring[b] = true
				for _, eb := range entry[idx+1:] {
					ring[eb] = true
				}
				seq := append([]int(nil), path[idx:]...)
				canon := canonical(seq)
				sig := joinSig(canon)
				if _, dup := seen[sig]; !dup {
					seen[sig] = struct{}{}
					cycles = append(cycles, canon)
				}
			}
		}

		path = path[:len(path)-1]
		entry = entry[:len(entry)-1]
		state[u] = black
	}
	for u := range arr.Atoms {
		if state[u] == white {
			visit(u, -1)
		}
	}

	sort.Slice(cycles, func(i, j int) bool { return compareInts(cycles[i], cycles[j]) < 0 })

	return ring, cycles
}

// canonical picks the smaller of the minimal forward and reverse rotations.
func canonical(cycle []int) []int {
	rotF := minimalRotation(cycle)
	rotB := minimalRotation(reverse(cycle))
	if compareInts(rotB, rotF) < 0 {
		return rotB
	}

	return rotF
}

func indexOf(s []int, val int) int {
	for i, x := range s {
		if x == val {
			return i
		}
	}

	return -1
}

func reverse(s []int) []int {
	out := make([]int, len(s))
	for i := range s {
		out[i] = s[len(s)-1-i]
	}

	return out
}

// compareInts orders by length first, then lexicographically.
func compareInts(a, b []int) int {
	if len(a) != len(b) {
		if len(a) < len(b) {
			return -1
		}
		return 1
	}
	for i := range a {
		if a[i] < b[i] {
			return -1
		} else if a[i] > b[i] {
			return 1
		}
	}

	return 0
}

func joinSig(c []int) string {
	parts := make([]string, len(c))
	for i, x := range c {
		parts[i] = strconv.Itoa(x)
	}

	return strings.Join(parts, ",")
}

// minimalRotation is Booth's algorithm: the lexicographically least
// rotation of s in O(n).
func minimalRotation(s []int) []int {
	n := len(s)
	doubled := make([]int, 0, 2*n)
	doubled = append(append(doubled, s...), s...)
	f := make([]int, 2*n)
	for i := range f {
		f[i] = -1
	}
	k := 0
	for j := 1; j < 2*n; j++ {
		i := f[j-k-1]
		for i != -1 && doubled[j] != doubled[k+i+1] {
			if doubled[j] < doubled[k+i+1] {
				k = j - i - 1
			}
			i = f[i]
		}
		if doubled[j] != doubled[k+i+1] {
			if doubled[j] < doubled[k] {
				k = j
			}
			f[j-k] = -1
		} else {
			f[j-k] = i + 1
		}
	}

	return append([]int(nil), doubled[k:k+n]...)
}
