// SPDX-License-Identifier: MIT
//
// File: ringfinder.go
// Role: RingFinder capability, its closed set of variants and name parsing.

package marker

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/molfrag/snapshot"
)

// RingFinder reports, per bond, whether the bond belongs to a ring.
// The returned slice has len(arr.Bonds) entries.
type RingFinder interface {
	Name() string
	RingBonds(arr *snapshot.MolecularArrays) []bool
}

// RingFinderKind enumerates the built-in finders.
type RingFinderKind int

const (
	KindBridges RingFinderKind = iota
	KindCycles
	KindAnnotated
)

var kindNames = map[RingFinderKind]string{
	KindBridges:   "bridges",
	KindCycles:    "cycles",
	KindAnnotated: "annotated",
}

// String returns the configuration name of k.
func (k RingFinderKind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}

	return fmt.Sprintf("RingFinderKind(%d)", int(k))
}

// ParseRingFinderKind resolves a case-insensitive finder name.
func ParseRingFinderKind(s string) (RingFinderKind, error) {
	want := strings.ToLower(strings.TrimSpace(s))
	for k, name := range kindNames {
		if name == want {
			return k, nil
		}
	}

	return 0, fmt.Errorf("ParseRingFinderKind(%q): %w", s, ErrUnknownRingFinder)
}

// NewRingFinder returns the finder for k; unknown kinds fall back to bridges.
func NewRingFinder(k RingFinderKind) RingFinder {
	switch k {
	case KindCycles:
		return CycleFinder{}
	case KindAnnotated:
		return AnnotatedFinder{}
	default:
		return BridgeFinder{}
	}
}

// BridgeFinder marks every bond that is not a bridge.
type BridgeFinder struct{}

// Name implements RingFinder.
func (BridgeFinder) Name() string { return KindBridges.String() }

// RingBonds runs Tarjan's lowlink bridge detection.
// Complexity: O(V + E).
func (BridgeFinder) RingBonds(arr *snapshot.MolecularArrays) []bool {
	ring := make([]bool, len(arr.Bonds))
	for j := range ring {
		ring[j] = true
	}
	disc := make([]int, len(arr.Atoms)) // 0 = unvisited
	low := make([]int, len(arr.Atoms))
	timer := 0

	var visit func(u, viaBond int)
	visit = func(u, viaBond int) {
		timer++
		disc[u], low[u] = timer, timer
		n := arr.Atoms[u]
		for k, v := range n.Neighbors {
			b := n.Bonds[k]
			if b == viaBond {
				continue
			}
			if disc[v] == 0 {
				visit(v, b)
				low[u] = min(low[u], low[v])
				if low[v] > disc[u] {
					ring[b] = false
				}
			} else {
				low[u] = min(low[u], disc[v])
			}
		}
	}
	for u := range arr.Atoms {
		if disc[u] == 0 {
			visit(u, -1)
		}
	}

	return ring
}

// AnnotatedFinder returns the external ring flags unchanged.
type AnnotatedFinder struct{}

// Name implements RingFinder.
func (AnnotatedFinder) Name() string { return KindAnnotated.String() }

// RingBonds copies BondEdge.AnnotatedRing.
func (AnnotatedFinder) RingBonds(arr *snapshot.MolecularArrays) []bool {
	ring := make([]bool, len(arr.Bonds))
	for j, e := range arr.Bonds {
		ring[j] = e.AnnotatedRing
	}

	return ring
}
