// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Role tags, Marks arrays, ring/conjugated system records, options.

package marker

import (
	"errors"

	"github.com/katalvlaran/molfrag/snapshot"
)

var (
	// ErrNilArrays is returned when Mark receives nil arrays.
	ErrNilArrays = errors.New("marker: arrays are nil")

	// ErrOptionViolation is returned when an invalid Option was supplied.
	ErrOptionViolation = errors.New("marker: invalid option supplied")

	// ErrUnknownRingFinder is returned by ParseRingFinderKind for unknown names.
	ErrUnknownRingFinder = errors.New("marker: unknown ring finder")
)

// Role is the topological tag of an atom.
type Role uint8

const (
	RoleIsolated         Role = iota // no heavy neighbor
	RoleTerminal                     // one heavy neighbor
	RoleChain                        // two heavy neighbors
	RoleBranchTertiary               // three heavy neighbors
	RoleBranchQuaternary             // four or more heavy neighbors
	RoleSpiro                        // shared by two or more ring blocks
	RoleHydrogen                     // explicit hydrogen bonded to a heavy atom
)

var roleNames = [...]string{"isolated", "terminal", "chain", "branch-tertiary", "branch-quaternary", "spiro", "hydrogen"}

// String returns the lower-case role name.
func (r Role) String() string {
	if int(r) < len(roleNames) {
		return roleNames[r]
	}

	return "unknown"
}

// IsBranch reports whether r is a tertiary or quaternary branch point.
func (r Role) IsBranch() bool {
	return r == RoleBranchTertiary || r == RoleBranchQuaternary
}

// RingBlock is one biconnected component of the ring-bond graph.
type RingBlock struct {
	Atoms     []int // ascending
	Bonds     []int // ascending
	RingCount int   // cyclomatic number E - V + 1
}

// RingSystem is a maximal connected set of ring bonds.
type RingSystem struct {
	Atoms      []int // ascending
	Bonds      []int // ascending
	Blocks     []RingBlock
	RingCount  int
	SpiroAtoms []int

	// Dissected is set when RingCount exceeded the per-system limit.
	Dissected bool
}

// ConjugatedSystem is a maximal span of atoms joined by alternating
// multiple bonds.
type ConjugatedSystem struct {
	Atoms []int // ascending
	Bonds []int // ascending
}

// Marks holds every per-call working array. Atom-indexed slices have
// len(arr.Atoms) entries, bond-indexed slices len(arr.Bonds).
type Marks struct {
	// MarkNeighbors
	Degree []int // heavy-atom degree
	Role   []Role

	// MarkRings
	RingBond     []bool
	RingAtom     []bool
	RingSystemOf []int // atom -> index in RingSystems, -1 outside rings
	RingSystems  []RingSystem

	// RingUnits are the atom sets kept whole: one per ring system, or one
	// per admissible block of a dissected system.
	RingUnits  [][]int
	RingUnitOf []int // atom -> index in RingUnits, -1 when not preserved

	// MarkConjugatedSystems
	ConjugatedSystems []ConjugatedSystem
	ConjugatedOf      []int  // atom -> index in ConjugatedSystems, -1
	ConjugatedBond    []bool // bond lies inside a conjugated system

	// MarkIsolatedMultiBonds
	IsolatedMultiBond  []bool
	IsolatedMultiBonds []int // ascending bond indices

	// RingFinder names the finder that produced RingBond.
	RingFinder string
}

// NewMarks allocates zeroed working arrays sized for arr.
func NewMarks(arr *snapshot.MolecularArrays) *Marks {
	n, e := len(arr.Atoms), len(arr.Bonds)
	m := &Marks{
		Degree:            make([]int, n),
		Role:              make([]Role, n),
		RingBond:          make([]bool, e),
		RingAtom:          make([]bool, n),
		RingSystemOf:      filled(n, -1),
		RingUnitOf:        filled(n, -1),
		ConjugatedOf:      filled(n, -1),
		ConjugatedBond:    make([]bool, e),
		IsolatedMultiBond: make([]bool, e),
	}

	return m
}

// Options configures Mark.
type Options struct {
	// Finder detects ring bonds. Defaults to BridgeFinder.
	Finder RingFinder

	// MaxRingsPerSystem dissects systems with more rings; 0 disables.
	MaxRingsPerSystem int

	err error
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns BridgeFinder and no dissection limit.
func DefaultOptions() Options {
	return Options{Finder: BridgeFinder{}}
}

// WithRingFinder selects the ring finder; nil keeps the default.
func WithRingFinder(f RingFinder) Option {
	return func(o *Options) {
		if f != nil {
			o.Finder = f
		}
	}
}

// WithMaxRingsPerSystem sets the dissection limit; negative values are
// recorded and reported as ErrOptionViolation by Mark.
func WithMaxRingsPerSystem(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = ErrOptionViolation
			return
		}
		o.MaxRingsPerSystem = n
	}
}

func filled(n, v int) []int {
	s := make([]int, n)
	for i := range s {
		s[i] = v
	}

	return s
}
