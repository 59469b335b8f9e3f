// SPDX-License-Identifier: MIT
//
// File: impl_ring.go
// Role: Ring, FusedRings and SpiroRings constructors.
//
// Contract:
//   - Ring(n): n >= 3 atoms bonded i -> (i+1)%n.
//   - FusedRings(count, size): count rings of size atoms, each sharing one
//     bond with the previous ring (linear ortho-fusion, as in anthracene).
//   - SpiroRings(count, size): count rings of size atoms, each sharing one
//     atom with the previous ring.
//   - Ring bonds use OrderAromatic under WithAromatic, cfg.order otherwise.
//
// Complexity: O(atoms + bonds) for all three.

package builder

import (
	"fmt"

	"github.com/katalvlaran/molfrag/molecule"
)

// Ring returns a Constructor that appends a simple n-membered ring.
func Ring(n int) Constructor {
	return func(m *molecule.Molecule, cfg builderConfig) error {
		if err := validateMin(MethodRing, "n", n, MinRingAtoms); err != nil {
			return err
		}
		_, err := addRing(m, cfg, MethodRing, -1, -1, n)
		return err
	}
}

// FusedRings returns a Constructor for count linearly fused rings.
// A single ring may have 3 atoms; fusion needs size >= 4.
func FusedRings(count, size int) Constructor {
	return func(m *molecule.Molecule, cfg builderConfig) error {
		if err := validateMin(MethodFusedRings, "count", count, MinRingCount); err != nil {
			return err
		}
		floor := MinRingAtoms
		if count > 1 {
			floor = MinFusedRingAtoms
		}
		if err := validateMin(MethodFusedRings, "size", size, floor); err != nil {
			return err
		}

		ring, err := addRing(m, cfg, MethodFusedRings, -1, -1, size)
		if err != nil {
			return err
		}
		for k := 1; k < count; k++ {
			// share the bond opposite to the previous fusion
			mid := len(ring)/2 - 1
			ring, err = addRing(m, cfg, MethodFusedRings, ring[mid+1], ring[mid], size)
			if err != nil {
				return err
			}
		}
		return nil
	}
}

// SpiroRings returns a Constructor for count rings joined by spiro atoms.
func SpiroRings(count, size int) Constructor {
	return func(m *molecule.Molecule, cfg builderConfig) error {
		if err := validateMin(MethodSpiroRings, "count", count, MinRingCount); err != nil {
			return err
		}
		if err := validateMin(MethodSpiroRings, "size", size, MinRingAtoms); err != nil {
			return err
		}

		ring, err := addRing(m, cfg, MethodSpiroRings, -1, -1, size)
		if err != nil {
			return err
		}
		for k := 1; k < count; k++ {
			ring, err = addRing(m, cfg, MethodSpiroRings, ring[len(ring)/2], -1, size)
			if err != nil {
				return err
			}
		}
		return nil
	}
}

// addRing closes a ring of size atoms. Existing atoms u and v (-1 for
// none) are reused as the first and last ring members; when both are given
// they must already be bonded. The returned slice lists ring members in
// ring order with the new atoms in between.
func addRing(m *molecule.Molecule, cfg builderConfig, method string, u, v, size int) ([]int, error) {
	order := cfg.ringOrder()
	reused := 0
	if u >= 0 {
		reused++
	}
	if v >= 0 {
		reused++
	}

	members := make([]int, 0, size)
	if u >= 0 {
		members = append(members, u)
	}
	for i := 0; i < size-reused; i++ {
		a, err := m.AddAtom(cfg.element, cfg.atomOptions()...)
		if err != nil {
			return nil, fmt.Errorf("%s: AddAtom: %w", method, err)
		}
		members = append(members, a)
	}
	if v >= 0 {
		members = append(members, v)
	}

	last := len(members) - 1
	for i := 0; i < last; i++ {
		if _, err := m.AddBond(members[i], members[i+1], order); err != nil {
			return nil, fmt.Errorf("%s: AddBond(%d,%d): %w", method, members[i], members[i+1], err)
		}
	}
	if u < 0 || v < 0 {
		if _, err := m.AddBond(members[last], members[0], order); err != nil {
			return nil, fmt.Errorf("%s: AddBond(%d,%d): %w", method, members[last], members[0], err)
		}
	}

	return members, nil
}
