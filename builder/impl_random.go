// SPDX-License-Identifier: MIT
//
// File: impl_random.go
// Role: RandomAlkane and RandomUnsaturation constructors.
//
// Determinism:
//   - Draws happen in a fixed order, so a fixed seed gives a fixed molecule.

package builder

import (
	"fmt"

	"github.com/katalvlaran/molfrag/molecule"
)

// RandomAlkane returns a Constructor for a random acyclic tree of n atoms
// where no atom exceeds MaxAlkaneDegree neighbors. Atom i > 0 attaches to
// a uniformly drawn earlier atom of the tree with free valence.
// Requires an RNG. Complexity: O(n) expected.
func RandomAlkane(n int) Constructor {
	return func(m *molecule.Molecule, cfg builderConfig) error {
		if err := validateMin(MethodRandomAlkane, "n", n, MinAlkaneAtoms); err != nil {
			return err
		}
		if err := validateRand(MethodRandomAlkane, cfg); err != nil {
			return err
		}

		open := make([]int, 0, n) // atoms with free valence
		degree := make(map[int]int, n)
		for i := 0; i < n; i++ {
			a, err := m.AddAtom(cfg.element, cfg.atomOptions()...)
			if err != nil {
				return fmt.Errorf("%s: AddAtom: %w", MethodRandomAlkane, err)
			}
			if i > 0 {
				k := cfg.rng.Intn(len(open))
				p := open[k]
				if _, err = m.AddBond(p, a, molecule.OrderSingle); err != nil {
					return fmt.Errorf("%s: AddBond(%d,%d): %w", MethodRandomAlkane, p, a, err)
				}
				degree[p]++
				degree[a]++
				if degree[p] == MaxAlkaneDegree {
					open[k] = open[len(open)-1]
					open = open[:len(open)-1]
				}
			}
			open = append(open, a)
		}
		return nil
	}
}

// RandomUnsaturation returns a Constructor that visits every single bond
// in index order and turns it into a double bond with probability p when
// both endpoints still have a free valence. Requires an RNG unless p is
// 0 or 1.
func RandomUnsaturation(p float64) Constructor {
	return func(m *molecule.Molecule, cfg builderConfig) error {
		if err := validateProbability(MethodRandomUnsaturation, p); err != nil {
			return err
		}
		if p > MinProbability && p < MaxProbability {
			if err := validateRand(MethodRandomUnsaturation, cfg); err != nil {
				return err
			}
		}

		for _, b := range m.Bonds() {
			if b.Order != molecule.OrderSingle {
				continue
			}
			if p < MaxProbability && (p == MinProbability || cfg.rng.Float64() >= p) {
				continue
			}
			if freeValence(m, b.Begin) < 1 || freeValence(m, b.End) < 1 {
				continue
			}
			b.Order = molecule.OrderDouble
		}
		return nil
	}
}

// freeValence is the largest default valence of atom i minus its current
// bond valence; elements without default valences report 0.
func freeValence(m *molecule.Molecule, i int) int {
	a, err := m.Atom(i)
	if err != nil {
		return 0
	}
	vals := molecule.DefaultValences(a.AtomicNumber)
	if len(vals) == 0 {
		return 0
	}

	return vals[len(vals)-1] - bondValence(m, i)
}
