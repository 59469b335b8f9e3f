// SPDX-License-Identifier: MIT
//
// File: options.go
// Role: functional options for BuildMolecule.
//
// Contract:
//   - Option constructors validate and panic on meaningless inputs.
//   - Seeding is explicit through WithSeed or WithRand.

package builder

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/molfrag/molecule"
)

// BuilderOption mutates a builderConfig before construction begins.
type BuilderOption func(*builderConfig)

// WithElement sets the atomic number of atoms added by topology
// constructors. Panics outside 1..molecule.MaxAtomicNumber.
func WithElement(z int) BuilderOption {
	if z < 1 || z > molecule.MaxAtomicNumber {
		panic(fmt.Sprintf("builder: WithElement(%d)", z))
	}
	return func(c *builderConfig) { c.element = z }
}

// WithBondOrder sets the order of bonds added by topology constructors.
// Panics on an invalid order.
func WithBondOrder(o molecule.BondOrder) BuilderOption {
	if !o.Valid() {
		panic(fmt.Sprintf("builder: WithBondOrder(%s)", o))
	}
	return func(c *builderConfig) { c.order = o }
}

// WithAromatic marks ring atoms aromatic and ring bonds OrderAromatic.
func WithAromatic() BuilderOption {
	return func(c *builderConfig) { c.aromatic = true }
}

// WithRand provides an explicit RNG for stochastic constructors.
// Panics on nil.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) { c.rng = r }
}

// WithSeed creates a seeded RNG so stochastic constructors are reproducible.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithoutHydrogens leaves ImplicitHydrogens at zero.
func WithoutHydrogens() BuilderOption {
	return func(c *builderConfig) { c.hydrogens = false }
}
