// SPDX-License-Identifier: MIT
//
// File: config.go
// Role: builderConfig and its deterministic defaults.
//
// Defaults:
//   - element   = carbon
//   - order     = single
//   - aromatic  = false
//   - rng       = nil (stochastic constructors fail without WithSeed/WithRand)
//   - hydrogens = true

package builder

import (
	"math/rand"

	"github.com/katalvlaran/molfrag/molecule"
)

// builderConfig aggregates every knob used by constructors.
// It is passed by value to constructors.
type builderConfig struct {
	element   int
	order     molecule.BondOrder
	aromatic  bool
	rng       *rand.Rand
	hydrogens bool
}

func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		element:   DefaultElement,
		order:     DefaultBondOrder,
		hydrogens: true,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// atomOptions returns the per-atom options implied by cfg.
func (c builderConfig) atomOptions() []molecule.AtomOption {
	if c.aromatic {
		return []molecule.AtomOption{molecule.WithAromatic()}
	}

	return nil
}

// ringOrder is the bond order used inside rings.
func (c builderConfig) ringOrder() molecule.BondOrder {
	if c.aromatic {
		return molecule.OrderAromatic
	}

	return c.order
}
