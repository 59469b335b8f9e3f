// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: BuildMolecule orchestrator and the Constructor type.
//
// Determinism:
//   - Same inputs, options, seed and constructor order give identical
//     molecules.

package builder

import (
	"fmt"

	"github.com/katalvlaran/molfrag/molecule"
)

// Constructor appends atoms and bonds to m using the resolved config.
// Constructors validate parameters before touching m and never panic.
type Constructor func(m *molecule.Molecule, cfg builderConfig) error

// BuildMolecule creates a molecule with mopts, resolves bopts and applies
// every constructor in order. Constructor errors are wrapped with
// "BuildMolecule: %w"; no partial cleanup is attempted.
//
// Complexity: O(len(bopts)) plus the cost of each constructor plus
// O(V + E) for hydrogen assignment.
func BuildMolecule(mopts []molecule.Option, bopts []BuilderOption, cons ...Constructor) (*molecule.Molecule, error) {
	m := molecule.New(mopts...)
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildMolecule: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(m, cfg); err != nil {
			return nil, fmt.Errorf("BuildMolecule: %w", err)
		}
	}
	if cfg.hydrogens {
		fillHydrogens(m)
	}

	return m, nil
}

// MustBuild is BuildMolecule for tests and benchmarks; it panics on error.
func MustBuild(bopts []BuilderOption, cons ...Constructor) *molecule.Molecule {
	m, err := BuildMolecule(nil, bopts, cons...)
	if err != nil {
		panic(err)
	}

	return m
}

// fillHydrogens sets ImplicitHydrogens of every atom from its bond valence.
func fillHydrogens(m *molecule.Molecule) {
	for _, a := range m.Atoms() {
		if a.Placeholder {
			continue
		}
		_ = m.SetImplicitHydrogens(a.Index, molecule.ImplicitHydrogenCount(a.AtomicNumber, bondValence(m, a.Index), a.Aromatic))
	}
}

func bondValence(m *molecule.Molecule, i int) int {
	incident, err := m.IncidentBonds(i)
	if err != nil {
		return 0
	}
	sum := 0
	for _, bi := range incident {
		if b, err := m.Bond(bi); err == nil {
			sum += b.Order.Valence()
		}
	}

	return sum
}
