// SPDX-License-Identifier: MIT
package fragment_test

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/molfrag/fragment"
	"github.com/katalvlaran/molfrag/molecule"
	"github.com/katalvlaran/molfrag/settings"
	"github.com/katalvlaran/molfrag/smiles"
)

// policy returns default settings adjusted by mutate.
func policy(mutate func(*settings.Settings)) settings.Settings {
	s := settings.Default()
	if mutate != nil {
		mutate(&s)
	}

	return s
}

// run fragments s under the given policy and checks the partition.
func run(t *testing.T, s string, cfg settings.Settings) (*molecule.Molecule, []*fragment.Fragment) {
	t.Helper()
	mol := smiles.MustParse(s)
	f, err := fragment.New(fragment.WithSettings(cfg))
	require.NoError(t, err)
	frags, err := f.Fragment(mol)
	require.NoError(t, err)
	require.NoError(t, fragment.CheckPartition(mol, frags))

	return mol, frags
}

// sourceSets returns the real source atoms of every fragment, sorted so
// that fragment sets compare independently of emission order.
func sourceSets(frags []*fragment.Fragment) [][]int {
	out := make([][]int, 0, len(frags))
	for _, fr := range frags {
		var atoms []int
		for _, s := range fr.SourceAtoms {
			if s >= 0 {
				atoms = append(atoms, s)
			}
		}
		sort.Ints(atoms)
		out = append(out, atoms)
	}
	sort.Slice(out, func(i, j int) bool {
		if len(out[i]) == 0 || len(out[j]) == 0 {
			return len(out[i]) < len(out[j])
		}
		return out[i][0] < out[j][0]
	})

	return out
}

func fragmentSMILES(frags []*fragment.Fragment) []string {
	ms := make([]*molecule.Molecule, len(frags))
	for i, fr := range frags {
		ms[i] = fr.Molecule
	}

	return smiles.WriteAll(ms)
}

func span(from, to int) []int {
	out := make([]int, 0, to-from)
	for i := from; i < to; i++ {
		out = append(out, i)
	}

	return out
}
