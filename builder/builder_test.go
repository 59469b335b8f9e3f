// SPDX-License-Identifier: MIT
package builder_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/molfrag/builder"
	"github.com/katalvlaran/molfrag/marker"
	"github.com/katalvlaran/molfrag/molecule"
	"github.com/katalvlaran/molfrag/smiles"
	"github.com/katalvlaran/molfrag/snapshot"
)

func marks(t *testing.T, m *molecule.Molecule) *marker.Marks {
	t.Helper()
	arr, err := snapshot.Build(m)
	require.NoError(t, err)
	mk, err := marker.Mark(arr)
	require.NoError(t, err)

	return mk
}

func TestConstructors_Topology(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		opts   []builder.BuilderOption
		cons   []builder.Constructor
		atoms  int
		bonds  int
		smiles string
	}{
		{name: "Chain(4)", cons: []builder.Constructor{builder.Chain(4)}, atoms: 4, bonds: 3, smiles: "CCCC"},
		{name: "Chain(1)", cons: []builder.Constructor{builder.Chain(1)}, atoms: 1, bonds: 0, smiles: "C"},
		{name: "Ring(6)", cons: []builder.Constructor{builder.Ring(6)}, atoms: 6, bonds: 6, smiles: "C1CCCCC1"},
		{name: "Star(5)", cons: []builder.Constructor{builder.Star(5)}, atoms: 5, bonds: 4, smiles: "C(C)(C)(C)C"},
		{
			name: "aromatic Ring(6)", opts: []builder.BuilderOption{builder.WithAromatic()},
			cons: []builder.Constructor{builder.Ring(6)}, atoms: 6, bonds: 6, smiles: "c1ccccc1",
		},
		{
			name: "oxygen Chain(2)", opts: []builder.BuilderOption{builder.WithElement(molecule.Oxygen)},
			cons: []builder.Constructor{builder.Chain(2)}, atoms: 2, bonds: 1, smiles: "OO",
		},
		{
			name: "double Chain(2)", opts: []builder.BuilderOption{builder.WithBondOrder(molecule.OrderDouble)},
			cons: []builder.Constructor{builder.Chain(2)}, atoms: 2, bonds: 1, smiles: "C=C",
		},
		{name: "Atom", cons: []builder.Constructor{builder.Atom(molecule.Nitrogen)}, atoms: 1, smiles: "N"},
		{name: "FusedRings(1,3)", cons: []builder.Constructor{builder.FusedRings(1, 3)}, atoms: 3, bonds: 3, smiles: "C1CC1"},
		{name: "FusedRings(3,6)", cons: []builder.Constructor{builder.FusedRings(3, 6)}, atoms: 14, bonds: 16},
		{name: "SpiroRings(3,5)", cons: []builder.Constructor{builder.SpiroRings(3, 5)}, atoms: 13, bonds: 15},
		{
			name:  "Chain+Ring+Link",
			cons:  []builder.Constructor{builder.Chain(3), builder.Ring(6), builder.Link(2, 3, molecule.OrderSingle)},
			atoms: 9, bonds: 9,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			m, err := builder.BuildMolecule(nil, tc.opts, tc.cons...)
			require.NoError(t, err)
			assert.Equal(t, tc.atoms, m.LiveAtomCount())
			assert.Equal(t, tc.bonds, m.LiveBondCount())
			if tc.smiles != "" {
				assert.Equal(t, tc.smiles, smiles.Write(m))
			}
		})
	}
}

func TestRingSystems(t *testing.T) {
	fused := marks(t, builder.MustBuild(nil, builder.FusedRings(3, 6)))
	require.Len(t, fused.RingSystems, 1)
	assert.Equal(t, 3, fused.RingSystems[0].RingCount)
	assert.Len(t, fused.RingSystems[0].Blocks, 1)
	assert.Empty(t, fused.RingSystems[0].SpiroAtoms)

	spiro := marks(t, builder.MustBuild(nil, builder.SpiroRings(3, 5)))
	require.Len(t, spiro.RingSystems, 1)
	assert.Equal(t, 3, spiro.RingSystems[0].RingCount)
	assert.Len(t, spiro.RingSystems[0].Blocks, 3)
	assert.Equal(t, []int{2, 6}, spiro.RingSystems[0].SpiroAtoms)
}

func TestLink_JoinsComponents(t *testing.T) {
	m := builder.MustBuild(nil, builder.Chain(3), builder.Ring(6), builder.Link(2, 3, molecule.OrderSingle))
	b, ok := m.BondBetween(2, 3)
	require.True(t, ok)
	assert.Equal(t, molecule.OrderSingle, b.Order)

	a, err := m.Atom(3)
	require.NoError(t, err)
	assert.Equal(t, 1, a.ImplicitHydrogens, "ring atom carrying the propyl group")
}

func TestHydrogens(t *testing.T) {
	m := builder.MustBuild(nil, builder.Star(5))
	hs := []int{}
	for _, a := range m.Atoms() {
		hs = append(hs, a.ImplicitHydrogens)
	}
	assert.Equal(t, []int{0, 3, 3, 3, 3}, hs)

	bare := builder.MustBuild([]builder.BuilderOption{builder.WithoutHydrogens()}, builder.Star(5))
	for _, a := range bare.Atoms() {
		assert.Zero(t, a.ImplicitHydrogens)
	}
}

func TestRandomAlkane(t *testing.T) {
	build := func(seed int64) *molecule.Molecule {
		return builder.MustBuild([]builder.BuilderOption{builder.WithSeed(seed)}, builder.RandomAlkane(40))
	}
	m := build(7)
	assert.Equal(t, 40, m.LiveAtomCount())
	assert.Equal(t, 39, m.LiveBondCount())
	for _, a := range m.Atoms() {
		d, err := m.Degree(a.Index)
		require.NoError(t, err)
		assert.LessOrEqual(t, d, builder.MaxAlkaneDegree)
	}
	assert.Empty(t, marks(t, m).RingSystems)
	assert.Equal(t, smiles.Write(m), smiles.Write(build(7)))

	withRand := builder.MustBuild([]builder.BuilderOption{builder.WithRand(rand.New(rand.NewSource(7)))}, builder.RandomAlkane(40))
	assert.Equal(t, smiles.Write(m), smiles.Write(withRand))
}

func TestRandomUnsaturation(t *testing.T) {
	m := builder.MustBuild(nil, builder.Chain(4), builder.RandomUnsaturation(1))
	assert.Equal(t, "C=C=C=C", smiles.Write(m))

	m = builder.MustBuild(nil, builder.Chain(4), builder.RandomUnsaturation(0))
	assert.Equal(t, "CCCC", smiles.Write(m))

	a := builder.MustBuild([]builder.BuilderOption{builder.WithSeed(3)}, builder.RandomAlkane(30), builder.RandomUnsaturation(0.4))
	b := builder.MustBuild([]builder.BuilderOption{builder.WithSeed(3)}, builder.RandomAlkane(30), builder.RandomUnsaturation(0.4))
	assert.Equal(t, smiles.Write(a), smiles.Write(b))
	for _, at := range a.Atoms() {
		assert.GreaterOrEqual(t, at.ImplicitHydrogens, 0)
	}
}

func TestConstructorErrors(t *testing.T) {
	cases := map[string]struct {
		opts []builder.BuilderOption
		con  builder.Constructor
		want error
	}{
		"chain zero":        {con: builder.Chain(0), want: builder.ErrTooFewAtoms},
		"ring two":          {con: builder.Ring(2), want: builder.ErrTooFewAtoms},
		"star one":          {con: builder.Star(1), want: builder.ErrTooFewAtoms},
		"fused triangles":   {con: builder.FusedRings(2, 3), want: builder.ErrTooFewAtoms},
		"spiro none":        {con: builder.SpiroRings(0, 5), want: builder.ErrTooFewAtoms},
		"alkane no rng":     {con: builder.RandomAlkane(5), want: builder.ErrNeedRandSource},
		"alkane empty":      {opts: []builder.BuilderOption{builder.WithSeed(1)}, con: builder.RandomAlkane(0), want: builder.ErrTooFewAtoms},
		"unsat p":           {con: builder.RandomUnsaturation(1.5), want: builder.ErrInvalidProbability},
		"unsat no rng":      {con: builder.RandomUnsaturation(0.5), want: builder.ErrNeedRandSource},
		"link missing":      {con: builder.Link(0, 9, molecule.OrderSingle), want: builder.ErrConstructFailed},
		"nil constructor":   {con: nil, want: builder.ErrConstructFailed},
		"atom out of range": {con: builder.Atom(200), want: molecule.ErrBadAtomicNumber},
	}
	for name, tc := range cases {
		_, err := builder.BuildMolecule(nil, tc.opts, tc.con)
		assert.ErrorIs(t, err, tc.want, name)
	}
}

func TestOptionPanics(t *testing.T) {
	assert.Panics(t, func() { builder.WithElement(0) })
	assert.Panics(t, func() { builder.WithElement(molecule.MaxAtomicNumber + 1) })
	assert.Panics(t, func() { builder.WithBondOrder(molecule.OrderUnset) })
	assert.Panics(t, func() { builder.WithRand(nil) })
	assert.NotPanics(t, func() { builder.WithSeed(0) })
}

func TestBuildMolecule_Title(t *testing.T) {
	m, err := builder.BuildMolecule([]molecule.Option{molecule.WithTitle("decalin")}, nil, builder.FusedRings(2, 6))
	require.NoError(t, err)
	assert.Equal(t, "decalin", m.Title())
}
