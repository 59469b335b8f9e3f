// SPDX-License-Identifier: MIT
// Package molecule_test verifies atom/bond lifecycle, hole semantics and queries.
package molecule_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/molfrag/molecule"
)

// ethanol builds C-C-O with explicit indices 0,1,2.
func ethanol(t *testing.T) *molecule.Molecule {
	t.Helper()
	m := molecule.New(molecule.WithTitle("ethanol"))
	for _, z := range []int{molecule.Carbon, molecule.Carbon, molecule.Oxygen} {
		_, err := m.AddAtom(z)
		require.NoError(t, err)
	}
	_, err := m.AddBond(0, 1, molecule.OrderSingle)
	require.NoError(t, err)
	_, err = m.AddBond(1, 2, molecule.OrderSingle)
	require.NoError(t, err)

	return m
}

func TestAddAtom_Validation(t *testing.T) {
	m := molecule.New()
	_, err := m.AddAtom(-1)
	assert.ErrorIs(t, err, molecule.ErrBadAtomicNumber)
	_, err = m.AddAtom(molecule.MaxAtomicNumber + 1)
	assert.ErrorIs(t, err, molecule.ErrBadAtomicNumber)

	i, err := m.AddAtom(molecule.Pseudo)
	require.NoError(t, err)
	assert.Equal(t, 0, i)

	i, err = m.AddAtom(molecule.Nitrogen, molecule.WithCharge(1), molecule.WithImplicitHydrogens(4),
		molecule.WithAtomMetadata("label", "ammonium"))
	require.NoError(t, err)
	a, err := m.Atom(i)
	require.NoError(t, err)
	assert.Equal(t, 1, a.Index)
	assert.Equal(t, 1, a.Charge)
	assert.Equal(t, 4, a.ImplicitHydrogens)
	assert.Equal(t, "ammonium", a.Metadata["label"])
}

func TestAddBond_Validation(t *testing.T) {
	m := ethanol(t)

	_, err := m.AddBond(0, 0, molecule.OrderSingle)
	assert.ErrorIs(t, err, molecule.ErrSelfBond)
	_, err = m.AddBond(0, 9, molecule.OrderSingle)
	assert.ErrorIs(t, err, molecule.ErrAtomNotFound)
	_, err = m.AddBond(1, 0, molecule.OrderDouble)
	assert.ErrorIs(t, err, molecule.ErrDuplicateBond)
	_, err = m.AddBond(0, 2, molecule.OrderUnset)
	assert.ErrorIs(t, err, molecule.ErrBadBondOrder)

	bi, err := m.AddBond(0, 2, molecule.OrderSingle, molecule.WithRingFlag())
	require.NoError(t, err)
	b, err := m.Bond(bi)
	require.NoError(t, err)
	assert.True(t, b.InRing)
	assert.Equal(t, 0, b.Begin)
	assert.Equal(t, 2, b.End)
	assert.Equal(t, 2, b.Other(0))
	assert.Equal(t, -1, b.Other(1))
}

func TestRemoveAtom_LeavesHoles(t *testing.T) {
	m := ethanol(t)
	require.NoError(t, m.RemoveAtom(1))

	assert.Equal(t, 3, m.AtomCount())
	assert.Equal(t, 2, m.LiveAtomCount())
	assert.Equal(t, 2, m.BondCount())
	assert.Equal(t, 0, m.LiveBondCount())
	assert.False(t, m.HasAtom(1))
	assert.True(t, m.HasAtom(2))

	_, err := m.Atom(1)
	assert.ErrorIs(t, err, molecule.ErrAtomNotFound)
	assert.ErrorIs(t, m.RemoveAtom(1), molecule.ErrAtomNotFound)

	nbs, err := m.Neighbors(0)
	require.NoError(t, err)
	assert.Empty(t, nbs)

	atoms := m.Atoms()
	require.Len(t, atoms, 2)
	assert.Equal(t, 0, atoms[0].Index)
	assert.Equal(t, 2, atoms[1].Index)
}

func TestRemoveBond(t *testing.T) {
	m := ethanol(t)
	require.NoError(t, m.RemoveBond(0))
	assert.ErrorIs(t, m.RemoveBond(0), molecule.ErrBondNotFound)
	_, ok := m.BondBetween(0, 1)
	assert.False(t, ok)

	d, err := m.Degree(1)
	require.NoError(t, err)
	assert.Equal(t, 1, d)

	// re-bonding reuses no slot
	bi, err := m.AddBond(0, 1, molecule.OrderDouble)
	require.NoError(t, err)
	assert.Equal(t, 2, bi)
}

func TestImplicitHydrogenSetters(t *testing.T) {
	m := ethanol(t)
	require.NoError(t, m.SetImplicitHydrogens(0, 3))
	n, err := m.AddImplicitHydrogens(0, 2)
	require.NoError(t, err)
	assert.Equal(t, 5, n)

	a, err := m.Atom(0)
	require.NoError(t, err)
	assert.Equal(t, 5, a.ImplicitHydrogens)

	// a rejected update leaves the count alone
	n, err = m.AddImplicitHydrogens(0, -6)
	assert.ErrorIs(t, err, molecule.ErrBadHydrogenCount)
	assert.Equal(t, 5, n)
	assert.ErrorIs(t, m.SetImplicitHydrogens(0, -1), molecule.ErrBadHydrogenCount)
	assert.Equal(t, 5, a.ImplicitHydrogens)

	require.NoError(t, m.RemoveAtom(2))
	assert.ErrorIs(t, m.SetImplicitHydrogens(2, 1), molecule.ErrAtomNotFound)
	_, err = m.AddImplicitHydrogens(9, 1)
	assert.ErrorIs(t, err, molecule.ErrAtomNotFound)
}

func TestNeighbors_Sorted(t *testing.T) {
	m := molecule.New()
	for i := 0; i < 5; i++ {
		_, err := m.AddAtom(molecule.Carbon)
		require.NoError(t, err)
	}
	for _, j := range []int{4, 1, 3, 2} {
		_, err := m.AddBond(0, j, molecule.OrderSingle)
		require.NoError(t, err)
	}

	nbs, err := m.Neighbors(0)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3, 4}, nbs)

	inc, err := m.IncidentBonds(0)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, 3}, inc)

	_, err = m.Neighbors(7)
	assert.ErrorIs(t, err, molecule.ErrAtomNotFound)
}

func TestBondOrder(t *testing.T) {
	cases := []struct {
		o        molecule.BondOrder
		valid    bool
		multiple bool
		valence  int
	}{
		{molecule.OrderUnset, false, false, 0},
		{molecule.OrderSingle, true, false, 1},
		{molecule.OrderDouble, true, true, 2},
		{molecule.OrderTriple, true, true, 3},
		{molecule.OrderAromatic, true, true, 1},
	}
	for _, c := range cases {
		t.Run(c.o.String(), func(t *testing.T) {
			assert.Equal(t, c.valid, c.o.Valid())
			assert.Equal(t, c.multiple, c.o.IsMultiple())
			assert.Equal(t, c.valence, c.o.Valence())
		})
	}
}

func TestElements(t *testing.T) {
	assert.Equal(t, "C", molecule.Symbol(molecule.Carbon))
	assert.Equal(t, "*", molecule.Symbol(molecule.Pseudo))
	assert.Equal(t, "Og", molecule.Symbol(118))

	z, ok := molecule.AtomicNumber("Cl")
	require.True(t, ok)
	assert.Equal(t, molecule.Chlorine, z)
	z, ok = molecule.AtomicNumber("c")
	require.True(t, ok)
	assert.Equal(t, molecule.Carbon, z)
	_, ok = molecule.AtomicNumber("Xx")
	assert.False(t, ok)

	assert.Equal(t, 4, molecule.ImplicitHydrogenCount(molecule.Carbon, 0, false))
	assert.Equal(t, 1, molecule.ImplicitHydrogenCount(molecule.Carbon, 2, true))
	assert.Equal(t, 1, molecule.ImplicitHydrogenCount(molecule.Sulfur, 1, false))
	assert.Equal(t, 0, molecule.ImplicitHydrogenCount(molecule.Sulfur, 4, false))
	assert.Equal(t, 0, molecule.ImplicitHydrogenCount(26, 2, false))
}
