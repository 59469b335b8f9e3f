// SPDX-License-Identifier: MIT
package molecule_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/molfrag/molecule"
)

func TestClone_Independent(t *testing.T) {
	m := ethanol(t)
	a, err := m.Atom(2)
	require.NoError(t, err)
	a.Metadata["tag"] = "hydroxyl"
	require.NoError(t, m.RemoveAtom(0))

	c := m.Clone()
	assert.Equal(t, m.Title(), c.Title())
	assert.Equal(t, m.AtomCount(), c.AtomCount())
	assert.Equal(t, m.LiveAtomCount(), c.LiveAtomCount())
	assert.Equal(t, m.BondCount(), c.BondCount())
	assert.False(t, c.HasAtom(0), "holes survive cloning")

	ca, err := c.Atom(2)
	require.NoError(t, err)
	assert.Equal(t, "hydroxyl", ca.Metadata["tag"])

	// mutate the clone; the source must not change
	ca.Metadata["tag"] = "changed"
	ca.Charge = -1
	_, err = c.AddAtom(molecule.Carbon)
	require.NoError(t, err)
	require.NoError(t, c.RemoveBond(1))

	assert.Equal(t, "hydroxyl", a.Metadata["tag"])
	assert.Equal(t, 0, a.Charge)
	assert.Equal(t, 3, m.AtomCount())
	assert.Equal(t, 1, m.LiveBondCount())
}

func TestAtomCopy(t *testing.T) {
	a := &molecule.Atom{Index: 3, AtomicNumber: molecule.Oxygen, Metadata: map[string]interface{}{"k": 1}}
	c := a.Copy()
	c.Metadata["k"] = 2
	assert.Equal(t, 1, a.Metadata["k"])
	assert.Equal(t, a.AtomicNumber, c.AtomicNumber)
}
