// SPDX-License-Identifier: MIT
package molecule_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/molfrag/molecule"
)

// TestConcurrentAddAtomBond hammers AddAtom/AddBond/Neighbors from many goroutines.
func TestConcurrentAddAtomBond(t *testing.T) {
	m := molecule.New()
	hub, err := m.AddAtom(molecule.Carbon)
	require.NoError(t, err)

	const n = 200
	var wg sync.WaitGroup
	wg.Add(2 * n)
	for i := 0; i < n; i++ {
		go func() {
			defer wg.Done()
			j, err := m.AddAtom(molecule.Hydrogen)
			require.NoError(t, err)
			_, err = m.AddBond(hub, j, molecule.OrderSingle)
			require.NoError(t, err)
		}()
		go func() {
			defer wg.Done()
			_, _ = m.Neighbors(hub)
			_ = m.Clone()
		}()
	}
	wg.Wait()

	d, err := m.Degree(hub)
	require.NoError(t, err)
	require.Equal(t, n, d)
	require.Equal(t, n+1, m.LiveAtomCount())
}

// TestConcurrentAddImplicitHydrogens checks that increments are not lost.
func TestConcurrentAddImplicitHydrogens(t *testing.T) {
	m := molecule.New()
	c, err := m.AddAtom(molecule.Carbon)
	require.NoError(t, err)

	const n = 100
	var wg sync.WaitGroup
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func() {
			defer wg.Done()
			_, err := m.AddImplicitHydrogens(c, 1)
			require.NoError(t, err)
		}()
	}
	wg.Wait()

	a, err := m.Atom(c)
	require.NoError(t, err)
	require.Equal(t, n, a.ImplicitHydrogens)
}
