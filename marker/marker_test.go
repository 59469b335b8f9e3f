// SPDX-License-Identifier: MIT
package marker_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/molfrag/marker"
	"github.com/katalvlaran/molfrag/molecule"
	"github.com/katalvlaran/molfrag/smiles"
	"github.com/katalvlaran/molfrag/snapshot"
)

func arrays(t *testing.T, s string) *snapshot.MolecularArrays {
	t.Helper()
	arr, err := snapshot.Build(smiles.MustParse(s))
	require.NoError(t, err)

	return arr
}

func mark(t *testing.T, s string, opts ...marker.Option) (*snapshot.MolecularArrays, *marker.Marks) {
	t.Helper()
	arr := arrays(t, s)
	m, err := marker.Mark(arr, opts...)
	require.NoError(t, err)

	return arr, m
}

func TestMark_Errors(t *testing.T) {
	_, err := marker.Mark(nil)
	assert.ErrorIs(t, err, marker.ErrNilArrays)

	_, err = marker.Mark(arrays(t, "C"), marker.WithMaxRingsPerSystem(-1))
	assert.ErrorIs(t, err, marker.ErrOptionViolation)
}

func TestMarkNeighbors_Roles(t *testing.T) {
	// neopentane with one explicit hydrogen on a methyl, plus an isolated atom
	_, m := mark(t, "CC(C)(C)C[H].O")
	assert.Equal(t, []int{1, 4, 1, 1, 1, 1, 0}, m.Degree)
	assert.Equal(t, marker.RoleTerminal, m.Role[0])
	assert.Equal(t, marker.RoleBranchQuaternary, m.Role[1])
	assert.Equal(t, marker.RoleTerminal, m.Role[4], "explicit H does not count")
	assert.Equal(t, marker.RoleHydrogen, m.Role[5])
	assert.Equal(t, marker.RoleIsolated, m.Role[6])

	_, m = mark(t, "CC(C)C")
	assert.Equal(t, marker.RoleBranchTertiary, m.Role[1])
	assert.True(t, m.Role[1].IsBranch())
	assert.Equal(t, marker.RoleChain, markRoleOf(t, "CCC", 1))
}

func markRoleOf(t *testing.T, s string, i int) marker.Role {
	t.Helper()
	_, m := mark(t, s)
	return m.Role[i]
}

func TestMarkRings_Cyclohexane(t *testing.T) {
	_, m := mark(t, "C1CCCCC1C")
	require.Len(t, m.RingSystems, 1)
	sys := m.RingSystems[0]
	assert.Equal(t, []int{0, 1, 2, 3, 4, 5}, sys.Atoms)
	assert.Equal(t, 1, sys.RingCount)
	require.Len(t, sys.Blocks, 1)
	assert.Empty(t, sys.SpiroAtoms)
	assert.False(t, m.RingAtom[6])
	assert.Equal(t, -1, m.RingSystemOf[6])
	assert.Equal(t, [][]int{{0, 1, 2, 3, 4, 5}}, m.RingUnits)
	assert.Equal(t, "bridges", m.RingFinder)
}

func TestMarkRings_FusedAndSpiro(t *testing.T) {
	// decalin: one system, one block, two rings
	_, m := mark(t, "C1CCC2CCCCC2C1")
	require.Len(t, m.RingSystems, 1)
	assert.Equal(t, 2, m.RingSystems[0].RingCount)
	assert.Len(t, m.RingSystems[0].Blocks, 1)

	// spiro[4.5]decane: one system, two blocks, atom 3 is spiro
	_, m = mark(t, "C1CCC2(CC1)CCCC2")
	require.Len(t, m.RingSystems, 1)
	sys := m.RingSystems[0]
	assert.Equal(t, 2, sys.RingCount)
	require.Len(t, sys.Blocks, 2)
	assert.Equal(t, []int{3}, sys.SpiroAtoms)
	assert.Equal(t, marker.RoleSpiro, m.Role[3])
	assert.Len(t, m.RingUnits, 1)
}

func TestMarkRings_Dissection(t *testing.T) {
	// spiro system dissected into its two blocks, the shared atom stays with the first
	_, m := mark(t, "C1CCC2(CC1)CCCC2", marker.WithMaxRingsPerSystem(1))
	sys := m.RingSystems[0]
	assert.True(t, sys.Dissected)
	require.Len(t, m.RingUnits, 2)
	assert.Equal(t, []int{0, 1, 2, 3, 4, 5}, m.RingUnits[0])
	assert.Equal(t, []int{6, 7, 8, 9}, m.RingUnits[1])

	// decalin is a single two-ring block: released entirely
	_, m = mark(t, "C1CCC2CCCCC2C1", marker.WithMaxRingsPerSystem(1))
	assert.True(t, m.RingSystems[0].Dissected)
	assert.Empty(t, m.RingUnits)
	assert.True(t, m.RingAtom[0], "ring flags survive dissection")
}

func TestRingFinders_Agree(t *testing.T) {
	for _, s := range []string{"C1CCC2CCCCC2C1", "C1CCC2(CC1)CCCC2", "c1ccccc1CC1CC1", "CCCC"} {
		arr := arrays(t, s)
		bridges := marker.BridgeFinder{}.RingBonds(arr)
		cycles := marker.CycleFinder{}.RingBonds(arr)
		assert.Equal(t, bridges, cycles, s)
	}
}

func TestCycleFinder_Basis(t *testing.T) {
	arr := arrays(t, "C1CCC2CCCCC2C1")
	basis := marker.CycleFinder{}.Basis(arr)
	// the DFS tree closes the right-hand ring and the outer perimeter
	assert.Equal(t, [][]int{{3, 4, 5, 6, 7, 8}, {0, 1, 2, 3, 4, 5, 6, 7, 8, 9}}, basis)

	arr = arrays(t, "C1CC1")
	assert.Equal(t, [][]int{{0, 1, 2}}, marker.CycleFinder{}.Basis(arr))
}

func TestAnnotatedFinder(t *testing.T) {
	mol := molecule.New()
	for i := 0; i < 4; i++ {
		_, err := mol.AddAtom(molecule.Carbon)
		require.NoError(t, err)
	}
	_, _ = mol.AddBond(0, 1, molecule.OrderSingle, molecule.WithRingFlag())
	_, _ = mol.AddBond(1, 2, molecule.OrderSingle)
	_, _ = mol.AddBond(2, 3, molecule.OrderSingle)
	arr, err := snapshot.Build(mol)
	require.NoError(t, err)

	m, err := marker.Mark(arr, marker.WithRingFinder(marker.AnnotatedFinder{}))
	require.NoError(t, err)
	assert.Equal(t, []bool{true, false, false}, m.RingBond)
	assert.Equal(t, "annotated", m.RingFinder)
}

func TestParseRingFinderKind(t *testing.T) {
	for _, name := range []string{"bridges", "Cycles", " annotated "} {
		k, err := marker.ParseRingFinderKind(name)
		require.NoError(t, err)
		assert.Equal(t, k, mustKind(t, k.String()))
		assert.NotNil(t, marker.NewRingFinder(k))
	}
	_, err := marker.ParseRingFinderKind("sssr")
	assert.ErrorIs(t, err, marker.ErrUnknownRingFinder)
}

func mustKind(t *testing.T, s string) marker.RingFinderKind {
	t.Helper()
	k, err := marker.ParseRingFinderKind(s)
	require.NoError(t, err)
	return k
}

func TestMarkConjugatedSystems(t *testing.T) {
	// butadiene: one conjugated system over all four atoms
	_, m := mark(t, "C=CC=C")
	require.Len(t, m.ConjugatedSystems, 1)
	assert.Equal(t, []int{0, 1, 2, 3}, m.ConjugatedSystems[0].Atoms)
	assert.Equal(t, []int{0, 1, 2}, m.ConjugatedSystems[0].Bonds)
	assert.Empty(t, m.IsolatedMultiBonds)

	// 1,4-pentadiene: the sp3 carbon breaks conjugation
	_, m = mark(t, "C=CCC=C")
	assert.Empty(t, m.ConjugatedSystems)
	assert.Equal(t, []int{0, 3}, m.IsolatedMultiBonds)

	// styrene: aromatic ring and vinyl form one span
	_, m = mark(t, "c1ccccc1C=C")
	require.Len(t, m.ConjugatedSystems, 1)
	assert.Len(t, m.ConjugatedSystems[0].Atoms, 8)
}

func TestMarkIsolatedMultiBonds(t *testing.T) {
	_, m := mark(t, "CC=CC")
	assert.Equal(t, []int{1}, m.IsolatedMultiBonds)
	assert.True(t, m.IsolatedMultiBond[1])

	// ring double bond inside a preserved ring is not isolated
	_, m = mark(t, "C1CC=CCC1")
	assert.Empty(t, m.IsolatedMultiBonds)

	// exocyclic carbonyl is
	_, m = mark(t, "O=C1CCCCC1")
	assert.Equal(t, []int{0}, m.IsolatedMultiBonds)

	// a ring double bond spanning two dissected blocks is isolated too
	arr, m := mark(t, "C1CC[Si]2(CC1)=CCCC2", marker.WithMaxRingsPerSystem(1))
	require.Len(t, m.RingUnits, 2)
	require.NotEqual(t, m.RingUnitOf[3], m.RingUnitOf[6])
	b, ok := arr.BondBetween(3, 6)
	require.True(t, ok)
	assert.True(t, m.RingBond[b])
	assert.Equal(t, []int{b}, m.IsolatedMultiBonds)

	// without dissection the same bond stays inside the ring unit
	_, m = mark(t, "C1CC[Si]2(CC1)=CCCC2")
	assert.Empty(t, m.IsolatedMultiBonds)
}

func TestDisjointSet(t *testing.T) {
	d := marker.NewDisjointSet(5)
	assert.True(t, d.Union(0, 1))
	assert.True(t, d.Union(3, 4))
	assert.False(t, d.Union(1, 0))
	assert.True(t, d.Same(0, 1))
	assert.False(t, d.Same(1, 3))
	assert.True(t, d.Union(1, 4))
	assert.True(t, d.Same(0, 3))
}

func TestComponents(t *testing.T) {
	arr := arrays(t, "CC.OCC.N")
	comps := marker.Components(arr, func(int) bool { return true }, func(int) bool { return true })
	assert.Equal(t, [][]int{{0, 1}, {2, 3, 4}, {5}}, comps)
}
