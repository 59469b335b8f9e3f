// Package marker classifies the atoms and bonds of a snapshot.MolecularArrays
// into structural roles. It never touches the arrays themselves: every result
// lands in a Marks value whose slices are parallel to arr.Atoms / arr.Bonds.
//
// Passes run in a fixed order, each reading what the previous ones wrote:
//
//  1. MarkNeighbors          heavy-atom degree and chain-topology role
//  2. MarkRings              ring bonds (via a RingFinder), ring systems,
//                            biconnected blocks, spiro atoms, dissection
//  3. MarkConjugatedSystems  maximal spans linked by multiple bonds
//  4. MarkIsolatedMultiBonds remaining double/triple/aromatic bonds
//
// Mark runs all four. Explicit hydrogens bonded to a heavy atom get
// RoleHydrogen and are ignored by every later pass.
//
// Ring finders:
//
//	BridgeFinder     non-bridge bonds are ring bonds (Tarjan lowlink)
//	CycleFinder      union of a DFS fundamental cycle basis
//	AnnotatedFinder  trusts Bond.InRing set by an external annotator
//
// ParseRingFinderKind and NewRingFinder map the names "bridges", "cycles"
// and "annotated" onto those variants.
package marker
