// Package fragment partitions a molecule into disjoint fragments according
// to a settings.Settings policy.
//
// Pipeline of one Fragment call:
//
//	molecule ──Build──▶ snapshot (private clone, dense indices)
//	         ──Mark───▶ marks (neighbors, rings, conjugation, multi-bonds)
//	         ──walk───▶ atom groups
//	         ──emit───▶ []*Fragment (placeholders or hydrogens at cuts)
//
// Preserved units are never split: a ring system (or each admissible block
// of a dissected one), a conjugated system, an isolated multiple bond, and,
// unless SeparateBranchPointFromRing is set, a branch atom bonded to a ring.
// Overlapping units merge; the merged unit reports the strongest kind
// (ring > conjugated > multi-bond). Remaining atoms become chains of at most
// MaxChainLength atoms, grown depth-first from the lowest free atom, or
// one-atom branch fragments when IsolateQuaternaryCarbons is set.
//
// Every bond between two fragments is replaced on each side by its own
// placeholder atom (atomic number 0, Placeholder flag) with the same order,
// or by implicit hydrogens under SaturationHydrogen.
//
// Concurrency:
//
// A Fragment call owns its snapshot and marks. A Fragmenter holds only a
// settings value and stateless collaborators, so Copy is cheap; FragmentAll
// gives every worker its own copy.
package fragment
