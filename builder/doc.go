// Package builder assembles deterministic molecule fixtures from small
// topology constructors: chains, rings, stars, fused and spiro ring
// systems, random alkane trees and explicit links between them.
//
// The package offers:
//
//   - BuildMolecule: creates a molecule, resolves builder options and runs
//     constructors in order.
//   - Constructors: Atom, Chain, Ring, Star, FusedRings, SpiroRings,
//     RandomAlkane, RandomUnsaturation, Link.
//   - Options: WithElement, WithBondOrder, WithAromatic, WithSeed,
//     WithRand, WithoutHydrogens.
//
// Guarantees:
//
//   - Atoms are appended in a documented order, so callers can address
//     them by index after the build.
//   - Same constructors, options and seed produce identical molecules.
//   - Option constructors panic on meaningless values; constructors only
//     return sentinel errors.
//   - Implicit hydrogens are filled from default valences after all
//     constructors ran, unless WithoutHydrogens is given.
package builder
