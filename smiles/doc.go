// Package smiles reads and writes the SMILES line notation for
// molecule.Molecule values, entirely in memory.
//
// Supported on input:
//
//   - organic-subset atoms B C N O P S F Cl Br I, aromatic b c n o p s,
//     and the wildcard * (atomic number 0)
//   - bracket atoms [13CH3+], [nH], [Fe+2], [NH4+:1] (isotope and atom class
//     are kept in atom metadata; chirality marks are accepted and dropped)
//   - bonds - = # : and the directional / \ (read as single)
//   - branches, ring closures 0-9 and %nn, and the dot disconnection
//
// Organic-subset atoms receive implicit hydrogens from their default
// valences; bracket atoms carry exactly the hydrogens written.
//
// Write emits one canonical-enough string per molecule: components in
// ascending lowest atom, depth-first with neighbors in ascending index.
// Placeholder atoms are written as *.
package smiles
