// Package molfrag is a rule-based molecular fragmentation toolkit: it
// splits a molecule into ring systems, conjugated systems, isolated
// multiple bonds, length-capped chains and isolated branch atoms, while
// keeping every input atom in exactly one fragment.
//
// What is inside
//
//	molecule/   thread-safe molecular graph: atoms, bonds, holes, Clone
//	snapshot/   compact, owned arrays built from a molecule for one run
//	marker/     per-atom marks: degree roles, ring systems and blocks,
//	             spiro atoms, conjugated systems, isolated multiple bonds
//	fragment/   the Fragmenter, its walk and emission, FragmentAll
//	settings/   the fragmentation policy and its named, typed access
//	smiles/     SMILES reader and writer
//	builder/    deterministic molecule fixtures (chains, rings, spiro, random)
//	config/     viper configuration (YAML + MOLFRAG_* environment)
//	logging/    zap-backed structured logging
//	metrics/    Prometheus recorder
//	cmd/molfrag  command-line front end
//
// Quick start
//
//	f, _ := fragment.New()
//	frags, _ := f.Fragment(smiles.MustParse("CC(C)(C)C1CCCCC1"))
//	for _, fr := range frags {
//		fmt.Println(fr.Kind, smiles.Write(fr.Molecule))
//	}
//
// Every run clones its input first, so callers may keep mutating their
// molecules while a Fragmenter works on a snapshot.
package molfrag
