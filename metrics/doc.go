// Package metrics records fragmentation telemetry.
//
// Recorder is the narrow interface the fragment package calls; Nop discards
// everything and Prometheus registers these series on a caller-supplied
// registerer:
//
//	molfrag_molecules_total{outcome}            counter
//	molfrag_fragments_total{kind}               counter
//	molfrag_fragment_atoms                      histogram
//	molfrag_fragmentation_duration_seconds      histogram
package metrics
