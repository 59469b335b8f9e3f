// Package settings holds the fragmentation policy: a small value type,
// Settings, plus the named-setting contract a front end binds to.
//
// Settings is copied by value, so every fragmenter owns an independent
// snapshot. Named access goes through Set/Get with the names listed by
// Descriptors; a rejected assignment leaves the previous value in place.
//
//	fragmentSideChains            bool   default true
//	maxChainLength                int    default 6, >= 1
//	isolateQuaternaryCarbons      bool   default false
//	separateBranchPointFromRing   bool   default false
//	keepNonFragmentableMolecules  bool   default false
//	saturation                    enum   none | hydrogen, default none
//	maxRingsPerSystem             int    default 0 (never dissect), >= 0
//
// Store wraps a Settings with a mutex and change hooks for callers that
// share one live policy.
package settings
