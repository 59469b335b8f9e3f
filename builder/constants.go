// SPDX-License-Identifier: MIT
//
// File: constants.go
// Role: method tags, minimum sizes and defaults.

package builder

import "github.com/katalvlaran/molfrag/molecule"

// Method tags prefix constructor errors.
const (
	MethodAtom               = "Atom"
	MethodChain              = "Chain"
	MethodRing               = "Ring"
	MethodStar               = "Star"
	MethodFusedRings         = "FusedRings"
	MethodSpiroRings         = "SpiroRings"
	MethodRandomAlkane       = "RandomAlkane"
	MethodRandomUnsaturation = "RandomUnsaturation"
	MethodLink               = "Link"
)

// Minimum sizes.
const (
	MinChainAtoms     = 1
	MinRingAtoms      = 3
	MinFusedRingAtoms = 4
	MinStarAtoms      = 2
	MinRingCount      = 1
	MinAlkaneAtoms    = 1
)

// MaxAlkaneDegree caps the heavy degree of RandomAlkane atoms.
const MaxAlkaneDegree = 4

// Probability domain of RandomUnsaturation.
const (
	MinProbability = 0.0
	MaxProbability = 1.0
)

// Defaults for topology constructors.
const (
	DefaultElement   = molecule.Carbon
	DefaultBondOrder = molecule.OrderSingle
)
