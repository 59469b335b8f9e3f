// SPDX-License-Identifier: MIT

package smiles

import "errors"

var (
	// ErrSyntax reports malformed input.
	ErrSyntax = errors.New("smiles: syntax error")

	// ErrUnknownElement reports an element symbol outside the periodic table
	// or outside the organic subset when written without brackets.
	ErrUnknownElement = errors.New("smiles: unknown element")

	// ErrUnclosedRing reports a ring-closure digit left open at the end.
	ErrUnclosedRing = errors.New("smiles: unclosed ring")

	// ErrUnbalancedBranch reports a ')' without '(' or a '(' never closed.
	ErrUnbalancedBranch = errors.New("smiles: unbalanced branch")

	// ErrUnsupportedBond reports a bond symbol the molecule model cannot hold.
	ErrUnsupportedBond = errors.New("smiles: unsupported bond")
)

// Metadata keys set on parsed atoms.
const (
	MetaIsotope = "smiles.isotope"
	MetaClass   = "smiles.class"
)
