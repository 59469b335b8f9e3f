// SPDX-License-Identifier: MIT
//
// File: elements.go
// Role: Element symbols and default valences.

package molecule

import "strings"

// Well-known atomic numbers used across molfrag.
const (
	Pseudo   = 0
	Hydrogen = 1
	Boron    = 5
	Carbon   = 6
	Nitrogen = 7
	Oxygen   = 8
	Fluorine = 9
	Phosph   = 15
	Sulfur   = 16
	Chlorine = 17
	Bromine  = 35
	Iodine   = 53
)

// symbols is indexed by atomic number; index 0 is the pseudo atom "*".
var symbols = [...]string{
	"*",
	"H", "He",
	"Li", "Be", "B", "C", "N", "O", "F", "Ne",
	"Na", "Mg", "Al", "Si", "P", "S", "Cl", "Ar",
	"K", "Ca", "Sc", "Ti", "V", "Cr", "Mn", "Fe", "Co", "Ni", "Cu", "Zn",
	"Ga", "Ge", "As", "Se", "Br", "Kr",
	"Rb", "Sr", "Y", "Zr", "Nb", "Mo", "Tc", "Ru", "Rh", "Pd", "Ag", "Cd",
	"In", "Sn", "Sb", "Te", "I", "Xe",
	"Cs", "Ba", "La", "Ce", "Pr", "Nd", "Pm", "Sm", "Eu", "Gd", "Tb", "Dy",
	"Ho", "Er", "Tm", "Yb", "Lu", "Hf", "Ta", "W", "Re", "Os", "Ir", "Pt",
	"Au", "Hg", "Tl", "Pb", "Bi", "Po", "At", "Rn",
	"Fr", "Ra", "Ac", "Th", "Pa", "U", "Np", "Pu", "Am", "Cm", "Bk", "Cf",
	"Es", "Fm", "Md", "No", "Lr", "Rf", "Db", "Sg", "Bh", "Hs", "Mt", "Ds",
	"Rg", "Cn", "Nh", "Fl", "Mc", "Lv", "Ts", "Og",
}

// bySymbol is the reverse of symbols, built once.
var bySymbol = func() map[string]int {
	out := make(map[string]int, len(symbols))
	for z, s := range symbols {
		out[s] = z
	}
	return out
}()

// defaultValences lists the normal valences of the SMILES organic subset,
// ascending. Elements not listed have no default valence.
var defaultValences = map[int][]int{
	Boron:    {3},
	Carbon:   {4},
	Nitrogen: {3, 5},
	Oxygen:   {2},
	Phosph:   {3, 5},
	Sulfur:   {2, 4, 6},
	Fluorine: {1},
	Chlorine: {1},
	Bromine:  {1},
	Iodine:   {1},
}

// Symbol returns the element symbol for z, or "" if z is out of range.
func Symbol(z int) string {
	if z < 0 || z >= len(symbols) {
		return ""
	}

	return symbols[z]
}

// AtomicNumber resolves an element symbol (case-sensitive first letter,
// e.g. "Cl"); aromatic lowercase symbols such as "c" or "se" are accepted too.
func AtomicNumber(symbol string) (int, bool) {
	if z, ok := bySymbol[symbol]; ok {
		return z, true
	}
	if symbol == "" {
		return 0, false
	}
	// aromatic spelling: capitalise the first rune
	upper := strings.ToUpper(symbol[:1]) + symbol[1:]
	z, ok := bySymbol[upper]

	return z, ok
}

// DefaultValences returns the normal valences of z in ascending order, or nil.
func DefaultValences(z int) []int {
	return defaultValences[z]
}

// ImplicitHydrogenCount returns the number of hydrogens needed to bring an
// uncharged atom of element z with the given bond-valence sum up to its
// smallest default valence that is not below the sum. Aromatic atoms
// contribute one extra electron. Elements without default valences get 0.
func ImplicitHydrogenCount(z, bondValence int, aromatic bool) int {
	vals := defaultValences[z]
	if len(vals) == 0 {
		return 0
	}
	used := bondValence
	if aromatic {
		used++
	}
	for _, v := range vals {
		if v >= used {
			return v - used
		}
	}

	return 0
}
