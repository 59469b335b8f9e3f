// SPDX-License-Identifier: MIT
//
// File: write.go
// Role: SMILES writer.
//
// Determinism:
//   - Components start at their lowest live atom; neighbors are visited in
//     ascending index; ring-closure digits are the lowest free ones.

package smiles

import (
	"sort"
	"strconv"
	"strings"

	"github.com/katalvlaran/molfrag/molecule"
)

var organicSymbols = map[int]bool{
	molecule.Boron: true, molecule.Carbon: true, molecule.Nitrogen: true, molecule.Oxygen: true,
	molecule.Phosph: true, molecule.Sulfur: true, molecule.Fluorine: true, molecule.Chlorine: true,
	molecule.Bromine: true, molecule.Iodine: true,
}

// closure is one ring bond: opened at atom open, closed at atom close.
type closure struct {
	open, close int
	bond        *molecule.Bond
	digit       int
}

type writer struct {
	mol      *molecule.Molecule
	sb       strings.Builder
	state    map[int]int // 0 white, 1 gray, 2 black
	children map[int][]int
	rings    map[int][]*closure // atom -> closures touching it, in discovery order
	inUse    map[int]bool
}

// Write renders m as SMILES. An empty molecule gives "".
func Write(m *molecule.Molecule) string {
	w := &writer{
		mol:      m,
		state:    make(map[int]int),
		children: make(map[int][]int),
		rings:    make(map[int][]*closure),
		inUse:    make(map[int]bool),
	}
	first := true
	for _, a := range m.Atoms() {
		if w.state[a.Index] != 0 {
			continue
		}
		w.plan(a.Index, -1)
		if !first {
			w.sb.WriteByte('.')
		}
		first = false
		w.emit(a.Index, nil)
	}

	return w.sb.String()
}

// plan builds the DFS tree and records ring closures.
func (w *writer) plan(u, parent int) {
	w.state[u] = 1
	nbs, _ := w.mol.Neighbors(u)
	for _, v := range nbs {
		if v == parent {
			continue
		}
		switch w.state[v] {
		case 0:
			w.children[u] = append(w.children[u], v)
			w.plan(v, u)
		case 1:
			b, _ := w.mol.BondBetween(u, v)
			c := &closure{open: v, close: u, bond: b}
			w.rings[v] = append(w.rings[v], c)
			w.rings[u] = append(w.rings[u], c)
		}
	}
	w.state[u] = 2
}

func (w *writer) emit(u int, via *molecule.Bond) {
	a, _ := w.mol.Atom(u)
	if via != nil {
		w.sb.WriteString(w.bondSymbol(via))
	}
	w.sb.WriteString(w.atomToken(a))

	var freed []int
	for _, c := range w.rings[u] {
		if c.open == u {
			c.digit = w.nextDigit()
			w.inUse[c.digit] = true
			w.sb.WriteString(w.bondSymbol(c.bond))
		} else {
			freed = append(freed, c.digit)
		}
		w.sb.WriteString(digitToken(c.digit))
	}
	for _, d := range freed {
		delete(w.inUse, d)
	}

	kids := w.children[u]
	for i, v := range kids {
		b, _ := w.mol.BondBetween(u, v)
		if i < len(kids)-1 {
			w.sb.WriteByte('(')
			w.emit(v, b)
			w.sb.WriteByte(')')
			continue
		}
		w.emit(v, b)
	}
}

func (w *writer) nextDigit() int {
	for d := 1; ; d++ {
		if !w.inUse[d] {
			return d
		}
	}
}

func digitToken(d int) string {
	if d < 10 {
		return strconv.Itoa(d)
	}

	return "%" + strconv.Itoa(d)
}

func (w *writer) bondSymbol(b *molecule.Bond) string {
	x, _ := w.mol.Atom(b.Begin)
	y, _ := w.mol.Atom(b.End)
	bothAromatic := x.Aromatic && y.Aromatic
	switch b.Order {
	case molecule.OrderDouble:
		return "="
	case molecule.OrderTriple:
		return "#"
	case molecule.OrderAromatic:
		if bothAromatic {
			return ""
		}
		return ":"
	default:
		if bothAromatic {
			return "-"
		}
		return ""
	}
}

func (w *writer) atomToken(a *molecule.Atom) string {
	valence := 0
	inc, _ := w.mol.IncidentBonds(a.Index)
	for _, bi := range inc {
		b, _ := w.mol.Bond(bi)
		valence += b.Order.Valence()
	}
	_, hasIsotope := a.Metadata[MetaIsotope]
	_, hasClass := a.Metadata[MetaClass]
	plain := a.Charge == 0 && !hasIsotope && !hasClass

	if a.AtomicNumber == molecule.Pseudo && plain && a.ImplicitHydrogens == 0 {
		return "*"
	}
	if plain && bareAllowed(a) &&
		molecule.ImplicitHydrogenCount(a.AtomicNumber, valence, a.Aromatic) == a.ImplicitHydrogens {
		return symbolFor(a)
	}

	var sb strings.Builder
	sb.WriteByte('[')
	if iso, ok := a.Metadata[MetaIsotope].(int); ok {
		sb.WriteString(strconv.Itoa(iso))
	}
	sb.WriteString(symbolFor(a))
	switch h := a.ImplicitHydrogens; {
	case h == 1:
		sb.WriteByte('H')
	case h > 1:
		sb.WriteString("H" + strconv.Itoa(h))
	}
	switch {
	case a.Charge == 1:
		sb.WriteByte('+')
	case a.Charge == -1:
		sb.WriteByte('-')
	case a.Charge > 1:
		sb.WriteString("+" + strconv.Itoa(a.Charge))
	case a.Charge < -1:
		sb.WriteString(strconv.Itoa(a.Charge))
	}
	if cls, ok := a.Metadata[MetaClass].(int); ok {
		sb.WriteString(":" + strconv.Itoa(cls))
	}
	sb.WriteByte(']')

	return sb.String()
}

// bareAllowed reports whether a may be written without brackets.
func bareAllowed(a *molecule.Atom) bool {
	if !organicSymbols[a.AtomicNumber] {
		return false
	}
	if !a.Aromatic {
		return true
	}
	for _, z := range aromaticOrganic {
		if z == a.AtomicNumber {
			return true
		}
	}

	return false
}

func symbolFor(a *molecule.Atom) string {
	sym := molecule.Symbol(a.AtomicNumber)
	if a.Aromatic && a.AtomicNumber != molecule.Pseudo {
		return strings.ToLower(sym)
	}

	return sym
}

// WriteAll renders each molecule and returns the strings sorted, which
// makes fragment sets comparable regardless of emission order.
func WriteAll(ms []*molecule.Molecule) []string {
	out := make([]string, len(ms))
	for i, m := range ms {
		out[i] = Write(m)
	}
	sort.Strings(out)

	return out
}
