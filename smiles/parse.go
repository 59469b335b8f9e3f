// SPDX-License-Identifier: MIT
//
// File: parse.go
// Role: SMILES reader.
//
// Determinism:
//   - Atoms are numbered in order of appearance, bonds in order of creation.

package smiles

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/molfrag/molecule"
)

// organic lists the symbols allowed outside brackets, longest first.
var organic = []string{"Cl", "Br", "B", "C", "N", "O", "P", "S", "F", "I"}

var aromaticOrganic = map[byte]int{
	'b': molecule.Boron,
	'c': molecule.Carbon,
	'n': molecule.Nitrogen,
	'o': molecule.Oxygen,
	'p': molecule.Phosph,
	's': molecule.Sulfur,
}

type ringOpen struct {
	atom  int
	order molecule.BondOrder
}

type parser struct {
	src  string
	pos  int
	mol  *molecule.Molecule
	prev int
	bond molecule.BondOrder

	branches []int
	rings    map[int]ringOpen
	implicit []int // organic-subset atoms that need implicit hydrogens
}

// Parse reads one SMILES string into a new Molecule titled with the input.
// An empty string yields an empty molecule.
//
// Errors wrap ErrSyntax, ErrUnknownElement, ErrUnclosedRing,
// ErrUnbalancedBranch or ErrUnsupportedBond together with the position.
func Parse(s string) (*molecule.Molecule, error) {
	s = strings.TrimSpace(s)
	p := &parser{
		src:   s,
		mol:   molecule.New(molecule.WithTitle(s)),
		prev:  -1,
		rings: make(map[int]ringOpen),
	}
	if err := p.run(); err != nil {
		return nil, err
	}
	p.assignImplicitHydrogens()

	return p.mol, nil
}

// MustParse is Parse that panics on error; intended for fixtures.
func MustParse(s string) *molecule.Molecule {
	m, err := Parse(s)
	if err != nil {
		panic(err)
	}

	return m
}

func (p *parser) errorf(sentinel error, format string, args ...interface{}) error {
	return fmt.Errorf("smiles: Parse %q at %d: %s: %w", p.src, p.pos, fmt.Sprintf(format, args...), sentinel)
}

func (p *parser) run() error {
	for p.pos < len(p.src) {
		c := p.src[p.pos]
		switch {
		case c == '(':
			if p.prev < 0 {
				return p.errorf(ErrUnbalancedBranch, "branch without a preceding atom")
			}
			p.branches = append(p.branches, p.prev)
			p.pos++
		case c == ')':
			if len(p.branches) == 0 {
				return p.errorf(ErrUnbalancedBranch, "unexpected ')'")
			}
			if p.bond != molecule.OrderUnset {
				return p.errorf(ErrSyntax, "bond before ')'")
			}
			p.prev = p.branches[len(p.branches)-1]
			p.branches = p.branches[:len(p.branches)-1]
			p.pos++
		case c == '.':
			if p.bond != molecule.OrderUnset {
				return p.errorf(ErrSyntax, "bond before '.'")
			}
			p.prev = -1
			p.pos++
		case strings.IndexByte("-=#:/\\$", c) >= 0:
			if err := p.readBond(c); err != nil {
				return err
			}
			p.pos++
		case c >= '0' && c <= '9' || c == '%':
			if err := p.readRing(); err != nil {
				return err
			}
		case c == '[':
			if err := p.readBracket(); err != nil {
				return err
			}
		default:
			if err := p.readOrganic(); err != nil {
				return err
			}
		}
	}

	if len(p.branches) > 0 {
		return p.errorf(ErrUnbalancedBranch, "%d branch(es) not closed", len(p.branches))
	}
	if len(p.rings) > 0 {
		return p.errorf(ErrUnclosedRing, "%d ring bond(s) open", len(p.rings))
	}
	if p.bond != molecule.OrderUnset {
		return p.errorf(ErrSyntax, "dangling bond")
	}

	return nil
}

func (p *parser) readBond(c byte) error {
	if p.bond != molecule.OrderUnset {
		return p.errorf(ErrSyntax, "two bond symbols in a row")
	}
	if p.prev < 0 {
		return p.errorf(ErrSyntax, "bond without a preceding atom")
	}
	switch c {
	case '-', '/', '\\':
		p.bond = molecule.OrderSingle
	case '=':
		p.bond = molecule.OrderDouble
	case '#':
		p.bond = molecule.OrderTriple
	case ':':
		p.bond = molecule.OrderAromatic
	default:
		return p.errorf(ErrUnsupportedBond, "%q", c)
	}

	return nil
}

func (p *parser) readRing() error {
	if p.prev < 0 {
		return p.errorf(ErrSyntax, "ring bond without a preceding atom")
	}
	var n int
	if p.src[p.pos] == '%' {
		if p.pos+2 >= len(p.src) || !isDigit(p.src[p.pos+1]) || !isDigit(p.src[p.pos+2]) {
			return p.errorf(ErrSyntax, "'%%' must be followed by two digits")
		}
		n = int(p.src[p.pos+1]-'0')*10 + int(p.src[p.pos+2]-'0')
		p.pos += 3
	} else {
		n = int(p.src[p.pos] - '0')
		p.pos++
	}

	open, ok := p.rings[n]
	if !ok {
		p.rings[n] = ringOpen{atom: p.prev, order: p.bond}
		p.bond = molecule.OrderUnset
		return nil
	}
	delete(p.rings, n)

	order := open.order
	if p.bond != molecule.OrderUnset {
		if order != molecule.OrderUnset && order != p.bond {
			return p.errorf(ErrSyntax, "ring bond %d has conflicting orders", n)
		}
		order = p.bond
	}
	p.bond = molecule.OrderUnset
	if open.atom == p.prev {
		return p.errorf(ErrSyntax, "ring bond %d closes on its own atom", n)
	}
	if order == molecule.OrderUnset {
		order = p.defaultOrder(open.atom, p.prev)
	}
	if _, err := p.mol.AddBond(open.atom, p.prev, order); err != nil {
		return p.errorf(ErrSyntax, "ring bond %d: %v", n, err)
	}

	return nil
}

func (p *parser) readOrganic() error {
	c := p.src[p.pos]
	if c == '*' {
		p.pos++
		return p.addAtom(molecule.Pseudo, true)
	}
	if z, ok := aromaticOrganic[c]; ok {
		p.pos++
		return p.addAtom(z, true, molecule.WithAromatic())
	}
	for _, sym := range organic {
		if strings.HasPrefix(p.src[p.pos:], sym) {
			z, _ := molecule.AtomicNumber(sym)
			p.pos += len(sym)
			return p.addAtom(z, true)
		}
	}

	return p.errorf(ErrUnknownElement, "unexpected %q", c)
}

// readBracket parses [isotope? symbol chirality? hcount? charge? class?].
func (p *parser) readBracket() error {
	end := strings.IndexByte(p.src[p.pos:], ']')
	if end < 0 {
		return p.errorf(ErrSyntax, "unterminated bracket atom")
	}
	body := p.src[p.pos+1 : p.pos+end]
	at := p.pos
	p.pos += end + 1

	i := 0
	isotope := 0
	for i < len(body) && isDigit(body[i]) {
		isotope = isotope*10 + int(body[i]-'0')
		i++
	}

	// symbol: uppercase + optional lowercase, or aromatic lowercase (two letters for se/as)
	if i >= len(body) {
		p.pos = at
		return p.errorf(ErrSyntax, "bracket atom without symbol")
	}
	var (
		sym      string
		aromatic bool
	)
	switch {
	case body[i] == '*':
		sym = "*"
		i++
	case isUpper(body[i]):
		sym = body[i : i+1]
		i++
		if i < len(body) && isLower(body[i]) {
			if _, ok := molecule.AtomicNumber(sym + body[i:i+1]); ok {
				sym += body[i : i+1]
				i++
			}
		}
	case isLower(body[i]):
		aromatic = true
		if i+1 < len(body) && (body[i:i+2] == "se" || body[i:i+2] == "as") {
			sym = body[i : i+2]
			i += 2
		} else {
			sym = body[i : i+1]
			i++
		}
	default:
		p.pos = at
		return p.errorf(ErrSyntax, "bad bracket atom %q", body)
	}
	z, ok := molecule.AtomicNumber(sym)
	if !ok {
		p.pos = at
		return p.errorf(ErrUnknownElement, "%q", sym)
	}

	for i < len(body) && body[i] == '@' {
		i++
	}

	hcount := 0
	if i < len(body) && body[i] == 'H' {
		i++
		hcount = 1
		if i < len(body) && isDigit(body[i]) {
			hcount = int(body[i] - '0')
			i++
		}
	}

	charge := 0
	if i < len(body) && (body[i] == '+' || body[i] == '-') {
		sign := 1
		if body[i] == '-' {
			sign = -1
		}
		sc := body[i]
		i++
		mag := 1
		switch {
		case i < len(body) && isDigit(body[i]):
			mag = 0
			for i < len(body) && isDigit(body[i]) {
				mag = mag*10 + int(body[i]-'0')
				i++
			}
		default:
			for i < len(body) && body[i] == sc {
				mag++
				i++
			}
		}
		charge = sign * mag
	}

	class := -1
	if i < len(body) && body[i] == ':' {
		i++
		class = 0
		for i < len(body) && isDigit(body[i]) {
			class = class*10 + int(body[i]-'0')
			i++
		}
	}
	if i != len(body) {
		p.pos = at
		return p.errorf(ErrSyntax, "trailing characters in [%s]", body)
	}

	opts := []molecule.AtomOption{molecule.WithCharge(charge), molecule.WithImplicitHydrogens(hcount)}
	if aromatic {
		opts = append(opts, molecule.WithAromatic())
	}
	if isotope > 0 {
		opts = append(opts, molecule.WithAtomMetadata(MetaIsotope, isotope))
	}
	if class >= 0 {
		opts = append(opts, molecule.WithAtomMetadata(MetaClass, class))
	}

	return p.addAtom(z, false, opts...)
}

func (p *parser) addAtom(z int, organicSubset bool, opts ...molecule.AtomOption) error {
	idx, err := p.mol.AddAtom(z, opts...)
	if err != nil {
		return p.errorf(ErrUnknownElement, "%v", err)
	}
	if organicSubset {
		p.implicit = append(p.implicit, idx)
	}
	if p.prev >= 0 {
		order := p.bond
		if order == molecule.OrderUnset {
			order = p.defaultOrder(p.prev, idx)
		}
		if _, err = p.mol.AddBond(p.prev, idx, order); err != nil {
			return p.errorf(ErrSyntax, "%v", err)
		}
	} else if p.bond != molecule.OrderUnset {
		return p.errorf(ErrSyntax, "bond without a preceding atom")
	}
	p.bond = molecule.OrderUnset
	p.prev = idx

	return nil
}

// defaultOrder is aromatic between two aromatic atoms, single otherwise.
func (p *parser) defaultOrder(a, b int) molecule.BondOrder {
	aa, _ := p.mol.Atom(a)
	bb, _ := p.mol.Atom(b)
	if aa.Aromatic && bb.Aromatic {
		return molecule.OrderAromatic
	}

	return molecule.OrderSingle
}

func (p *parser) assignImplicitHydrogens() {
	for _, i := range p.implicit {
		a, _ := p.mol.Atom(i)
		_ = p.mol.SetImplicitHydrogens(i, molecule.ImplicitHydrogenCount(a.AtomicNumber, bondValence(p.mol, i), a.Aromatic))
	}
}

// bondValence sums the valence contribution of every bond at atom i.
func bondValence(m *molecule.Molecule, i int) int {
	inc, _ := m.IncidentBonds(i)
	sum := 0
	for _, bi := range inc {
		b, _ := m.Bond(bi)
		sum += b.Order.Valence()
	}

	return sum
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }
func isUpper(c byte) bool { return c >= 'A' && c <= 'Z' }
func isLower(c byte) bool { return c >= 'a' && c <= 'z' }
