// Package regex holds the algebraic regular expression tree over the
// lowercase latin alphabet.
//
// Trees are built with the constructors below and are immutable once built.
// There is no pattern syntax here: callers assemble trees directly.
package regex

import (
	"strings"

	"golang.org/x/exp/slices"
)

type Kind int

const (
	KEpsilon Kind = iota // ε
	KTerminal
	KConcat
	KAlt
	KOpt  // ?
	KStar // *
)

func (k Kind) String() string {
	switch k {
	case KEpsilon:
		return "epsilon"
	case KTerminal:
		return "terminal"
	case KConcat:
		return "cat"
	case KAlt:
		return "alt"
	case KOpt:
		return "opt"
	case KStar:
		return "star"
	}
	return "unknown"
}

// Regex is one node of an expression tree.
type Regex struct {
	kind  Kind
	left  *Regex
	right *Regex
	sym   byte // for KTerminal
}

var epsilon = &Regex{kind: KEpsilon}

// Terminal is the language {c}. It panics if c is not in a-z.
func Terminal(c byte) *Regex {
	if Rank(c) < 0 {
		panic("regex: terminal outside alphabet: " + string(rune(c)))
	}
	return &Regex{kind: KTerminal, sym: c}
}

// Epsilon is the language holding only the empty word.
func Epsilon() *Regex { return epsilon }

func Cat(a, b *Regex) *Regex { return &Regex{kind: KConcat, left: a, right: b} }
func Alt(a, b *Regex) *Regex { return &Regex{kind: KAlt, left: a, right: b} }
func Opt(a *Regex) *Regex    { return &Regex{kind: KOpt, left: a} }
func Star(a *Regex) *Regex   { return &Regex{kind: KStar, left: a} }

// CatAll folds rs to the left with Cat. An empty list yields Epsilon.
func CatAll(rs ...*Regex) *Regex {
	if len(rs) == 0 {
		return Epsilon()
	}
	out := rs[0]
	for _, r := range rs[1:] {
		out = Cat(out, r)
	}
	return out
}

// AltAll folds rs to the left with Alt. It panics on an empty list since
// the empty language has no tree.
func AltAll(rs ...*Regex) *Regex {
	if len(rs) == 0 {
		panic("regex: AltAll of nothing")
	}
	out := rs[0]
	for _, r := range rs[1:] {
		out = Alt(out, r)
	}
	return out
}

// Word is the concatenation of the letters of w, or Epsilon for "".
func Word(w string) *Regex {
	rs := make([]*Regex, len(w))
	for i := 0; i < len(w); i++ {
		rs[i] = Terminal(w[i])
	}
	return CatAll(rs...)
}

func (r *Regex) Kind() Kind { return r.kind }

// Symbol is the letter of a terminal node.
func (r *Regex) Symbol() byte { return r.sym }

// Left is the first operand of a binary node, or the operand of a unary one.
func (r *Regex) Left() *Regex { return r.left }

// Right is the second operand of a binary node.
func (r *Regex) Right() *Regex { return r.right }

// Walk visits the tree in pre-order, left to right. Returning false from
// fn skips the children of that node.
func (r *Regex) Walk(fn func(*Regex) bool) {
	if !fn(r) {
		return
	}
	if r.left != nil {
		r.left.Walk(fn)
	}
	if r.right != nil {
		r.right.Walk(fn)
	}
}

// Symbols returns the distinct letters occurring in r, in order.
func (r *Regex) Symbols() []byte {
	var out []byte
	r.Walk(func(n *Regex) bool {
		if n.kind == KTerminal {
			out = append(out, n.sym)
		}
		return true
	})
	slices.Sort(out)
	return slices.Compact(out)
}

// String renders the tree: concatenation is parenthesized, alternation is
// infix '|', '?' and '*' are postfix and ε stands for the empty word.
// The output is meant for diagnostics and does not round-trip.
func (r *Regex) String() string {
	var b strings.Builder
	r.write(&b)
	return b.String()
}

func (r *Regex) write(b *strings.Builder) {
	switch r.kind {
	case KEpsilon:
		b.WriteString("ε")
	case KTerminal:
		b.WriteByte(r.sym)
	case KConcat:
		b.WriteByte('(')
		r.left.write(b)
		r.right.write(b)
		b.WriteByte(')')
	case KAlt:
		r.left.write(b)
		b.WriteByte('|')
		r.right.write(b)
	case KOpt:
		r.left.write(b)
		b.WriteByte('?')
	case KStar:
		r.left.write(b)
		b.WriteByte('*')
	default:
		panic("regex: unknown node kind")
	}
}
