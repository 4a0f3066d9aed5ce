// Package glushkov linearizes a regular expression into the local language
// over its positions (Glushkov's construction).
//
// Each terminal occurrence gets its own position, numbered left to right
// from 0. A LocalLanguage describes which positions may start a word, which
// may end one, which pairs may be adjacent and whether the empty word is
// accepted.
package glushkov

import (
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Factor means position To may immediately follow position From.
type Factor struct {
	From, To int
}

type LocalLanguage struct {
	AcceptEmpty bool
	Prefixes    []int // sorted, no duplicates
	Suffixes    []int // sorted, no duplicates
	Factors     map[Factor]struct{}
}

// Literal is the language of the single position p.
func Literal(p int) *LocalLanguage {
	return &LocalLanguage{
		Prefixes: []int{p},
		Suffixes: []int{p},
		Factors:  map[Factor]struct{}{},
	}
}

// Empty is the language holding only the empty word.
func Empty() *LocalLanguage {
	return &LocalLanguage{AcceptEmpty: true, Factors: map[Factor]struct{}{}}
}

// Concat makes l the concatenation of l and other.
// The positions of l and other must be disjoint.
func (l *LocalLanguage) Concat(other *LocalLanguage) {
	l.bridge(l.Suffixes, other.Prefixes)
	maps.Copy(l.Factors, other.Factors)
	if other.AcceptEmpty {
		l.Suffixes = union(l.Suffixes, other.Suffixes)
	} else {
		l.Suffixes = other.Suffixes
	}
	if l.AcceptEmpty {
		l.Prefixes = union(l.Prefixes, other.Prefixes)
	}
	l.AcceptEmpty = l.AcceptEmpty && other.AcceptEmpty
}

// Either makes l the union of l and other.
// The positions of l and other must be disjoint.
func (l *LocalLanguage) Either(other *LocalLanguage) {
	l.AcceptEmpty = l.AcceptEmpty || other.AcceptEmpty
	l.Prefixes = union(l.Prefixes, other.Prefixes)
	l.Suffixes = union(l.Suffixes, other.Suffixes)
	maps.Copy(l.Factors, other.Factors)
}

// Optional adds the empty word to l.
func (l *LocalLanguage) Optional() {
	l.AcceptEmpty = true
}

// Repeat applies the Kleene star to l.
func (l *LocalLanguage) Repeat() {
	l.AcceptEmpty = true
	l.bridge(l.Suffixes, l.Prefixes)
}

// FactorList returns the factors ordered by (From, To).
func (l *LocalLanguage) FactorList() []Factor {
	out := maps.Keys(l.Factors)
	slices.SortFunc(out, func(a, b Factor) bool {
		if a.From != b.From {
			return a.From < b.From
		}
		return a.To < b.To
	})
	return out
}

func (l *LocalLanguage) bridge(from, to []int) {
	for _, a := range from {
		for _, b := range to {
			l.Factors[Factor{a, b}] = struct{}{}
		}
	}
}

func union(a, b []int) []int {
	out := make([]int, 0, len(a)+len(b))
	out = append(append(out, a...), b...)
	slices.Sort(out)
	return slices.Compact(out)
}
