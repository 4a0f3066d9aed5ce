// Package nfa builds the epsilon-free automaton of a Glushkov local language.
package nfa

import (
	"golang.org/x/exp/slices"

	"regequiv/internal/glushkov"
	"regequiv/internal/regex"
)

// NFA has one state per position plus an initial state numbered after the
// last position. Nondeterminism only shows as several destinations for one
// (state, symbol) pair; there are no silent moves.
type NFA struct {
	initial int
	finals  []bool
	// trans[state][rank] is the sorted set of destinations.
	trans [][regex.AlphabetSize][]int
}

// FromLocalLanguage builds the automaton of ll, where symbols[p] is the
// letter carried by position p.
func FromLocalLanguage(ll *glushkov.LocalLanguage, symbols []byte) *NFA {
	n := len(symbols) + 1
	a := &NFA{
		initial: len(symbols),
		finals:  make([]bool, n),
		trans:   make([][regex.AlphabetSize][]int, n),
	}
	for _, p := range ll.Prefixes {
		a.add(a.initial, symbols[p], p)
	}
	for _, f := range ll.FactorList() {
		a.add(f.From, symbols[f.To], f.To)
	}
	for _, s := range ll.Suffixes {
		a.finals[s] = true
	}
	a.finals[a.initial] = ll.AcceptEmpty
	return a
}

// FromRegex linearizes r and builds its automaton.
func FromRegex(r *regex.Regex) *NFA {
	return FromLocalLanguage(glushkov.Linearize(r))
}

func (a *NFA) add(from int, sym byte, to int) {
	dst := &a.trans[from][regex.Rank(sym)]
	if !slices.Contains(*dst, to) {
		*dst = append(*dst, to)
		slices.Sort(*dst)
	}
}

func (a *NFA) Initial() int { return a.initial }

// Len is the number of states, the initial one included.
func (a *NFA) Len() int { return len(a.finals) }

func (a *NFA) IsFinal(state int) bool { return a.finals[state] }

// Next returns the destinations of state on the symbol of the given rank.
// The result must not be modified.
func (a *NFA) Next(state, rank int) []int { return a.trans[state][rank] }

// Accepts simulates a on w by tracking the set of live states.
// It returns false for words containing symbols outside a-z.
func (a *NFA) Accepts(w string) bool {
	cur := []int{a.initial}
	for i := 0; i < len(w); i++ {
		rank := regex.Rank(w[i])
		if rank < 0 {
			return false
		}
		var next []int
		for _, s := range cur {
			next = append(next, a.trans[s][rank]...)
		}
		slices.Sort(next)
		cur = slices.Compact(next)
		if len(cur) == 0 {
			return false
		}
	}
	for _, s := range cur {
		if a.finals[s] {
			return true
		}
	}
	return false
}
