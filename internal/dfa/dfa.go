// Package dfa implements complete deterministic automata over a-z: subset
// construction from an NFA, complement, products, inclusion and equality.
//
// Every DFA built here is total: each state has a destination for all 26
// symbols. Complement relies on it, since it only flips final states.
package dfa

import (
	"fmt"

	"regequiv/internal/regex"
)

type DFA struct {
	initial int
	finals  []bool
	trans   [][regex.AlphabetSize]int
}

// New builds a DFA from explicit tables: trans[s][rank] is the destination
// of state s on the symbol of that rank and final[s] marks accepting states.
// It panics if a destination or the initial state is out of range.
func New(initial int, final []bool, trans [][regex.AlphabetSize]int) *DFA {
	if len(final) != len(trans) {
		panic(fmt.Sprintf("dfa: %d final flags for %d states", len(final), len(trans)))
	}
	if initial < 0 || initial >= len(trans) {
		panic(fmt.Sprintf("dfa: initial state %d out of range", initial))
	}
	d := &DFA{
		initial: initial,
		finals:  append([]bool(nil), final...),
		trans:   append([][regex.AlphabetSize]int(nil), trans...),
	}
	if !d.IsTotal() {
		panic("dfa: transition table is not total")
	}
	return d
}

// addState appends a state with all transitions pointing at 0 and returns
// its index.
func (d *DFA) addState(final bool) int {
	d.finals = append(d.finals, final)
	d.trans = append(d.trans, [regex.AlphabetSize]int{})
	return len(d.finals) - 1
}

// Len is the number of states.
func (d *DFA) Len() int { return len(d.finals) }

func (d *DFA) Initial() int { return d.initial }

func (d *DFA) IsFinal(state int) bool { return d.finals[state] }

// Next returns the destination of state on the symbol of the given rank.
func (d *DFA) Next(state, rank int) int { return d.trans[state][rank] }

// Finals lists the accepting states in increasing order.
func (d *DFA) Finals() []int {
	var out []int
	for s, f := range d.finals {
		if f {
			out = append(out, s)
		}
	}
	return out
}

// IsTotal reports whether every transition targets an existing state.
func (d *DFA) IsTotal() bool {
	for _, row := range d.trans {
		for _, to := range row {
			if to < 0 || to >= len(d.trans) {
				return false
			}
		}
	}
	return true
}

// IsEmpty reports whether no state is accepting. For automata produced by
// this package every state is reachable, so this means the language is empty.
func (d *DFA) IsEmpty() bool {
	for _, f := range d.finals {
		if f {
			return false
		}
	}
	return true
}

// Accepts runs d on w. Words with symbols outside a-z are rejected.
func (d *DFA) Accepts(w string) bool {
	s := d.initial
	for i := 0; i < len(w); i++ {
		rank := regex.Rank(w[i])
		if rank < 0 {
			return false
		}
		s = d.trans[s][rank]
	}
	return d.finals[s]
}
