package dfa

import (
	"golang.org/x/exp/slices"

	"regequiv/internal/nfa"
	"regequiv/internal/regex"
)

// Determinize runs the subset construction on n over the whole alphabet.
// States are numbered in discovery order from {n.Initial()} = 0. Symbols
// that lead nowhere reach the empty subset, which becomes a rejecting sink
// looping on itself.
func Determinize(n *nfa.NFA) *DFA {
	type pending struct {
		set []int
		id  int
	}
	d := &DFA{}
	seen := newStateTable()

	start := []int{n.Initial()}
	seen.intern(start)
	d.addState(n.IsFinal(n.Initial()))
	stack := []pending{{set: start, id: 0}}

	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for rank := 0; rank < regex.AlphabetSize; rank++ {
			next := move(n, cur.set, rank)
			id, added := seen.intern(next)
			if added {
				if got := d.addState(anyFinal(n, next)); got != id {
					panic("dfa: subset table out of step with state list")
				}
				stack = append(stack, pending{set: next, id: id})
			}
			d.trans[cur.id][rank] = id
		}
	}
	return d
}

// move returns the sorted union of the destinations of every state in set.
func move(n *nfa.NFA, set []int, rank int) []int {
	var out []int
	for _, s := range set {
		out = append(out, n.Next(s, rank)...)
	}
	slices.Sort(out)
	return slices.Compact(out)
}

func anyFinal(n *nfa.NFA, set []int) bool {
	for _, s := range set {
		if n.IsFinal(s) {
			return true
		}
	}
	return false
}
