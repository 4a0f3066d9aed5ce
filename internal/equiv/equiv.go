// Package equiv decides whether two regular expressions over a-z denote the
// same language.
//
// Each expression is linearized, turned into a Glushkov NFA, determinized,
// and the two DFAs are compared by mutual inclusion. Determinization may
// produce up to 2^n states for n terminal occurrences, and each product up
// to |A|×|B|; nothing bounds this, so callers should bound input size.
package equiv

import (
	"regequiv/internal/dfa"
	"regequiv/internal/nfa"
	"regequiv/internal/regex"
)

// Compile returns the complete DFA of r.
func Compile(r *regex.Regex) *dfa.DFA {
	return dfa.Determinize(nfa.FromRegex(r))
}

// Equivalent reports whether a and b denote the same language.
func Equivalent(a, b *regex.Regex) bool {
	return dfa.Equal(Compile(a), Compile(b))
}

// Side names which expression of a comparison accepts a counterexample.
type Side int

const (
	Neither Side = iota
	Left
	Right
)

func (s Side) String() string {
	switch s {
	case Left:
		return "left"
	case Right:
		return "right"
	}
	return "neither"
}

// Result is the outcome of Compare.
type Result struct {
	Equivalent bool
	// Counterexample is the shortest word in exactly one language, set when
	// Equivalent is false. It may be the empty word.
	Counterexample string
	// AcceptedBy is the side whose language holds Counterexample.
	AcceptedBy Side
	// LeftStates and RightStates are the sizes of the two DFAs.
	LeftStates, RightStates int
}

// Compare decides equivalence like Equivalent and, when the languages
// differ, reports a shortest distinguishing word.
func Compare(a, b *regex.Regex) Result {
	da, db := Compile(a), Compile(b)
	res := Result{
		Equivalent:  dfa.Equal(da, db),
		LeftStates:  da.Len(),
		RightStates: db.Len(),
	}
	if res.Equivalent {
		return res
	}
	w, ok := dfa.Witness(da, db)
	if !ok {
		panic("equiv: languages differ but no distinguishing word was found")
	}
	res.Counterexample = w
	res.AcceptedBy = Right
	if da.Accepts(w) {
		res.AcceptedBy = Left
	}
	return res
}
