package dfa

import "regequiv/internal/regex"

// Complement flips the accepting states of d in place. d stays total, so
// it now accepts exactly the words d rejected.
func (d *DFA) Complement() {
	for s := range d.finals {
		d.finals[s] = !d.finals[s]
	}
}

// Complemented returns a complemented copy and leaves d untouched.
func (d *DFA) Complemented() *DFA {
	c := &DFA{
		initial: d.initial,
		finals:  append([]bool(nil), d.finals...),
		trans:   d.trans, // never written after construction
	}
	c.Complement()
	return c
}

// Product explores the pairs of states of a and b reachable from
// (a.Initial(), b.Initial()), numbered in discovery order from 0.
// A pair (x, y) is final iff op(a.IsFinal(x), b.IsFinal(y)).
func Product(a, b *DFA, op func(x, y bool) bool) *DFA {
	p := &DFA{}
	seen := newStateTable()
	key := make([]int, 2)

	type pending struct{ x, y, id int }
	key[0], key[1] = a.initial, b.initial
	seen.intern(key)
	p.addState(op(a.finals[a.initial], b.finals[b.initial]))
	stack := []pending{{a.initial, b.initial, 0}}

	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for rank := 0; rank < regex.AlphabetSize; rank++ {
			x, y := a.trans[cur.x][rank], b.trans[cur.y][rank]
			key[0], key[1] = x, y
			id, added := seen.intern(key)
			if added {
				if got := p.addState(op(a.finals[x], b.finals[y])); got != id {
					panic("dfa: pair table out of step with state list")
				}
				stack = append(stack, pending{x, y, id})
			}
			p.trans[cur.id][rank] = id
		}
	}
	return p
}

// Intersect accepts the words accepted by both a and b.
func Intersect(a, b *DFA) *DFA {
	return Product(a, b, func(x, y bool) bool { return x && y })
}

// Union accepts the words accepted by a or b.
func Union(a, b *DFA) *DFA {
	return Product(a, b, func(x, y bool) bool { return x || y })
}

// IsIncludedIn reports whether every word accepted by d is accepted by
// other. other is not modified.
func (d *DFA) IsIncludedIn(other *DFA) bool {
	return Intersect(d, other.Complemented()).IsEmpty()
}

// Equal reports whether a and b accept the same language.
func Equal(a, b *DFA) bool {
	return a.IsIncludedIn(b) && b.IsIncludedIn(a)
}
