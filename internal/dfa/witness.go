package dfa

import "regequiv/internal/regex"

type pathNode struct {
	x, y   int
	parent int // index of the node this one was reached from, -1 for the root
	sym    byte
}

// Witness searches breadth-first for the shortest word accepted by exactly
// one of a and b; among words of that length it returns the first in
// alphabetical order. ok is false when the languages are equal.
func Witness(a, b *DFA) (word string, ok bool) {
	seen := newStateTable()
	key := []int{a.initial, b.initial}
	seen.intern(key)
	queue := []pathNode{{x: a.initial, y: b.initial, parent: -1}}

	for head := 0; head < len(queue); head++ {
		cur := queue[head]
		if a.finals[cur.x] != b.finals[cur.y] {
			return spell(queue, head), true
		}
		for rank := 0; rank < regex.AlphabetSize; rank++ {
			x, y := a.trans[cur.x][rank], b.trans[cur.y][rank]
			key[0], key[1] = x, y
			if _, added := seen.intern(key); added {
				queue = append(queue, pathNode{x: x, y: y, parent: head, sym: regex.Symbol(rank)})
			}
		}
	}
	return "", false
}

// spell follows parent links from nodes[at] back to the root.
func spell(nodes []pathNode, at int) string {
	var rev []byte
	for ; nodes[at].parent >= 0; at = nodes[at].parent {
		rev = append(rev, nodes[at].sym)
	}
	for i, j := 0, len(rev)-1; i < j; i, j = i+1, j-1 {
		rev[i], rev[j] = rev[j], rev[i]
	}
	return string(rev)
}
